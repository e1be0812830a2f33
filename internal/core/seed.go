package core

import (
	"context"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/edvin/customerservice/internal/model"
)

var validate = validator.New()

// DefaultSeed is the set of customers inserted on every start unless a seed
// file overrides it.
func DefaultSeed() []model.Customer {
	return []model.Customer{
		{Name: "Mohamed", Email: "mohamed@gmail.com"},
		{Name: "Ali", Email: "ali@gmail.com"},
		{Name: "Hassan", Email: "hassan@gmailcom"},
	}
}

type seedFile struct {
	Customers []seedEntry `yaml:"customers" validate:"min=1,dive"`
}

type seedEntry struct {
	Name  string `yaml:"name" validate:"required"`
	Email string `yaml:"email"`
}

// LoadSeedFile reads seed customers from a YAML file of the form
//
//	customers:
//	  - name: Mohamed
//	    email: mohamed@gmail.com
func LoadSeedFile(path string) ([]model.Customer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	if err := validate.Struct(f); err != nil {
		return nil, fmt.Errorf("validate seed file %s: %w", path, err)
	}

	customers := make([]model.Customer, 0, len(f.Customers))
	for _, e := range f.Customers {
		customers = append(customers, model.Customer{Name: e.Name, Email: e.Email})
	}
	return customers, nil
}

// Seeder inserts the bootstrap customers and prints the resulting table.
// It is not idempotent: every run appends new rows.
type Seeder struct {
	customers *CustomerService
	logger    zerolog.Logger
	records   []model.Customer
}

func NewSeeder(customers *CustomerService, logger zerolog.Logger, records []model.Customer) *Seeder {
	return &Seeder{customers: customers, logger: logger, records: records}
}

// Run saves each record in order, then logs every stored customer.
func (s *Seeder) Run(ctx context.Context) ([]model.Customer, error) {
	for i := range s.records {
		if _, err := s.customers.Save(ctx, &s.records[i]); err != nil {
			return nil, fmt.Errorf("seed customers: %w", err)
		}
	}

	all, err := s.customers.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed customers: %w", err)
	}

	for _, c := range all {
		s.logger.Info().
			Int64("id", c.ID).
			Str("name", c.Name).
			Str("email", c.Email).
			Msg(c.String())
	}
	return all, nil
}
