package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/edvin/customerservice/internal/model"
)

type CustomerService struct {
	db DB
}

func NewCustomerService(db DB) *CustomerService {
	return &CustomerService{db: db}
}

// Save persists a customer. A customer without an ID is inserted and gets
// the ID assigned by the database. One with an ID updates the matching row;
// when no row matches, it is inserted as a new record with a generated ID.
func (s *CustomerService) Save(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	saved := *c

	if saved.ID != 0 {
		tag, err := s.db.Exec(ctx,
			`UPDATE customers SET name = $2, email = $3 WHERE id = $1`,
			saved.ID, saved.Name, saved.Email)
		if err != nil {
			return nil, fmt.Errorf("save customer %d: %w", saved.ID, err)
		}
		if tag.RowsAffected() > 0 {
			return &saved, nil
		}
	}

	err := s.db.QueryRow(ctx,
		`INSERT INTO customers (name, email) VALUES ($1, $2) RETURNING id`,
		saved.Name, saved.Email,
	).Scan(&saved.ID)
	if err != nil {
		return nil, fmt.Errorf("save customer: %w", err)
	}
	return &saved, nil
}

// FindAll returns every stored customer in insertion order.
func (s *CustomerService) FindAll(ctx context.Context) ([]model.Customer, error) {
	rows, err := s.db.Query(ctx, `SELECT id, name, email FROM customers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	customers := []model.Customer{}
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customers: %w", err)
	}
	return customers, nil
}

// FindByID returns the customer with the given ID, or nil without an error
// when no such row exists.
func (s *CustomerService) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	var c model.Customer
	err := s.db.QueryRow(ctx,
		`SELECT id, name, email FROM customers WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get customer %d: %w", id, err)
	}
	return &c, nil
}

func (s *CustomerService) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM customers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}
