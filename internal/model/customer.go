package model

import "fmt"

type Customer struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
}

// String renders the customer the way the seed routine prints the table.
func (c Customer) String() string {
	return fmt.Sprintf("Customer(id=%d, name=%s, email=%s)", c.ID, c.Name, c.Email)
}
