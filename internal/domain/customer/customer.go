package customer

import (
	"context"
	"errors"
	"time"
)

var ErrCustomerNotFound = errors.New("customer not found")

// Customer is a traveller known to the call center.
type Customer struct {
	id              uint
	name            string
	email           string
	phone           string
	membershipLevel string
	createdAt       time.Time
	updatedAt       time.Time
}

func ReconstructCustomer(id uint, name, email, phone, membershipLevel string, createdAt, updatedAt time.Time) *Customer {
	return &Customer{
		id:              id,
		name:            name,
		email:           email,
		phone:           phone,
		membershipLevel: membershipLevel,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (c *Customer) ID() uint {
	return c.id
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) Email() string {
	return c.email
}

func (c *Customer) Phone() string {
	return c.phone
}

func (c *Customer) MembershipLevel() string {
	return c.membershipLevel
}

func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Customer) UpdatedAt() time.Time {
	return c.updatedAt
}

type Repository interface {
	List(ctx context.Context) ([]*Customer, error)
	GetByID(ctx context.Context, id uint) (*Customer, error)
	// Search matches name, email or phone case-insensitively, or the exact
	// id when query is numeric.
	Search(ctx context.Context, query string, limit int) ([]*Customer, error)
}
