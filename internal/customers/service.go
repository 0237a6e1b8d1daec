package customers

import (
	"context"
	"strings"

	"github.com/coralshopping/coral-backend/pkg/docstore"
)

// Collection is the document-store collection backing customer accounts.
const Collection = "customer"

// Customer is the document shape persisted to the customer collection.
type Customer struct {
	FullName  string   `json:"full_name"`
	Email     string   `json:"email"`
	Phone     *string  `json:"phone"`
	Addresses []string `json:"addresses"`
	Balance   float64  `json:"balance"`
	IsActive  bool     `json:"is_active"`
}

// CreateCustomerInput captures a validated signup request. A single optional
// address seeds the address book.
type CreateCustomerInput struct {
	FullName string
	Email    string
	Phone    *string
	Address  *string
}

// Store is the document-store surface the customer service needs.
type Store interface {
	Insert(ctx context.Context, collection string, doc any) (string, error)
	Find(ctx context.Context, collection string, filter docstore.Predicate, limit int) ([]docstore.Document, error)
}

// Service exposes customer signup and listing.
type Service interface {
	CreateCustomer(ctx context.Context, input CreateCustomerInput) (string, error)
	ListCustomers(ctx context.Context, limit int) ([]docstore.Document, error)
}

type service struct {
	store Store
}

// NewService builds a customer service over the given store.
func NewService(store Store) Service {
	return &service{store: store}
}

func (s *service) CreateCustomer(ctx context.Context, input CreateCustomerInput) (string, error) {
	addresses := []string{}
	if input.Address != nil && strings.TrimSpace(*input.Address) != "" {
		addresses = append(addresses, strings.TrimSpace(*input.Address))
	}

	customer := Customer{
		FullName:  strings.TrimSpace(input.FullName),
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:     input.Phone,
		Addresses: addresses,
		Balance:   0,
		IsActive:  true,
	}
	return s.store.Insert(ctx, Collection, customer)
}

func (s *service) ListCustomers(ctx context.Context, limit int) ([]docstore.Document, error) {
	return s.store.Find(ctx, Collection, nil, limit)
}
