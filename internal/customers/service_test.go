package customers

import (
	"context"
	"testing"

	"github.com/coralshopping/coral-backend/pkg/docstore"
)

type stubStore struct {
	insertCollection string
	insertDoc        any
	insertID         string

	findCollection string
	findFilter     docstore.Predicate
	findLimit      int
	findDocs       []docstore.Document
}

func (s *stubStore) Insert(_ context.Context, collection string, doc any) (string, error) {
	s.insertCollection = collection
	s.insertDoc = doc
	return s.insertID, nil
}

func (s *stubStore) Find(_ context.Context, collection string, filter docstore.Predicate, limit int) ([]docstore.Document, error) {
	s.findCollection = collection
	s.findFilter = filter
	s.findLimit = limit
	return s.findDocs, nil
}

func TestCreateCustomerDefaults(t *testing.T) {
	store := &stubStore{insertID: "cust-1"}
	svc := NewService(store)

	address := " 12 Marina Road, Lagos "
	id, err := svc.CreateCustomer(context.Background(), CreateCustomerInput{
		FullName: " Ada Obi ",
		Email:    "Ada@Example.COM",
		Address:  &address,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "cust-1" {
		t.Fatalf("expected store id back, got %q", id)
	}
	if store.insertCollection != "customer" {
		t.Fatalf("wrong collection %q", store.insertCollection)
	}

	customer, ok := store.insertDoc.(Customer)
	if !ok {
		t.Fatalf("expected Customer document, got %T", store.insertDoc)
	}
	if customer.FullName != "Ada Obi" {
		t.Fatalf("name not trimmed: %q", customer.FullName)
	}
	if customer.Email != "ada@example.com" {
		t.Fatalf("email not normalized: %q", customer.Email)
	}
	if len(customer.Addresses) != 1 || customer.Addresses[0] != "12 Marina Road, Lagos" {
		t.Fatalf("address not seeded: %#v", customer.Addresses)
	}
	if customer.Balance != 0 || !customer.IsActive {
		t.Fatalf("defaults wrong: balance=%v active=%v", customer.Balance, customer.IsActive)
	}
}

func TestCreateCustomerWithoutAddress(t *testing.T) {
	store := &stubStore{}
	svc := NewService(store)

	if _, err := svc.CreateCustomer(context.Background(), CreateCustomerInput{
		FullName: "Ada Obi",
		Email:    "ada@example.com",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	customer := store.insertDoc.(Customer)
	if customer.Addresses == nil || len(customer.Addresses) != 0 {
		t.Fatalf("address book should be an empty list, got %#v", customer.Addresses)
	}
	if customer.Phone != nil {
		t.Fatalf("phone should stay null when absent, got %v", *customer.Phone)
	}
}

func TestListCustomersUnfiltered(t *testing.T) {
	store := &stubStore{findDocs: []docstore.Document{{"full_name": "Ada"}}}
	svc := NewService(store)

	docs, err := svc.ListCustomers(context.Background(), 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected store results back, got %d", len(docs))
	}
	if store.findFilter != nil {
		t.Fatalf("listing should be unfiltered, got %#v", store.findFilter)
	}
	if store.findLimit != 50 {
		t.Fatalf("limit not forwarded, got %d", store.findLimit)
	}
}
