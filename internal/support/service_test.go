package support

import (
	"context"
	"testing"

	"github.com/coralshopping/coral-backend/pkg/enums"
)

type stubStore struct {
	collection string
	doc        any
	id         string
}

func (s *stubStore) Insert(_ context.Context, collection string, doc any) (string, error) {
	s.collection = collection
	s.doc = doc
	return s.id, nil
}

func TestCreateTicketDefaultsToOpen(t *testing.T) {
	store := &stubStore{id: "ticket-1"}
	svc := NewService(store)

	id, err := svc.CreateTicket(context.Background(), CreateTicketInput{
		CustomerID: "cust-1",
		Subject:    "  Missing item ",
		Message:    "My hamper arrived without the tea.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "ticket-1" {
		t.Fatalf("expected store id back, got %q", id)
	}
	if store.collection != "supportticket" {
		t.Fatalf("wrong collection %q", store.collection)
	}

	ticket := store.doc.(Ticket)
	if ticket.Status != enums.TicketStatusOpen {
		t.Fatalf("status should default to open, got %q", ticket.Status)
	}
	if ticket.Subject != "Missing item" {
		t.Fatalf("subject not trimmed: %q", ticket.Subject)
	}
}

func TestCreateTicketKeepsExplicitStatus(t *testing.T) {
	store := &stubStore{}
	svc := NewService(store)

	if _, err := svc.CreateTicket(context.Background(), CreateTicketInput{
		CustomerID: "cust-1",
		Subject:    "Refund",
		Message:    "Please refund my order.",
		Status:     enums.TicketStatusInProgress,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := store.doc.(Ticket).Status; got != enums.TicketStatusInProgress {
		t.Fatalf("explicit status overridden to %q", got)
	}
}
