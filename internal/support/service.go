package support

import (
	"context"
	"strings"

	"github.com/coralshopping/coral-backend/pkg/enums"
)

// Collection is the document-store collection backing support tickets.
const Collection = "supportticket"

// Ticket is the document shape persisted to the support ticket collection.
type Ticket struct {
	CustomerID string            `json:"customer_id"`
	Subject    string            `json:"subject"`
	Message    string            `json:"message"`
	Status     enums.TicketStatus `json:"status"`
}

// CreateTicketInput captures a validated support request. Status is optional
// and defaults to open.
type CreateTicketInput struct {
	CustomerID string
	Subject    string
	Message    string
	Status     enums.TicketStatus
}

// Store is the document-store surface the support service needs.
type Store interface {
	Insert(ctx context.Context, collection string, doc any) (string, error)
}

// Service exposes support ticket creation.
type Service interface {
	CreateTicket(ctx context.Context, input CreateTicketInput) (string, error)
}

type service struct {
	store Store
}

// NewService builds a support service over the given store.
func NewService(store Store) Service {
	return &service{store: store}
}

func (s *service) CreateTicket(ctx context.Context, input CreateTicketInput) (string, error) {
	status := input.Status
	if status == "" {
		status = enums.TicketStatusOpen
	}

	ticket := Ticket{
		CustomerID: input.CustomerID,
		Subject:    strings.TrimSpace(input.Subject),
		Message:    strings.TrimSpace(input.Message),
		Status:     status,
	}
	return s.store.Insert(ctx, Collection, ticket)
}
