package orders

import (
	"context"
	"strings"

	"github.com/coralshopping/coral-backend/pkg/docstore"
	"github.com/coralshopping/coral-backend/pkg/enums"
)

// Collection is the document-store collection backing orders.
const Collection = "order"

// Bank details shown on every order confirmation.
const (
	bankAccountName   = "Coral Shopping LTD"
	bankName          = "GTBank"
	bankAccountNumber = "0123456789"
)

// Store is the document-store surface the order service needs.
type Store interface {
	Insert(ctx context.Context, collection string, doc any) (string, error)
	Find(ctx context.Context, collection string, filter docstore.Predicate, limit int) ([]docstore.Document, error)
}

// Service exposes checkout and order listing.
type Service interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*OrderConfirmation, error)
	ListOrders(ctx context.Context, customerID string, limit int) ([]docstore.Document, error)
}

type service struct {
	store Store
}

// NewService builds an order service over the given store.
func NewService(store Store) Service {
	return &service{store: store}
}

// CreateOrder persists the order with its computed totals and returns bank
// transfer instructions. Payment always starts pending; confirmation happens
// out of band.
func (s *service) CreateOrder(ctx context.Context, input CreateOrderInput) (*OrderConfirmation, error) {
	totals := ComputeTotals(input.Items, input.DeliveryOption)

	order := Order{
		CustomerID:      input.CustomerID,
		Items:           input.Items,
		Subtotal:        totals.Subtotal,
		ShippingFee:     totals.ShippingFee,
		Total:           totals.Total,
		DeliveryOption:  input.DeliveryOption,
		DeliveryAddress: input.DeliveryAddress,
		Notes:           input.Notes,
		PaymentMethod:   enums.PaymentMethodBankTransfer,
		PaymentStatus:   enums.PaymentStatusPending,
		Status:          enums.OrderStatusPending,
	}

	id, err := s.store.Insert(ctx, Collection, order)
	if err != nil {
		return nil, err
	}

	return &OrderConfirmation{
		ID:          id,
		Subtotal:    totals.Subtotal,
		ShippingFee: totals.ShippingFee,
		Total:       totals.Total,
		Status:      enums.OrderStatusPending,
		Instructions: BankTransferInstructions{
			AccountName:   bankAccountName,
			Bank:          bankName,
			AccountNumber: bankAccountNumber,
			Amount:        totals.Total,
			Narration:     narrationFor(id),
		},
	}, nil
}

func (s *service) ListOrders(ctx context.Context, customerID string, limit int) ([]docstore.Document, error) {
	var filter docstore.Predicate
	if customerID != "" {
		filter = docstore.Eq{Field: "customer_id", Value: customerID}
	}
	return s.store.Find(ctx, Collection, filter, limit)
}

// narrationFor derives the transfer reference customers put on their payment:
// the first six characters of the order id, uppercased.
func narrationFor(id string) string {
	ref := id
	if len(ref) > 6 {
		ref = ref[:6]
	}
	return "ORDER-" + strings.ToUpper(ref)
}
