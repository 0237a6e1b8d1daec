package orders

import (
	"context"
	"testing"

	"github.com/coralshopping/coral-backend/pkg/docstore"
	"github.com/coralshopping/coral-backend/pkg/enums"
)

type stubStore struct {
	insertCollection string
	insertDoc        any
	insertID         string
	insertErr        error

	findFilter docstore.Predicate
	findLimit  int
	findDocs   []docstore.Document
}

func (s *stubStore) Insert(_ context.Context, collection string, doc any) (string, error) {
	s.insertCollection = collection
	s.insertDoc = doc
	return s.insertID, s.insertErr
}

func (s *stubStore) Find(_ context.Context, collection string, filter docstore.Predicate, limit int) ([]docstore.Document, error) {
	s.findFilter = filter
	s.findLimit = limit
	return s.findDocs, nil
}

func TestCreateOrderPersistsComputedState(t *testing.T) {
	store := &stubStore{insertID: "9f86d081-8c3d-4b29-a8f3-0023cdd0e1aa"}
	svc := NewService(store)

	address := "12 Marina Road, Lagos"
	confirmation, err := svc.CreateOrder(context.Background(), CreateOrderInput{
		CustomerID:      "cust-1",
		Items:           []OrderItem{{ProductID: "p1", Title: "Rice", UnitPrice: 100, Quantity: 2}},
		DeliveryOption:  enums.DeliveryOptionDelivery,
		DeliveryAddress: &address,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	order, ok := store.insertDoc.(Order)
	if !ok {
		t.Fatalf("expected Order document, got %T", store.insertDoc)
	}
	if order.Subtotal != 200 || order.ShippingFee != 1200 || order.Total != 1400 {
		t.Fatalf("totals wrong: %+v", order)
	}
	if order.PaymentMethod != enums.PaymentMethodBankTransfer {
		t.Fatalf("payment method %q", order.PaymentMethod)
	}
	if order.PaymentStatus != enums.PaymentStatusPending || order.Status != enums.OrderStatusPending {
		t.Fatalf("new orders must start pending: payment=%q status=%q", order.PaymentStatus, order.Status)
	}

	if confirmation.ID != store.insertID {
		t.Fatalf("confirmation id %q", confirmation.ID)
	}
	if confirmation.Total != 1400 || confirmation.Instructions.Amount != 1400 {
		t.Fatalf("confirmation amounts wrong: %+v", confirmation)
	}
}

func TestCreateOrderBankInstructions(t *testing.T) {
	store := &stubStore{insertID: "9f86d081-8c3d-4b29-a8f3-0023cdd0e1aa"}
	svc := NewService(store)

	confirmation, err := svc.CreateOrder(context.Background(), CreateOrderInput{
		CustomerID:     "cust-1",
		Items:          []OrderItem{{ProductID: "p1", UnitPrice: 100, Quantity: 1}},
		DeliveryOption: enums.DeliveryOptionPickup,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ins := confirmation.Instructions
	if ins.AccountName != "Coral Shopping LTD" || ins.Bank != "GTBank" || ins.AccountNumber != "0123456789" {
		t.Fatalf("bank block wrong: %+v", ins)
	}
	if ins.Narration != "ORDER-9F86D0" {
		t.Fatalf("narration %q", ins.Narration)
	}
}

func TestListOrdersFiltersByCustomer(t *testing.T) {
	store := &stubStore{}
	svc := NewService(store)

	if _, err := svc.ListOrders(context.Background(), "cust-1", 50); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	eq, ok := store.findFilter.(docstore.Eq)
	if !ok {
		t.Fatalf("expected equality filter, got %T", store.findFilter)
	}
	if eq.Field != "customer_id" || eq.Value != "cust-1" {
		t.Fatalf("filter wrong: %+v", eq)
	}

	if _, err := svc.ListOrders(context.Background(), "", 50); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.findFilter != nil {
		t.Fatalf("unscoped listing should be unfiltered, got %#v", store.findFilter)
	}
}
