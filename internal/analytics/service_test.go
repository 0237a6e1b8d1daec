package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/coralshopping/coral-backend/pkg/enums"
)

type stubStore struct {
	collection string
	doc        any
}

func (s *stubStore) Insert(_ context.Context, collection string, doc any) (string, error) {
	s.collection = collection
	s.doc = doc
	return "evt-1", nil
}

func TestTrackStoresEventAsReceived(t *testing.T) {
	store := &stubStore{}
	svc := NewService(store)

	when := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	productID := "prod-1"
	id, err := svc.Track(context.Background(), Event{
		Type:      enums.AnalyticsEventView,
		ProductID: &productID,
		Timestamp: &when,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "evt-1" {
		t.Fatalf("expected store id back, got %q", id)
	}
	if store.collection != "analyticsevent" {
		t.Fatalf("wrong collection %q", store.collection)
	}

	event := store.doc.(Event)
	if event.Timestamp == nil || !event.Timestamp.Equal(when) {
		t.Fatalf("timestamp must be stored as received, got %v", event.Timestamp)
	}
	if event.CustomerID != nil {
		t.Fatal("absent customer id should stay null")
	}
	if event.Meta == nil {
		t.Fatal("meta should persist as an empty object, not null")
	}
}

func TestTrackWithoutTimestamp(t *testing.T) {
	store := &stubStore{}
	svc := NewService(store)

	if _, err := svc.Track(context.Background(), Event{Type: enums.AnalyticsEventPurchase}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event := store.doc.(Event); event.Timestamp != nil {
		t.Fatalf("missing timestamp must not be defaulted, got %v", event.Timestamp)
	}
}
