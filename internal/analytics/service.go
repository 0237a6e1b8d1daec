package analytics

import (
	"context"
	"time"

	"github.com/coralshopping/coral-backend/pkg/enums"
)

// Collection is the document-store collection backing analytics events.
const Collection = "analyticsevent"

// Event is the document shape persisted for a tracked interaction. The
// timestamp is client-supplied and stored as received; nothing is defaulted.
type Event struct {
	Type       enums.AnalyticsEventType `json:"type"`
	CustomerID *string                  `json:"customer_id"`
	ProductID  *string                  `json:"product_id"`
	Meta       map[string]any           `json:"meta"`
	Timestamp  *time.Time               `json:"timestamp"`
}

// Store is the document-store surface the tracker needs.
type Store interface {
	Insert(ctx context.Context, collection string, doc any) (string, error)
}

// Service exposes event tracking.
type Service interface {
	Track(ctx context.Context, event Event) (string, error)
}

type service struct {
	store Store
}

// NewService builds an analytics tracker over the given store.
func NewService(store Store) Service {
	return &service{store: store}
}

func (s *service) Track(ctx context.Context, event Event) (string, error) {
	if event.Meta == nil {
		event.Meta = map[string]any{}
	}
	return s.store.Insert(ctx, Collection, event)
}
