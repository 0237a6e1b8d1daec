package recommend

import (
	"context"

	"github.com/coralshopping/coral-backend/pkg/docstore"
)

// productCollection is the catalog collection recommendations draw from.
const productCollection = "product"

// retrievalLimit caps the candidate set pulled from the store before ranking.
const retrievalLimit = 24

// Store is the document-store surface the recommender needs.
type Store interface {
	Find(ctx context.Context, collection string, filter docstore.Predicate, limit int) ([]docstore.Document, error)
}

// Service exposes product recommendations.
type Service interface {
	Recommend(ctx context.Context, req Request) ([]docstore.Document, error)
}

type service struct {
	store Store
}

// NewService builds a recommender over the given store.
func NewService(store Store) Service {
	return &service{store: store}
}

// Recommend retrieves candidates matching the budget and preferences, then
// ranks them in place before returning.
func (s *service) Recommend(ctx context.Context, req Request) ([]docstore.Document, error) {
	docs, err := s.store.Find(ctx, productCollection, BuildFilter(req), retrievalLimit)
	if err != nil {
		return nil, err
	}
	Rank(docs)
	return docs, nil
}
