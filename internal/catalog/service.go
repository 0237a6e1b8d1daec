package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/coralshopping/coral-backend/pkg/docstore"
	pkgerrors "github.com/coralshopping/coral-backend/pkg/errors"
)

// Collection is the document-store collection backing the catalog.
const Collection = "product"

// Store is the document-store surface the catalog needs.
type Store interface {
	Insert(ctx context.Context, collection string, doc any) (string, error)
	Find(ctx context.Context, collection string, filter docstore.Predicate, limit int) ([]docstore.Document, error)
}

// Service exposes product creation, browsing and comparison.
type Service interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (string, error)
	ListProducts(ctx context.Context, filters ListFilters, limit int) ([]docstore.Document, error)
	CompareProducts(ctx context.Context, ids []string) ([]docstore.Document, error)
}

type service struct {
	store Store
}

// NewService builds a catalog service over the given store.
func NewService(store Store) Service {
	return &service{store: store}
}

func (s *service) CreateProduct(ctx context.Context, input CreateProductInput) (string, error) {
	product := Product{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Images:      emptyIfNil(input.Images),
		InStock:     input.InStock,
		StockQty:    input.StockQty,
		Tags:        emptyIfNil(input.Tags),
		Rating:      0,
	}
	return s.store.Insert(ctx, Collection, product)
}

func (s *service) ListProducts(ctx context.Context, filters ListFilters, limit int) ([]docstore.Document, error) {
	return s.store.Find(ctx, Collection, BuildFilter(filters), limit)
}

// CompareProducts fetches the full document set for the given identifiers.
// Every id must be in store format before any query is issued.
func (s *service) CompareProducts(ctx context.Context, ids []string) ([]docstore.Document, error) {
	values := make([]string, 0, len(ids))
	for _, raw := range ids {
		trimmed := strings.TrimSpace(raw)
		if _, err := uuid.Parse(trimmed); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInvalidID, err, "invalid product id").
				WithDetails(map[string]any{"id": raw})
		}
		values = append(values, trimmed)
	}
	filter := docstore.In{Field: docstore.IDField, Values: values}
	return s.store.Find(ctx, Collection, filter, len(values))
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
