package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/coralshopping/coral-backend/pkg/docstore"
	pkgerrors "github.com/coralshopping/coral-backend/pkg/errors"
)

type stubStore struct {
	insertCollection string
	insertDoc        any
	insertID         string
	insertErr        error

	findCollection string
	findFilter     docstore.Predicate
	findLimit      int
	findDocs       []docstore.Document
	findErr        error
	findCalls      int
}

func (s *stubStore) Insert(_ context.Context, collection string, doc any) (string, error) {
	s.insertCollection = collection
	s.insertDoc = doc
	return s.insertID, s.insertErr
}

func (s *stubStore) Find(_ context.Context, collection string, filter docstore.Predicate, limit int) ([]docstore.Document, error) {
	s.findCalls++
	s.findCollection = collection
	s.findFilter = filter
	s.findLimit = limit
	return s.findDocs, s.findErr
}

func TestCreateProductDefaults(t *testing.T) {
	store := &stubStore{insertID: "abc"}
	svc := NewService(store)

	id, err := svc.CreateProduct(context.Background(), CreateProductInput{
		Title:    "  Jollof rice pack ",
		Price:    1500,
		Category: "foodstuffs",
		InStock:  true,
		StockQty: 3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "abc" {
		t.Fatalf("expected store id back, got %q", id)
	}
	if store.insertCollection != "product" {
		t.Fatalf("wrong collection %q", store.insertCollection)
	}

	product, ok := store.insertDoc.(Product)
	if !ok {
		t.Fatalf("expected Product document, got %T", store.insertDoc)
	}
	if product.Title != "Jollof rice pack" {
		t.Fatalf("title not trimmed: %q", product.Title)
	}
	if product.Rating != 0 {
		t.Fatalf("new products must start unrated, got %v", product.Rating)
	}
	if product.Images == nil || product.Tags == nil {
		t.Fatal("images and tags should persist as empty lists, not null")
	}
}

func TestListProductsAppliesFilter(t *testing.T) {
	store := &stubStore{findDocs: []docstore.Document{{"title": "a"}}}
	svc := NewService(store)

	docs, err := svc.ListProducts(context.Background(), ListFilters{Category: "gifts"}, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected passthrough of store results, got %d", len(docs))
	}
	if store.findLimit != 50 {
		t.Fatalf("limit not forwarded, got %d", store.findLimit)
	}
	if store.findFilter == nil {
		t.Fatal("expected a filter to be built")
	}
}

func TestCompareProductsRejectsBadIDBeforeQuery(t *testing.T) {
	store := &stubStore{}
	svc := NewService(store)

	_, err := svc.CompareProducts(context.Background(), []string{uuid.NewString(), "not-a-uuid"})
	if err == nil {
		t.Fatal("expected error for malformed id")
	}
	var appErr *pkgerrors.Error
	if !errors.As(err, &appErr) || appErr.Code() != pkgerrors.CodeInvalidID {
		t.Fatalf("expected %s, got %v", pkgerrors.CodeInvalidID, err)
	}
	if store.findCalls != 0 {
		t.Fatal("store must not be queried when any id is malformed")
	}
}

func TestCompareProductsQueriesByID(t *testing.T) {
	first, second := uuid.NewString(), uuid.NewString()
	store := &stubStore{findDocs: []docstore.Document{{"_id": first}}}
	svc := NewService(store)

	docs, err := svc.CompareProducts(context.Background(), []string{" " + first + " ", second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected store results back, got %d", len(docs))
	}

	in, ok := store.findFilter.(docstore.In)
	if !ok {
		t.Fatalf("expected membership filter, got %T", store.findFilter)
	}
	if in.Field != docstore.IDField {
		t.Fatalf("expected filter on %s, got %s", docstore.IDField, in.Field)
	}
	if len(in.Values) != 2 || in.Values[0] != first {
		t.Fatalf("ids not trimmed and forwarded: %#v", in.Values)
	}
	if store.findLimit != 2 {
		t.Fatalf("compare should fetch the full id set, got limit %d", store.findLimit)
	}
}
