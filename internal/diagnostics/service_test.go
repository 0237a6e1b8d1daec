package diagnostics

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

type stubStore struct {
	pingErr        error
	collections    []string
	collectionsErr error
}

func (s *stubStore) Ping(context.Context) error { return s.pingErr }

func (s *stubStore) Collections(context.Context) ([]string, error) {
	return s.collections, s.collectionsErr
}

type stubCache struct {
	pingErr error
}

func (s *stubCache) Ping(context.Context) error { return s.pingErr }

func TestCheckAllHealthy(t *testing.T) {
	svc := NewService(&stubStore{collections: []string{"product", "customer"}}, &stubCache{})

	report := svc.Check(context.Background())
	if report.Backend != "running" {
		t.Fatalf("backend %q", report.Backend)
	}
	if report.Store != StateConnected || report.Cache != StateConnected {
		t.Fatalf("expected healthy components: %+v", report)
	}
	if want := []string{"customer", "product"}; !reflect.DeepEqual(report.Collections, want) {
		t.Fatalf("collections should be sorted: %v", report.Collections)
	}
	if report.Error != "" {
		t.Fatalf("unexpected error field: %q", report.Error)
	}
}

func TestCheckStoreDown(t *testing.T) {
	svc := NewService(&stubStore{pingErr: errors.New("connection refused")}, nil)

	report := svc.Check(context.Background())
	if report.Store != StateUnavailable {
		t.Fatalf("store state %q", report.Store)
	}
	if report.Cache != StateDisabled {
		t.Fatalf("nil cache should report disabled, got %q", report.Cache)
	}
	if !strings.Contains(report.Error, "connection refused") {
		t.Fatalf("probe error not surfaced: %q", report.Error)
	}
	if len(report.Collections) != 0 {
		t.Fatalf("no collections expected when store is down: %v", report.Collections)
	}
}

func TestCheckCollectionListingFailureDegrades(t *testing.T) {
	svc := NewService(&stubStore{collectionsErr: errors.New("timeout")}, nil)

	report := svc.Check(context.Background())
	if report.Store != StateDegraded {
		t.Fatalf("store state %q", report.Store)
	}
}

func TestCheckAggregatesMultipleFailures(t *testing.T) {
	svc := NewService(
		&stubStore{collectionsErr: errors.New("store timeout")},
		&stubCache{pingErr: errors.New("cache refused")},
	)

	report := svc.Check(context.Background())
	if report.Cache != StateUnavailable {
		t.Fatalf("cache state %q", report.Cache)
	}
	if !strings.Contains(report.Error, "store timeout") || !strings.Contains(report.Error, "cache refused") {
		t.Fatalf("both failures should be reported: %q", report.Error)
	}
}

func TestCheckCapsCollectionList(t *testing.T) {
	names := make([]string, 15)
	for i := range names {
		names[i] = string(rune('a' + i))
	}
	svc := NewService(&stubStore{collections: names}, nil)

	report := svc.Check(context.Background())
	if len(report.Collections) != maxCollections {
		t.Fatalf("expected %d collections, got %d", maxCollections, len(report.Collections))
	}
}
