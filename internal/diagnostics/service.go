package diagnostics

import (
	"context"
	"sort"

	"go.uber.org/multierr"
)

// maxCollections caps how many collection names a probe reports.
const maxCollections = 10

// Component states reported by a probe.
const (
	StateConnected   = "connected"
	StateDegraded    = "degraded"
	StateUnavailable = "unavailable"
	StateDisabled    = "disabled"
)

// StoreProber is the document-store surface a health probe needs.
type StoreProber interface {
	Ping(ctx context.Context) error
	Collections(ctx context.Context) ([]string, error)
}

// CachePinger is the cache surface a health probe needs.
type CachePinger interface {
	Ping(ctx context.Context) error
}

// Report is the health probe payload. A probe always succeeds at the HTTP
// level; component trouble shows up in the fields, never as a hard failure.
type Report struct {
	Backend     string   `json:"backend"`
	Store       string   `json:"store"`
	Cache       string   `json:"cache"`
	Collections []string `json:"collections"`
	Error       string   `json:"error,omitempty"`
}

// Service exposes the health probe.
type Service interface {
	Check(ctx context.Context) Report
}

type service struct {
	store StoreProber
	cache CachePinger
}

// NewService builds a diagnostics service. cache may be nil when no cache is
// configured.
func NewService(store StoreProber, cache CachePinger) Service {
	return &service{store: store, cache: cache}
}

func (s *service) Check(ctx context.Context) Report {
	report := Report{
		Backend:     "running",
		Store:       StateUnavailable,
		Cache:       StateDisabled,
		Collections: []string{},
	}

	var probeErr error
	if err := s.store.Ping(ctx); err != nil {
		probeErr = multierr.Append(probeErr, err)
	} else {
		report.Store = StateConnected
		names, err := s.store.Collections(ctx)
		if err != nil {
			report.Store = StateDegraded
			probeErr = multierr.Append(probeErr, err)
		} else {
			sort.Strings(names)
			if len(names) > maxCollections {
				names = names[:maxCollections]
			}
			report.Collections = names
		}
	}

	if s.cache != nil {
		if err := s.cache.Ping(ctx); err != nil {
			report.Cache = StateUnavailable
			probeErr = multierr.Append(probeErr, err)
		} else {
			report.Cache = StateConnected
		}
	}

	if probeErr != nil {
		report.Error = probeErr.Error()
	}
	return report
}
