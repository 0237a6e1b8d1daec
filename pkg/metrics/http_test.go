package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestObserveRequestCountsByRouteAndStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.ObserveRequest(http.MethodGet, "/products", http.StatusOK, 25*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/products", http.StatusOK, 40*time.Millisecond)
	m.ObserveRequest(http.MethodPost, "/orders", http.StatusBadRequest, 5*time.Millisecond)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	var requests *dto.MetricFamily
	for _, fam := range families {
		if fam.GetName() == "http_requests_total" {
			requests = fam
		}
	}
	if requests == nil {
		t.Fatal("expected http_requests_total family")
	}

	counts := map[string]float64{}
	for _, metric := range requests.GetMetric() {
		key := ""
		for _, label := range metric.GetLabel() {
			key += label.GetName() + "=" + label.GetValue() + ";"
		}
		counts[key] = metric.GetCounter().GetValue()
	}

	if got := counts["method=GET;route=/products;status=200;"]; got != 2 {
		t.Fatalf("expected 2 GET /products observations, got %v", got)
	}
	if got := counts["method=POST;route=/orders;status=400;"]; got != 1 {
		t.Fatalf("expected 1 POST /orders observation, got %v", got)
	}
}

func TestObserveRequestOnNilMetricsIsSafe(t *testing.T) {
	var m *HTTPMetrics
	m.ObserveRequest(http.MethodGet, "", http.StatusOK, time.Millisecond)

	unregistered := NewHTTPMetrics(nil)
	unregistered.ObserveRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
}
