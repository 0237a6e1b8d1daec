package controllers

import (
	"net/http"
	"time"

	"github.com/coralshopping/coral-backend/api/responses"
	"github.com/coralshopping/coral-backend/api/validators"
	"github.com/coralshopping/coral-backend/internal/analytics"
	"github.com/coralshopping/coral-backend/pkg/enums"
	pkgerrors "github.com/coralshopping/coral-backend/pkg/errors"
	"github.com/coralshopping/coral-backend/pkg/logger"
)

type trackEventRequest struct {
	Type       string         `json:"type" validate:"required"`
	CustomerID *string        `json:"customer_id"`
	ProductID  *string        `json:"product_id"`
	Meta       map[string]any `json:"meta"`
	Timestamp  *time.Time     `json:"timestamp"`
}

// TrackEvent wires analytics ingestion into the HTTP layer.
func TrackEvent(svc analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "analytics service unavailable"))
			return
		}

		var body trackEventRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		eventType, err := enums.ParseAnalyticsEventType(body.Type)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown event type").
				WithDetails(map[string]any{"type": body.Type}))
			return
		}

		id, err := svc.Track(r.Context(), analytics.Event{
			Type:       eventType,
			CustomerID: body.CustomerID,
			ProductID:  body.ProductID,
			Meta:       body.Meta,
			Timestamp:  body.Timestamp,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{"status": "ok", "id": id})
	}
}
