package controllers

import (
	"net/http"

	"github.com/coralshopping/coral-backend/api/responses"
	"github.com/coralshopping/coral-backend/api/validators"
	"github.com/coralshopping/coral-backend/internal/support"
	"github.com/coralshopping/coral-backend/pkg/enums"
	pkgerrors "github.com/coralshopping/coral-backend/pkg/errors"
	"github.com/coralshopping/coral-backend/pkg/logger"
)

type createTicketRequest struct {
	CustomerID string `json:"customer_id" validate:"required"`
	Subject    string `json:"subject" validate:"required,min=1"`
	Message    string `json:"message" validate:"required,min=1"`
	Status     string `json:"status"`
}

// CreateTicket wires support ticket creation into the HTTP layer.
func CreateTicket(svc support.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "support service unavailable"))
			return
		}

		var body createTicketRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var status enums.TicketStatus
		if body.Status != "" {
			parsed, err := enums.ParseTicketStatus(body.Status)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown ticket status").
					WithDetails(map[string]any{"status": body.Status}))
				return
			}
			status = parsed
		}

		id, err := svc.CreateTicket(r.Context(), support.CreateTicketInput{
			CustomerID: body.CustomerID,
			Subject:    body.Subject,
			Message:    body.Message,
			Status:     status,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{"id": id})
	}
}
