package controllers

import (
	"net/http"

	"github.com/coralshopping/coral-backend/api/responses"
	"github.com/coralshopping/coral-backend/api/validators"
	"github.com/coralshopping/coral-backend/internal/recommend"
	pkgerrors "github.com/coralshopping/coral-backend/pkg/errors"
	"github.com/coralshopping/coral-backend/pkg/logger"
)

type recommendRequest struct {
	BudgetMin   *float64 `json:"budget_min" validate:"omitempty,gte=0"`
	BudgetMax   *float64 `json:"budget_max" validate:"omitempty,gte=0"`
	Preferences []string `json:"preferences"`
}

// Recommend wires product recommendations into the HTTP layer.
func Recommend(svc recommend.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "recommendation service unavailable"))
			return
		}

		var body recommendRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		docs, err := svc.Recommend(r.Context(), recommend.Request{
			BudgetMin:   body.BudgetMin,
			BudgetMax:   body.BudgetMax,
			Preferences: body.Preferences,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, docs)
	}
}
