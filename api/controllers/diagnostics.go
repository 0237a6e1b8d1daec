package controllers

import (
	"net/http"

	"github.com/coralshopping/coral-backend/api/responses"
	"github.com/coralshopping/coral-backend/internal/diagnostics"
	pkgerrors "github.com/coralshopping/coral-backend/pkg/errors"
	"github.com/coralshopping/coral-backend/pkg/logger"
)

// Diagnostics wires the health probe into the HTTP layer. The probe itself
// never fails; degraded components are reported inside the payload.
func Diagnostics(svc diagnostics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "diagnostics service unavailable"))
			return
		}

		responses.WriteSuccess(w, svc.Check(r.Context()))
	}
}
