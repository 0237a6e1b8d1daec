package controllers

import (
	"net/http"

	"github.com/coralshopping/coral-backend/api/responses"
	"github.com/coralshopping/coral-backend/api/validators"
	"github.com/coralshopping/coral-backend/internal/customers"
	pkgerrors "github.com/coralshopping/coral-backend/pkg/errors"
	"github.com/coralshopping/coral-backend/pkg/logger"
)

type createCustomerRequest struct {
	FullName string  `json:"full_name" validate:"required,min=1"`
	Email    string  `json:"email" validate:"required,email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

// CreateCustomer wires customer signup into the HTTP layer.
func CreateCustomer(svc customers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customer service unavailable"))
			return
		}

		var body createCustomerRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := svc.CreateCustomer(r.Context(), customers.CreateCustomerInput{
			FullName: body.FullName,
			Email:    body.Email,
			Phone:    body.Phone,
			Address:  body.Address,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{"id": id})
	}
}

// ListCustomers wires customer listing into the HTTP layer.
func ListCustomers(svc customers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customer service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", defaultListLimit, 1, maxListLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		docs, err := svc.ListCustomers(r.Context(), limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, docs)
	}
}
