package controllers

import (
	"net/http"
	"strings"

	"github.com/coralshopping/coral-backend/api/responses"
	"github.com/coralshopping/coral-backend/api/validators"
	"github.com/coralshopping/coral-backend/internal/orders"
	"github.com/coralshopping/coral-backend/pkg/enums"
	pkgerrors "github.com/coralshopping/coral-backend/pkg/errors"
	"github.com/coralshopping/coral-backend/pkg/logger"
)

type orderItemRequest struct {
	ProductID string  `json:"product_id" validate:"required"`
	Title     string  `json:"title"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
	Quantity  int     `json:"quantity" validate:"required,gte=1"`
}

type createOrderRequest struct {
	CustomerID      string             `json:"customer_id" validate:"required"`
	Items           []orderItemRequest `json:"items" validate:"required,min=1,dive"`
	DeliveryOption  string             `json:"delivery_option" validate:"required"`
	DeliveryAddress *string            `json:"delivery_address"`
	Notes           *string            `json:"notes"`
}

// CreateOrder wires checkout into the HTTP layer.
func CreateOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		var body createOrderRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items := make([]orders.OrderItem, 0, len(body.Items))
		for _, item := range body.Items {
			items = append(items, orders.OrderItem{
				ProductID: item.ProductID,
				Title:     item.Title,
				UnitPrice: item.UnitPrice,
				Quantity:  item.Quantity,
			})
		}

		option, err := enums.ParseDeliveryOption(body.DeliveryOption)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown delivery option").
				WithDetails(map[string]any{"delivery_option": body.DeliveryOption}))
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithCustomerID(ctx, body.CustomerID)
		}

		confirmation, err := svc.CreateOrder(ctx, orders.CreateOrderInput{
			CustomerID:      body.CustomerID,
			Items:           items,
			DeliveryOption:  option,
			DeliveryAddress: body.DeliveryAddress,
			Notes:           body.Notes,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, confirmation)
	}
}

// ListOrders wires order history into the HTTP layer.
func ListOrders(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", defaultListLimit, 1, maxListLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		customerID := strings.TrimSpace(r.URL.Query().Get("customer_id"))
		ctx := r.Context()
		if logg != nil && customerID != "" {
			ctx = logg.WithCustomerID(ctx, customerID)
		}

		docs, err := svc.ListOrders(ctx, customerID, limit)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, docs)
	}
}
