package controllers

import (
	"net/http"
	"strings"

	"github.com/coralshopping/coral-backend/api/responses"
	"github.com/coralshopping/coral-backend/api/validators"
	"github.com/coralshopping/coral-backend/internal/catalog"
	"github.com/coralshopping/coral-backend/pkg/enums"
	pkgerrors "github.com/coralshopping/coral-backend/pkg/errors"
	"github.com/coralshopping/coral-backend/pkg/logger"
)

type createProductRequest struct {
	Title       string   `json:"title" validate:"required,min=1"`
	Description *string  `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	Category    string   `json:"category" validate:"required"`
	Images      []string `json:"images"`
	InStock     *bool    `json:"in_stock"`
	StockQty    int      `json:"stock_qty" validate:"gte=0"`
	Tags        []string `json:"tags"`
}

type compareRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}

// CreateProduct wires product creation into the HTTP layer.
func CreateProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		var body createProductRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		category, err := enums.ParseProductCategory(body.Category)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown category").
				WithDetails(map[string]any{"category": body.Category}))
			return
		}

		inStock := true
		if body.InStock != nil {
			inStock = *body.InStock
		}

		id, err := svc.CreateProduct(r.Context(), catalog.CreateProductInput{
			Title:       body.Title,
			Description: body.Description,
			Price:       body.Price,
			Category:    category,
			Images:      body.Images,
			InStock:     inStock,
			StockQty:    body.StockQty,
			Tags:        body.Tags,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{"id": id})
	}
}

// ListProducts wires catalog browsing into the HTTP layer. All filter knobs
// are optional query parameters.
func ListProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", defaultListLimit, 1, maxListLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		minPrice, err := validators.ParseQueryFloat(r, "minPrice")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		maxPrice, err := validators.ParseQueryFloat(r, "maxPrice")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filters := catalog.ListFilters{
			Category: strings.TrimSpace(r.URL.Query().Get("category")),
			Query:    strings.TrimSpace(r.URL.Query().Get("q")),
			MinPrice: minPrice,
			MaxPrice: maxPrice,
		}

		docs, err := svc.ListProducts(r.Context(), filters, limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, docs)
	}
}

// CompareProducts wires side-by-side comparison into the HTTP layer.
func CompareProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		var body compareRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		docs, err := svc.CompareProducts(r.Context(), body.IDs)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, docs)
	}
}
