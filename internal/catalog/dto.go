package catalog

import "github.com/coralshopping/coral-backend/pkg/enums"

// Product is the document shape persisted to the product collection.
type Product struct {
	Title       string                `json:"title"`
	Description *string               `json:"description"`
	Price       float64               `json:"price"`
	Category    enums.ProductCategory `json:"category"`
	Images      []string              `json:"images"`
	InStock     bool                  `json:"in_stock"`
	StockQty    int                   `json:"stock_qty"`
	Tags        []string              `json:"tags"`
	Rating      float64               `json:"rating"`
}

// CreateProductInput captures a validated product creation request. Ratings
// accrue later; new products always start at zero.
type CreateProductInput struct {
	Title       string
	Description *string
	Price       float64
	Category    enums.ProductCategory
	Images      []string
	InStock     bool
	StockQty    int
	Tags        []string
}
