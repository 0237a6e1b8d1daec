package orders

import "github.com/coralshopping/coral-backend/pkg/enums"

// OrderItem is a priced line captured at checkout. Unit prices are snapshotted
// from the client request, not re-read from the catalog.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// Order is the document shape persisted to the order collection. Totals are
// computed once at creation and stored alongside the items.
type Order struct {
	CustomerID      string               `json:"customer_id"`
	Items           []OrderItem          `json:"items"`
	Subtotal        float64              `json:"subtotal"`
	ShippingFee     float64              `json:"shipping_fee"`
	Total           float64              `json:"total"`
	DeliveryOption  enums.DeliveryOption `json:"delivery_option"`
	DeliveryAddress *string              `json:"delivery_address"`
	Notes           *string              `json:"notes"`
	PaymentMethod   enums.PaymentMethod  `json:"payment_method"`
	PaymentStatus   enums.PaymentStatus  `json:"payment_status"`
	Status          enums.OrderStatus    `json:"status"`
}

// CreateOrderInput captures a validated checkout request.
type CreateOrderInput struct {
	CustomerID      string
	Items           []OrderItem
	DeliveryOption  enums.DeliveryOption
	DeliveryAddress *string
	Notes           *string
}

// BankTransferInstructions tell the customer where to send payment for a
// freshly placed order.
type BankTransferInstructions struct {
	AccountName   string  `json:"account_name"`
	Bank          string  `json:"bank"`
	AccountNumber string  `json:"account_number"`
	Amount        float64 `json:"amount"`
	Narration     string  `json:"narration"`
}

// OrderConfirmation is the checkout response payload.
type OrderConfirmation struct {
	ID           string                   `json:"id"`
	Subtotal     float64                  `json:"subtotal"`
	ShippingFee  float64                  `json:"shipping_fee"`
	Total        float64                  `json:"total"`
	Status       enums.OrderStatus        `json:"status"`
	Instructions BankTransferInstructions `json:"bank_transfer_instructions"`
}
