package enums

import "fmt"

// DeliveryOption selects how an order reaches the customer.
type DeliveryOption string

const (
	DeliveryOptionPickup   DeliveryOption = "pickup"
	DeliveryOptionDelivery DeliveryOption = "delivery"
)

var validDeliveryOptions = []DeliveryOption{
	DeliveryOptionPickup,
	DeliveryOptionDelivery,
}

// String implements fmt.Stringer.
func (d DeliveryOption) String() string {
	return string(d)
}

// ParseDeliveryOption converts raw input into a DeliveryOption.
func ParseDeliveryOption(value string) (DeliveryOption, error) {
	for _, candidate := range validDeliveryOptions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid delivery option %q", value)
}

// PaymentMethod is fixed to bank transfer; there is no payment processor.
type PaymentMethod string

const PaymentMethodBankTransfer PaymentMethod = "bank_transfer"

// String implements fmt.Stringer.
func (p PaymentMethod) String() string {
	return string(p)
}

// PaymentStatus tracks the manual bank-transfer confirmation state.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusConfirmed PaymentStatus = "confirmed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// String implements fmt.Stringer.
func (p PaymentStatus) String() string {
	return string(p)
}

// OrderStatus is the fulfillment state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// String implements fmt.Stringer.
func (o OrderStatus) String() string {
	return string(o)
}
