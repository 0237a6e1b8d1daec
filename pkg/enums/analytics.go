package enums

import "fmt"

// AnalyticsEventType enumerates the tracked shopper interactions.
type AnalyticsEventType string

const (
	AnalyticsEventView                AnalyticsEventType = "view"
	AnalyticsEventClick               AnalyticsEventType = "click"
	AnalyticsEventAddToCart           AnalyticsEventType = "add_to_cart"
	AnalyticsEventPurchase            AnalyticsEventType = "purchase"
	AnalyticsEventRecommendationClick AnalyticsEventType = "recommendation_click"
)

var validAnalyticsEventTypes = []AnalyticsEventType{
	AnalyticsEventView,
	AnalyticsEventClick,
	AnalyticsEventAddToCart,
	AnalyticsEventPurchase,
	AnalyticsEventRecommendationClick,
}

// String implements fmt.Stringer.
func (t AnalyticsEventType) String() string {
	return string(t)
}

// ParseAnalyticsEventType converts raw input into an AnalyticsEventType.
func ParseAnalyticsEventType(value string) (AnalyticsEventType, error) {
	for _, candidate := range validAnalyticsEventTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid analytics event type %q", value)
}
