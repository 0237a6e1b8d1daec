package enums

import "testing"

func TestParseProductCategory(t *testing.T) {
	got, err := ParseProductCategory("hampers")
	if err != nil || got != ProductCategoryHampers {
		t.Fatalf("got %v err %v", got, err)
	}
	if _, err := ParseProductCategory("electronics"); err == nil {
		t.Fatal("expected error for unknown category")
	}
	if _, err := ParseProductCategory("Gifts"); err == nil {
		t.Fatal("parsing is case sensitive")
	}
}

func TestProductCategoryIsValid(t *testing.T) {
	if !ProductCategoryOffice.IsValid() {
		t.Fatal("office should be valid")
	}
	if ProductCategory("electronics").IsValid() {
		t.Fatal("unknown category should be invalid")
	}
}

func TestParseDeliveryOption(t *testing.T) {
	for _, value := range []string{"pickup", "delivery"} {
		got, err := ParseDeliveryOption(value)
		if err != nil || got.String() != value {
			t.Fatalf("parse %q: got %v err %v", value, got, err)
		}
	}
	if _, err := ParseDeliveryOption("drone"); err == nil {
		t.Fatal("expected error for unknown option")
	}
}

func TestParseTicketStatus(t *testing.T) {
	got, err := ParseTicketStatus("in_progress")
	if err != nil || got != TicketStatusInProgress {
		t.Fatalf("got %v err %v", got, err)
	}
	if _, err := ParseTicketStatus("closed"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestParseAnalyticsEventType(t *testing.T) {
	got, err := ParseAnalyticsEventType("recommendation_click")
	if err != nil || got != AnalyticsEventRecommendationClick {
		t.Fatalf("got %v err %v", got, err)
	}
	if _, err := ParseAnalyticsEventType("hover"); err == nil {
		t.Fatal("expected error for unknown event type")
	}
}
