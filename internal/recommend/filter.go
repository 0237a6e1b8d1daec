package recommend

import "github.com/coralshopping/coral-backend/pkg/docstore"

// Request captures the recommendation knobs. Preferences match either
// product category or tags.
type Request struct {
	BudgetMin   *float64
	BudgetMax   *float64
	Preferences []string
}

// BuildFilter translates a recommendation request into a store predicate.
// The budget floor defaults to zero, so a price range clause is always
// present even when the caller sets no bounds.
func BuildFilter(req Request) docstore.Predicate {
	min := 0.0
	if req.BudgetMin != nil {
		min = *req.BudgetMin
	}

	preds := docstore.And{
		docstore.Range{Field: "price", Min: &min, Max: req.BudgetMax},
	}

	if len(req.Preferences) > 0 {
		prefs := append([]string(nil), req.Preferences...)
		preds = append(preds, docstore.Or{
			docstore.In{Field: "category", Values: prefs},
			docstore.In{Field: "tags", Values: prefs},
		})
	}
	return preds
}
