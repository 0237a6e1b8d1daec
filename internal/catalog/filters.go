package catalog

import "github.com/coralshopping/coral-backend/pkg/docstore"

// ListFilters describe the supported filter knobs for the browse endpoint.
// Zero values mean "no constraint".
type ListFilters struct {
	Category string
	Query    string
	MinPrice *float64
	MaxPrice *float64
}

// BuildFilter translates the knobs into a document-store predicate. Absent
// fields contribute nothing; with no knobs set the result matches every
// document. The builder is pure and never touches the store.
func BuildFilter(f ListFilters) docstore.Predicate {
	preds := docstore.And{}
	if f.Category != "" {
		preds = append(preds, docstore.Eq{Field: "category", Value: f.Category})
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		preds = append(preds, docstore.Range{Field: "price", Min: f.MinPrice, Max: f.MaxPrice})
	}
	if f.Query != "" {
		preds = append(preds, docstore.Or{
			docstore.Substring{Field: "title", Value: f.Query},
			docstore.Substring{Field: "description", Value: f.Query},
			docstore.Substring{Field: "tags", Value: f.Query},
		})
	}
	return preds
}
