package docstore

import "strings"

// Predicate is a store-agnostic description of which documents match a query.
// Query renders it as an Elasticsearch query fragment without touching the
// store; rendering the same predicate twice yields structurally equal output.
type Predicate interface {
	Query() map[string]any
}

// Eq matches documents whose field equals the given value exactly.
type Eq struct {
	Field string
	Value any
}

func (p Eq) Query() map[string]any {
	field := p.Field
	if _, ok := p.Value.(string); ok {
		field = keyword(field)
	}
	return map[string]any{"term": map[string]any{field: p.Value}}
}

// Range matches a numeric field inclusively; either bound may be nil to drop
// that side of the constraint. A Range with no bounds matches everything.
type Range struct {
	Field string
	Min   *float64
	Max   *float64
}

func (p Range) Query() map[string]any {
	bounds := map[string]any{}
	if p.Min != nil {
		bounds["gte"] = *p.Min
	}
	if p.Max != nil {
		bounds["lte"] = *p.Max
	}
	if len(bounds) == 0 {
		return matchAll()
	}
	return map[string]any{"range": map[string]any{p.Field: bounds}}
}

// Substring matches a case-insensitive substring of the field value; on array
// fields any element may match.
type Substring struct {
	Field string
	Value string
}

func (p Substring) Query() map[string]any {
	return map[string]any{"wildcard": map[string]any{keyword(p.Field): map[string]any{
		"value":            "*" + escapeWildcard(p.Value) + "*",
		"case_insensitive": true,
	}}}
}

// In matches documents whose field equals any of the given values. The
// identifier field compiles to the store's dedicated ids query.
type In struct {
	Field  string
	Values []string
}

func (p In) Query() map[string]any {
	values := append([]string(nil), p.Values...)
	if p.Field == IDField {
		return map[string]any{"ids": map[string]any{"values": values}}
	}
	return map[string]any{"terms": map[string]any{keyword(p.Field): values}}
}

// And matches documents satisfying every child; an empty And matches all.
type And []Predicate

func (p And) Query() map[string]any {
	if len(p) == 0 {
		return matchAll()
	}
	if len(p) == 1 {
		return p[0].Query()
	}
	clauses := make([]map[string]any, 0, len(p))
	for _, child := range p {
		clauses = append(clauses, child.Query())
	}
	return map[string]any{"bool": map[string]any{"must": clauses}}
}

// Or matches documents satisfying at least one child.
type Or []Predicate

func (p Or) Query() map[string]any {
	if len(p) == 0 {
		return matchAll()
	}
	if len(p) == 1 {
		return p[0].Query()
	}
	clauses := make([]map[string]any, 0, len(p))
	for _, child := range p {
		clauses = append(clauses, child.Query())
	}
	return map[string]any{"bool": map[string]any{
		"should":               clauses,
		"minimum_should_match": 1,
	}}
}

func matchAll() map[string]any {
	return map[string]any{"match_all": map[string]any{}}
}

// keyword targets the exact-value subfield produced by dynamic mapping.
func keyword(field string) string {
	return field + ".keyword"
}

var wildcardEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`)

func escapeWildcard(value string) string {
	return wildcardEscaper.Replace(value)
}
