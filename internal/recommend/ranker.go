package recommend

import (
	"sort"

	"github.com/coralshopping/coral-backend/pkg/docstore"
)

// Rank orders candidates by value for money: cheapest first, with higher
// rating breaking price ties. The sort is stable, so documents equal on both
// keys keep their retrieval order. Missing prices and ratings count as zero.
func Rank(docs []docstore.Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		pi := docs[i].Float("price", 0)
		pj := docs[j].Float("price", 0)
		if pi != pj {
			return pi < pj
		}
		return docs[i].Float("rating", 0) > docs[j].Float("rating", 0)
	})
}
