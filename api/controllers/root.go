package controllers

import (
	"net/http"

	"github.com/coralshopping/coral-backend/api/responses"
)

// Root answers the landing probe used by uptime checks.
func Root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{
			"message": "Coral Shopping Backend Running",
		})
	}
}

// Schema lists the collections the backend persists to. The list is static:
// collections are created lazily on first write, so the store itself cannot
// be asked.
func Schema() http.HandlerFunc {
	collections := []string{"customer", "product", "order", "supportticket", "analyticsevent"}
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{
			"collections": collections,
		})
	}
}
