package middleware

import (
	"net/http"

	inHttp "github.com/readify/shop/internal/http"
)

// Cors wraps the whole router so preflight requests short-circuit before
// routing: OPTIONS answers an empty 200 advertising the requested method.
// Every other response advertises its own method.
func Cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(inHttp.HeaderAllowOrigin, "*")
		w.Header().Set(inHttp.HeaderAllowHeaders, inHttp.HeaderContentType)

		if r.Method == http.MethodOptions {
			method := r.Header.Get("Access-Control-Request-Method")
			if method == "" {
				method = http.MethodGet
			}
			w.Header().Set(inHttp.HeaderAllowMethods, method)
			w.WriteHeader(http.StatusOK)
			return
		}

		w.Header().Set(inHttp.HeaderAllowMethods, r.Method)
		next.ServeHTTP(w, r)
	})
}

// MethodNotAllowed is the router's MethodNotAllowedHandler; it reports the
// transport-level failure in the same envelope every endpoint uses.
func MethodNotAllowed() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inHttp.WriteJsonResponse(r.Context(), w, nil, http.StatusMethodNotAllowed, map[string]interface{}{
			"success": false,
			"message": "Method not allowed",
		})
	})
}
