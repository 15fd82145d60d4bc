package middleware

import (
	"net/http"
	"strings"
)

const allowMethods = "GET, POST, OPTIONS"
const allowHeaders = "Accept, Content-Type, Content-Length, Accept-Encoding"

// CORS sets cross-origin headers on every response and short-circuits
// preflight requests. An empty allowedOrigin falls back to "*".
func CORS(allowedOrigin string) func(http.Handler) http.Handler {
	origin := strings.TrimSpace(allowedOrigin)
	if origin == "" {
		origin = "*"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", allowMethods)
			w.Header().Set("Access-Control-Allow-Headers", allowHeaders)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
