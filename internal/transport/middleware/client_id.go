package middleware

import (
	"net/http"
	"strings"

	"github.com/one393143/quizlet/pkg/ctxutil"
)

// ClientIDHeader identifies the calling client for log correlation.
const ClientIDHeader = "X-Client-Id"

const maxClientIDLen = 64

// ClientID copies X-Client-Id into the context. Missing or oversized values are ignored.
func ClientID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(ClientIDHeader))
			if id != "" && len(id) <= maxClientIDLen {
				r = r.WithContext(ctxutil.WithClientID(r.Context(), id))
			}
			next.ServeHTTP(w, r)
		})
	}
}
