// Package requestid assigns every request an identifier used to correlate
// log lines. An incoming X-Request-ID header is reused when it is a UUID.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"credo-tcf/pkg/requestcontext"
)

// Header carries the request ID on requests and responses.
const Header = "X-Request-ID"

// Middleware stores the request ID in the context and echoes it back.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(Header)
		if _, err := uuid.Parse(reqID); err != nil {
			reqID = uuid.NewString()
		}
		w.Header().Set(Header, reqID)
		ctx := requestcontext.WithRequestID(r.Context(), reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
