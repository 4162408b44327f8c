// internal/app/system/requestid/requestid.go
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type ctxKey string

const requestIDKey ctxKey = "requestID"

// Header is the response header carrying the correlation ID.
const Header = "X-Request-ID"

// Middleware assigns each request a correlation ID and echoes it in the
// response. An inbound X-Request-ID is honored so upstream proxies can
// correlate their own logs.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FromRequest returns the correlation ID for the request, or "" if the
// middleware did not run.
func FromRequest(r *http.Request) string {
	id, _ := r.Context().Value(requestIDKey).(string)
	return id
}
