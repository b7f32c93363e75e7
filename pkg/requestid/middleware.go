package requestid

import (
	"net/http"

	"github.com/google/uuid"
)

// Header is the request/response header carrying the request ID.
const Header = "X-Request-ID"

const maxIDLength = 128

// Middleware propagates an incoming X-Request-ID or generates a fresh UUID,
// echoing it on the response and storing it in the request context.
// Malformed incoming IDs are replaced rather than rejected.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if !validID(id) {
			id = uuid.New().String()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
	})
}

// validID accepts non-empty IDs of bounded length made of URL-safe
// characters: letters, digits, '-' and '_'.
func validID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_':
		default:
			return false
		}
	}
	return true
}
