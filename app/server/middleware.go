package server

import (
	"net/http"

	"github.com/google/uuid"
)

// requestID makes sure every request carries X-Request-ID and echoes it in the response.
// The web handler stamps it on the rendered page.
func requestID(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
			r.Header.Set("X-Request-ID", id)
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(fn)
}
