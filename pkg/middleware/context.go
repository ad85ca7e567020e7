package middleware

import (
	"net/http"

	"movie-booking-client/pkg/utils"

	"github.com/google/uuid"
)

// RequestContext tags each page request with an id (sent to the backend as
// X-Request-ID) and the output format picked by ?output= or the default.
func RequestContext(defaultOutput string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.NewString()
			}

			output := r.URL.Query().Get("output")
			if output == "" {
				output = defaultOutput
			}

			ctx := utils.SetRequestIDContext(r.Context(), requestID)
			ctx = utils.SetOutputContext(ctx, output)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
