package middleware

import (
	"fmt"
	"net/http"

	"movie-booking-client/pkg/utils"

	"go.uber.org/zap"
)

// Recover keeps a broken page from ending the shell session
func Recover(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil || rec == http.ErrAbortHandler {
					return
				}

				logger.Error("Page panicked",
					zap.String("page", r.URL.Path),
					zap.String("error", fmt.Sprint(rec)),
					zap.Stack("stack"),
				)
				utils.ResponseText(w, http.StatusInternalServerError,
					fmt.Sprintf("%s %s failed unexpectedly, details are in the log", r.Method, r.URL.Path))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
