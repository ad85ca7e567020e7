package middleware

import (
	"net/http"

	"movie-booking-client/pkg/utils"

	"go.uber.org/zap"
)

// SessionReader is the part of the client session the guards look at.
type SessionReader interface {
	IsAuthenticated() bool
	IsAdmin() bool
}

// RequireAuth - halaman hanya untuk user yang sudah login
func RequireAuth(session SessionReader, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !session.IsAuthenticated() {
				logger.Debug("Guard: login required", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Please login to continue")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin - middleware cek role admin
func RequireAdmin(session SessionReader, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 1. Harus login dulu
			if !session.IsAuthenticated() {
				logger.Debug("Guard: login required", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Please login to continue")
				return
			}

			// 2. Check if admin
			if !session.IsAdmin() {
				logger.Warn("Admin check: non-admin access attempt", zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// PublicOnly sends logged-in users away from the login and register pages
func PublicOnly(session SessionReader, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if session.IsAuthenticated() {
				logger.Debug("Guard: already logged in", zap.String("path", r.URL.Path))
				utils.ResponseSeeOther(w, "You are already logged in", "/")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
