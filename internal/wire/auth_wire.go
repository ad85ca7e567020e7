package wire

import (
	"movie-booking-client/internal/adaptor"
	"movie-booking-client/internal/session"
	"movie-booking-client/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	sess *session.Session,
	log *zap.Logger,
) {
	// ==================== PUBLIC ONLY ROUTES ====================
	// Logged-in users are sent home
	r.Group(func(r chi.Router) {
		r.Use(middleware.PublicOnly(sess, log))

		r.Get("/login", authHandler.LoginForm)
		r.Post("/login", authHandler.Login)
		r.Get("/register", authHandler.RegisterForm)
		r.Post("/register", authHandler.Register)
	})

	// ==================== SESSION ROUTES ====================
	r.Post("/logout", authHandler.Logout)
	r.Get("/whoami", authHandler.WhoAmI)
	r.Get("/nav", authHandler.Nav)
}
