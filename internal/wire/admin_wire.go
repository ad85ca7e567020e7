package wire

import (
	"movie-booking-client/internal/adaptor"
	"movie-booking-client/internal/session"
	"movie-booking-client/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	reservationHandler *adaptor.ReservationHandler,
	sess *session.Session,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	// Group admin routes with middleware chain
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireAdmin(sess, log)) // Must be logged in as admin

		r.Get("/dashboard", adminHandler.Dashboard)    // GET /admin/dashboard
		r.Get("/reports", adminHandler.Reports)        // GET /admin/reports
		r.Get("/reservations", reservationHandler.All) // GET /admin/reservations

		r.Get("/movies", adminHandler.Movies)              // GET /admin/movies
		r.Post("/movies", adminHandler.CreateMovie)        // POST /admin/movies
		r.Put("/movies/{id}", adminHandler.UpdateMovie)    // PUT /admin/movies/{id}
		r.Delete("/movies/{id}", adminHandler.DeleteMovie) // DELETE /admin/movies/{id}

		r.Get("/showtimes", adminHandler.Showtimes)              // GET /admin/showtimes
		r.Post("/showtimes", adminHandler.CreateShowtime)        // POST /admin/showtimes
		r.Put("/showtimes/{id}", adminHandler.UpdateShowtime)    // PUT /admin/showtimes/{id}
		r.Delete("/showtimes/{id}", adminHandler.DeleteShowtime) // DELETE /admin/showtimes/{id}
	})
}
