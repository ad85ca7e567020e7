package wire

import (
	"movie-booking-client/internal/adaptor"
	"movie-booking-client/internal/session"
	"movie-booking-client/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	reservationHandler *adaptor.ReservationHandler,
	sess *session.Session,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(sess, log)) // Must be logged in

		r.Get("/booking/{showtimeId}", bookingHandler.SeatMap) // GET /booking/{showtimeId}
		r.Post("/booking/{showtimeId}", bookingHandler.Book)   // POST /booking/{showtimeId}

		r.Get("/my-bookings", reservationHandler.MyBookings)          // GET /my-bookings
		r.Post("/my-bookings/{id}/cancel", reservationHandler.Cancel) // POST /my-bookings/{id}/cancel
	})
}
