package usecase

import (
	"context"
	"errors"
	"time"

	"movie-booking-client/internal/data/repository"
	"movie-booking-client/internal/session"
	"movie-booking-client/pkg/notify"

	"go.uber.org/zap"
)

// ErrNotConfirmed is returned when the user declines a destructive action.
var ErrNotConfirmed = errors.New("action not confirmed")

// Confirmer asks the user a yes/no question before destructive actions.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// Clock returns the current time; pages use it to split upcoming from past.
type Clock func() time.Time

type Service struct {
	Auth          AuthService
	Movie         MovieService
	Showtime      ShowtimeService
	Booking       BookingService
	Reservation   ReservationService
	Report        ReportService
	AdminMovie    *AdminMoviePage
	AdminShowtime *AdminShowtimePage
}

func NewService(repo *repository.Repository, sess *session.Session, notifier notify.Notifier, log *zap.Logger) *Service {
	return NewServiceWithClock(repo, sess, notifier, time.Now, log)
}

func NewServiceWithClock(repo *repository.Repository, sess *session.Session, notifier notify.Notifier, now Clock, log *zap.Logger) *Service {
	return &Service{
		Auth:          NewAuthService(repo.Auth, repo.Session, sess, notifier, log),
		Movie:         NewMovieService(repo, notifier, now, log),
		Showtime:      NewShowtimeService(repo, notifier, now, log),
		Booking:       NewBookingService(repo, notifier, log),
		Reservation:   NewReservationService(repo.Reservation, notifier, now, log),
		Report:        NewReportService(repo.Report, notifier, log),
		AdminMovie:    NewAdminMoviePage(repo.Movie, notifier, log),
		AdminShowtime: NewAdminShowtimePage(repo, notifier, log),
	}
}
