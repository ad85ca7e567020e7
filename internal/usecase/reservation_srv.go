package usecase

import (
	"context"
	"fmt"

	"movie-booking-client/internal/data/repository"
	"movie-booking-client/internal/dto/response"
	"movie-booking-client/pkg/apiclient"
	"movie-booking-client/pkg/notify"
	"movie-booking-client/pkg/utils"

	"go.uber.org/zap"
)

const CancelReservationPrompt = "Are you sure you want to cancel this reservation?"

// BookingView is one row of the my-bookings page.
type BookingView struct {
	response.ReservationResponse `yaml:",inline"`
	Upcoming                     bool `json:"upcoming" yaml:"upcoming"`
	Cancellable                  bool `json:"cancellable" yaml:"cancellable"`
}

type ReservationService interface {
	MyBookings(ctx context.Context) ([]BookingView, error)
	Cancel(ctx context.Context, id int, confirmer Confirmer) ([]BookingView, error)
	All(ctx context.Context, page, perPage int) (*response.PaginatedResponse[response.ReservationResponse], error)
}

type reservationService struct {
	repo     repository.ReservationRepository
	notifier notify.Notifier
	now      Clock
	log      *zap.Logger
}

func NewReservationService(repo repository.ReservationRepository, notifier notify.Notifier, now Clock, log *zap.Logger) ReservationService {
	return &reservationService{
		repo:     repo,
		notifier: notifier,
		now:      now,
		log:      log.With(zap.String("service", "reservation")),
	}
}

func (s *reservationService) MyBookings(ctx context.Context) ([]BookingView, error) {
	reservations, err := s.repo.FindMine(ctx)
	if err != nil {
		s.log.Warn("Failed to load reservations", zap.Error(err))
		s.notifier.Error("Failed to load reservations")
		return nil, err
	}

	now := s.now()
	views := make([]BookingView, 0, len(reservations))
	for _, r := range reservations {
		views = append(views, BookingView{
			ReservationResponse: r,
			Upcoming:            r.IsUpcoming(now),
			Cancellable:         r.IsCancellable(now),
		})
	}
	return views, nil
}

// Cancel asks for confirmation, cancels and returns the refreshed list.
func (s *reservationService) Cancel(ctx context.Context, id int, confirmer Confirmer) ([]BookingView, error) {
	if confirmer != nil && !confirmer.Confirm(ctx, CancelReservationPrompt) {
		return nil, ErrNotConfirmed
	}

	if _, err := s.repo.Cancel(ctx, id); err != nil {
		s.log.Info("Cancel rejected", zap.Int("reservation_id", id), zap.Error(err))
		s.notifier.Error(apiclient.Message(err, "Failed to cancel reservation"))
		return nil, fmt.Errorf("cancel reservation %d: %w", id, err)
	}

	s.log.Info("Reservation cancelled", zap.Int("reservation_id", id))
	s.notifier.Success("Reservation cancelled successfully")

	return s.MyBookings(ctx)
}

// All lists every reservation for admins. The backend returns the whole
// list; paging happens here.
func (s *reservationService) All(ctx context.Context, page, perPage int) (*response.PaginatedResponse[response.ReservationResponse], error) {
	reservations, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Warn("Failed to load all reservations", zap.Error(err))
		s.notifier.Error("Failed to load reservations")
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	items := utils.Paginate(reservations, page, perPage)
	return response.NewPaginatedResponse(items, page, perPage, int64(len(reservations))), nil
}
