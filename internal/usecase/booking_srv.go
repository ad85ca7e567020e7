package usecase

import (
	"context"

	"movie-booking-client/internal/data/repository"
	"movie-booking-client/internal/dto/request"
	"movie-booking-client/internal/dto/response"
	"movie-booking-client/pkg/apiclient"
	"movie-booking-client/pkg/notify"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SeatMap is the booking page of one showtime.
type SeatMap struct {
	ShowtimeID int                        `json:"showtimeId" yaml:"showtimeId"`
	Showtime   *response.ShowtimeResponse `json:"showtime" yaml:"showtime"`
	Seats      []response.SeatResponse    `json:"seats" yaml:"seats"`
	Rows       []SeatRow                  `json:"rows" yaml:"-"`
	SeatPrice  int                        `json:"seatPrice" yaml:"seatPrice"`
}

// Available counts the seats that can still be picked.
func (m *SeatMap) Available() int {
	n := 0
	for _, seat := range m.Seats {
		if !seat.IsBooked {
			n++
		}
	}
	return n
}

// NewSelection starts an empty selection over this map.
func (m *SeatMap) NewSelection() *SeatSelection {
	return NewSeatSelection(m.Seats)
}

type BookingService interface {
	LoadSeatMap(ctx context.Context, showtimeID int) *SeatMap
	Submit(ctx context.Context, showtimeID int, selection *SeatSelection) (*response.ReservationResponse, error)
}

type bookingService struct {
	repo     *repository.Repository
	notifier notify.Notifier
	log      *zap.Logger
}

func NewBookingService(repo *repository.Repository, notifier notify.Notifier, log *zap.Logger) BookingService {
	return &bookingService{
		repo:     repo,
		notifier: notifier,
		log:      log.With(zap.String("service", "booking")),
	}
}

// LoadSeatMap fetches the showtime header and its seats concurrently
func (s *bookingService) LoadSeatMap(ctx context.Context, showtimeID int) *SeatMap {
	seatMap := &SeatMap{ShowtimeID: showtimeID, SeatPrice: SeatPrice}

	var g errgroup.Group
	g.Go(func() error {
		showtime, err := s.repo.Showtime.FindByID(ctx, showtimeID)
		if err != nil {
			s.log.Warn("Failed to load showtime", zap.Int("showtime_id", showtimeID), zap.Error(err))
			s.notifier.Error("Failed to load showtime")
			return nil
		}
		seatMap.Showtime = showtime
		return nil
	})
	g.Go(func() error {
		seats, err := s.repo.Seat.FindByShowtimeID(ctx, showtimeID)
		if err != nil {
			s.log.Warn("Failed to load seats", zap.Int("showtime_id", showtimeID), zap.Error(err))
			s.notifier.Error("Failed to load seats")
			return nil
		}
		seatMap.Seats = SortSeats(seats)
		seatMap.Rows = GroupByRow(seats)
		return nil
	})
	_ = g.Wait()

	return seatMap
}

// Submit books the selected seats. An empty selection never reaches the
// backend.
func (s *bookingService) Submit(ctx context.Context, showtimeID int, selection *SeatSelection) (*response.ReservationResponse, error) {
	if selection == nil || selection.Count() == 0 {
		s.notifier.Error("Please select at least one seat")
		return nil, ErrNoSeatsSelected
	}

	req := &request.ReservationRequest{
		ShowtimeID:  showtimeID,
		SeatNumbers: selection.Seats(),
	}

	reservation, err := s.repo.Reservation.Create(ctx, req)
	if err != nil {
		s.log.Info("Reservation rejected",
			zap.Int("showtime_id", showtimeID),
			zap.Strings("seats", req.SeatNumbers),
			zap.Error(err),
		)
		s.notifier.Error(apiclient.Message(err, "Failed to create reservation"))
		return nil, err
	}

	s.log.Info("Reservation created",
		zap.Int("reservation_id", reservation.ID),
		zap.Int("showtime_id", showtimeID),
		zap.Int("seats", selection.Count()),
	)
	s.notifier.Success("Reservation created successfully!")
	return reservation, nil
}
