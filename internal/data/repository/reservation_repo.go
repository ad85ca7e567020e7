package repository

import (
	"context"
	"fmt"

	"movie-booking-client/internal/dto/request"
	"movie-booking-client/internal/dto/response"
	"movie-booking-client/pkg/apiclient"

	"go.uber.org/zap"
)

type ReservationRepository interface {
	Create(ctx context.Context, req *request.ReservationRequest) (*response.ReservationResponse, error)
	FindMine(ctx context.Context) ([]response.ReservationResponse, error)
	FindMyUpcoming(ctx context.Context) ([]response.ReservationResponse, error)
	FindByID(ctx context.Context, id int) (*response.ReservationResponse, error)
	Cancel(ctx context.Context, id int) (*response.ReservationResponse, error)
	FindAll(ctx context.Context) ([]response.ReservationResponse, error)
}

type reservationRepository struct {
	api apiclient.Doer
	log *zap.Logger
}

func NewReservationRepository(api apiclient.Doer, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		api: api,
		log: log.With(zap.String("repository", "reservation")),
	}
}

// Create calls POST /reservations
func (r *reservationRepository) Create(ctx context.Context, req *request.ReservationRequest) (*response.ReservationResponse, error) {
	var reservation response.ReservationResponse
	if err := r.api.Post(ctx, "/reservations", req, &reservation); err != nil {
		r.log.Debug("Create reservation failed",
			zap.Int("showtime_id", req.ShowtimeID),
			zap.Strings("seats", req.SeatNumbers),
			zap.Error(err),
		)
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) FindMine(ctx context.Context) ([]response.ReservationResponse, error) {
	return r.list(ctx, "/reservations/my-reservations")
}

func (r *reservationRepository) FindMyUpcoming(ctx context.Context) ([]response.ReservationResponse, error) {
	return r.list(ctx, "/reservations/my-upcoming-reservations")
}

func (r *reservationRepository) FindByID(ctx context.Context, id int) (*response.ReservationResponse, error) {
	var reservation response.ReservationResponse
	if err := r.api.Get(ctx, fmt.Sprintf("/reservations/%d", id), nil, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// Cancel calls PUT /reservations/:id/cancel
func (r *reservationRepository) Cancel(ctx context.Context, id int) (*response.ReservationResponse, error) {
	var reservation response.ReservationResponse
	if err := r.api.Put(ctx, fmt.Sprintf("/reservations/%d/cancel", id), nil, &reservation); err != nil {
		r.log.Debug("Cancel reservation failed", zap.Int("reservation_id", id), zap.Error(err))
		return nil, err
	}
	return &reservation, nil
}

// FindAll calls GET /reservations/all (admin)
func (r *reservationRepository) FindAll(ctx context.Context) ([]response.ReservationResponse, error) {
	return r.list(ctx, "/reservations/all")
}

func (r *reservationRepository) list(ctx context.Context, path string) ([]response.ReservationResponse, error) {
	var reservations []response.ReservationResponse
	if err := r.api.Get(ctx, path, nil, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}
