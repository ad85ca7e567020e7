package repository

import (
	"context"
	"fmt"

	"movie-booking-client/internal/dto/response"
	"movie-booking-client/pkg/apiclient"

	"go.uber.org/zap"
)

type SeatRepository interface {
	FindByShowtimeID(ctx context.Context, showtimeID int) ([]response.SeatResponse, error)
}

type seatRepository struct {
	api apiclient.Doer
	log *zap.Logger
}

func NewSeatRepository(api apiclient.Doer, log *zap.Logger) SeatRepository {
	return &seatRepository{
		api: api,
		log: log.With(zap.String("repository", "seat")),
	}
}

// FindByShowtimeID calls GET /seats/showtime/:id
func (r *seatRepository) FindByShowtimeID(ctx context.Context, showtimeID int) ([]response.SeatResponse, error) {
	var seats []response.SeatResponse
	if err := r.api.Get(ctx, fmt.Sprintf("/seats/showtime/%d", showtimeID), nil, &seats); err != nil {
		return nil, err
	}
	return seats, nil
}
