package repository

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"movie-booking-client/internal/dto/request"
	"movie-booking-client/internal/dto/response"
	"movie-booking-client/pkg/apiclient"

	"go.uber.org/zap"
)

type ShowtimeRepository interface {
	FindUpcoming(ctx context.Context) ([]response.ShowtimeResponse, error)
	FindByID(ctx context.Context, id int) (*response.ShowtimeResponse, error)
	FindByMovieID(ctx context.Context, movieID int) ([]response.ShowtimeResponse, error)
	FindByMovieIDAndDate(ctx context.Context, movieID int, date time.Time) ([]response.ShowtimeResponse, error)
	Create(ctx context.Context, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error)
	Update(ctx context.Context, id int, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error)
	Delete(ctx context.Context, id int) error
}

type showtimeRepository struct {
	api apiclient.Doer
	log *zap.Logger
}

func NewShowtimeRepository(api apiclient.Doer, log *zap.Logger) ShowtimeRepository {
	return &showtimeRepository{
		api: api,
		log: log.With(zap.String("repository", "showtime")),
	}
}

// FindUpcoming calls GET /showtimes
func (r *showtimeRepository) FindUpcoming(ctx context.Context) ([]response.ShowtimeResponse, error) {
	var showtimes []response.ShowtimeResponse
	if err := r.api.Get(ctx, "/showtimes", nil, &showtimes); err != nil {
		return nil, err
	}
	return showtimes, nil
}

func (r *showtimeRepository) FindByID(ctx context.Context, id int) (*response.ShowtimeResponse, error) {
	var showtime response.ShowtimeResponse
	if err := r.api.Get(ctx, fmt.Sprintf("/showtimes/%d", id), nil, &showtime); err != nil {
		return nil, err
	}
	return &showtime, nil
}

func (r *showtimeRepository) FindByMovieID(ctx context.Context, movieID int) ([]response.ShowtimeResponse, error) {
	var showtimes []response.ShowtimeResponse
	if err := r.api.Get(ctx, fmt.Sprintf("/showtimes/movie/%d", movieID), nil, &showtimes); err != nil {
		return nil, err
	}
	return showtimes, nil
}

// FindByMovieIDAndDate calls GET /showtimes/movie/:id/date?date=<ISO date-time>
func (r *showtimeRepository) FindByMovieIDAndDate(ctx context.Context, movieID int, date time.Time) ([]response.ShowtimeResponse, error) {
	query := url.Values{}
	query.Set("date", date.Format(response.LocalDateTimeLayout))

	var showtimes []response.ShowtimeResponse
	if err := r.api.Get(ctx, fmt.Sprintf("/showtimes/movie/%d/date", movieID), query, &showtimes); err != nil {
		return nil, err
	}
	return showtimes, nil
}

func (r *showtimeRepository) Create(ctx context.Context, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error) {
	var showtime response.ShowtimeResponse
	if err := r.api.Post(ctx, "/showtimes", req, &showtime); err != nil {
		r.log.Debug("Create showtime failed", zap.Int("movie_id", req.MovieID), zap.Error(err))
		return nil, err
	}
	return &showtime, nil
}

func (r *showtimeRepository) Update(ctx context.Context, id int, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error) {
	var showtime response.ShowtimeResponse
	if err := r.api.Put(ctx, fmt.Sprintf("/showtimes/%d", id), req, &showtime); err != nil {
		r.log.Debug("Update showtime failed", zap.Int("showtime_id", id), zap.Error(err))
		return nil, err
	}
	return &showtime, nil
}

func (r *showtimeRepository) Delete(ctx context.Context, id int) error {
	if err := r.api.Delete(ctx, fmt.Sprintf("/showtimes/%d", id), nil); err != nil {
		r.log.Debug("Delete showtime failed", zap.Int("showtime_id", id), zap.Error(err))
		return err
	}
	return nil
}
