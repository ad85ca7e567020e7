package usecase

import (
	"context"
	"time"

	"movie-booking-client/internal/data/repository"
	"movie-booking-client/internal/dto/response"
	"movie-booking-client/pkg/notify"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// MovieShowtimes is the showtimes page of one movie.
type MovieShowtimes struct {
	Movie     *response.MovieResponse     `json:"movie" yaml:"movie"`
	Date      *time.Time                  `json:"date,omitempty" yaml:"date,omitempty"`
	Showtimes []response.ShowtimeResponse `json:"showtimes" yaml:"showtimes"`
}

type ShowtimeService interface {
	ForMovie(ctx context.Context, movieID int, date *time.Time) *MovieShowtimes
}

type showtimeService struct {
	repo     *repository.Repository
	notifier notify.Notifier
	now      Clock
	log      *zap.Logger
}

func NewShowtimeService(repo *repository.Repository, notifier notify.Notifier, now Clock, log *zap.Logger) ShowtimeService {
	return &showtimeService{
		repo:     repo,
		notifier: notifier,
		now:      now,
		log:      log.With(zap.String("service", "showtime")),
	}
}

// ForMovie loads the movie header and its upcoming showtimes, optionally
// limited to one day.
func (s *showtimeService) ForMovie(ctx context.Context, movieID int, date *time.Time) *MovieShowtimes {
	page := &MovieShowtimes{Date: date}

	var g errgroup.Group
	g.Go(func() error {
		movie, err := s.repo.Movie.FindByID(ctx, movieID)
		if err != nil {
			s.log.Warn("Failed to load movie", zap.Int("movie_id", movieID), zap.Error(err))
			s.notifier.Error("Failed to load movie")
			return nil
		}
		page.Movie = movie
		return nil
	})
	g.Go(func() error {
		var (
			showtimes []response.ShowtimeResponse
			err       error
		)
		if date != nil {
			showtimes, err = s.repo.Showtime.FindByMovieIDAndDate(ctx, movieID, *date)
		} else {
			showtimes, err = s.repo.Showtime.FindByMovieID(ctx, movieID)
		}
		if err != nil {
			s.log.Warn("Failed to load showtimes", zap.Int("movie_id", movieID), zap.Error(err))
			s.notifier.Error("Failed to load showtimes")
			return nil
		}
		page.Showtimes = UpcomingShowtimes(showtimes, s.now())
		return nil
	})
	_ = g.Wait()

	return page
}

// UpcomingShowtimes keeps the showtimes that start after now, in order.
func UpcomingShowtimes(showtimes []response.ShowtimeResponse, now time.Time) []response.ShowtimeResponse {
	upcoming := make([]response.ShowtimeResponse, 0, len(showtimes))
	for _, st := range showtimes {
		if st.IsUpcoming(now) {
			upcoming = append(upcoming, st)
		}
	}
	return upcoming
}
