package usecase

import (
	"context"

	"movie-booking-client/internal/data/repository"
	"movie-booking-client/internal/dto/request"
	"movie-booking-client/internal/dto/response"
	"movie-booking-client/pkg/notify"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// HomeMovieCount is how many movies the home page features.
const HomeMovieCount = 6

// MovieDetail is the movie page: the movie and its upcoming showtimes.
type MovieDetail struct {
	Movie     *response.MovieResponse     `json:"movie" yaml:"movie"`
	Showtimes []response.ShowtimeResponse `json:"showtimes" yaml:"showtimes"`
}

type MovieService interface {
	Featured(ctx context.Context) ([]response.MovieResponse, error)
	List(ctx context.Context) ([]response.MovieResponse, error)
	ListPage(ctx context.Context, query request.MovieListQuery) (*response.Page[response.MovieResponse], error)
	Detail(ctx context.Context, id int) *MovieDetail
}

type movieService struct {
	repo     *repository.Repository
	notifier notify.Notifier
	now      Clock
	log      *zap.Logger
}

func NewMovieService(repo *repository.Repository, notifier notify.Notifier, now Clock, log *zap.Logger) MovieService {
	return &movieService{
		repo:     repo,
		notifier: notifier,
		now:      now,
		log:      log.With(zap.String("service", "movie")),
	}
}

// Featured returns the first movies of the full list for the home page
func (s *movieService) Featured(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(movies) > HomeMovieCount {
		movies = movies[:HomeMovieCount]
	}
	return movies, nil
}

func (s *movieService) List(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		s.log.Warn("Failed to load movies", zap.Error(err))
		s.notifier.Error("Failed to load movies")
		return nil, err
	}
	return movies, nil
}

func (s *movieService) ListPage(ctx context.Context, query request.MovieListQuery) (*response.Page[response.MovieResponse], error) {
	if query.Size <= 0 {
		query.Size = 10
	}
	if query.Page < 0 {
		query.Page = 0
	}

	page, err := s.repo.Movie.FindPage(ctx, query)
	if err != nil {
		s.log.Warn("Failed to load movie page", zap.Int("page", query.Page), zap.Error(err))
		s.notifier.Error("Failed to load movies")
		return nil, err
	}
	return page, nil
}

// Detail fetches the movie and its showtimes concurrently. Each fetch
// reports its own failure, so a missing showtime list still shows the movie.
func (s *movieService) Detail(ctx context.Context, id int) *MovieDetail {
	detail := &MovieDetail{}

	var g errgroup.Group
	g.Go(func() error {
		movie, err := s.repo.Movie.FindByID(ctx, id)
		if err != nil {
			s.log.Warn("Failed to load movie details", zap.Int("movie_id", id), zap.Error(err))
			s.notifier.Error("Failed to load movie details")
			return nil
		}
		detail.Movie = movie
		return nil
	})
	g.Go(func() error {
		showtimes, err := s.repo.Showtime.FindByMovieID(ctx, id)
		if err != nil {
			s.log.Warn("Failed to load showtimes", zap.Int("movie_id", id), zap.Error(err))
			s.notifier.Error("Failed to load showtimes")
			return nil
		}
		detail.Showtimes = UpcomingShowtimes(showtimes, s.now())
		return nil
	})
	_ = g.Wait()

	return detail
}
