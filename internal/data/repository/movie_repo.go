package repository

import (
	"context"
	"fmt"

	"movie-booking-client/internal/dto/request"
	"movie-booking-client/internal/dto/response"
	"movie-booking-client/pkg/apiclient"

	"go.uber.org/zap"
)

type MovieRepository interface {
	FindAll(ctx context.Context) ([]response.MovieResponse, error)
	FindPage(ctx context.Context, query request.MovieListQuery) (*response.Page[response.MovieResponse], error)
	FindByID(ctx context.Context, id int) (*response.MovieResponse, error)
	Create(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	Update(ctx context.Context, id int, req *request.MovieRequest) (*response.MovieResponse, error)
	Delete(ctx context.Context, id int) error
}

type movieRepository struct {
	api apiclient.Doer
	log *zap.Logger
}

func NewMovieRepository(api apiclient.Doer, log *zap.Logger) MovieRepository {
	return &movieRepository{
		api: api,
		log: log.With(zap.String("repository", "movie")),
	}
}

// FindAll calls GET /movies with paginated=false (full list)
func (r *movieRepository) FindAll(ctx context.Context) ([]response.MovieResponse, error) {
	query := request.MovieListQuery{Page: 0, Size: 100, Paginated: false}

	var movies []response.MovieResponse
	if err := r.api.Get(ctx, "/movies", query.Values(), &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// FindPage calls GET /movies with paginated=true
func (r *movieRepository) FindPage(ctx context.Context, query request.MovieListQuery) (*response.Page[response.MovieResponse], error) {
	query.Paginated = true

	var page response.Page[response.MovieResponse]
	if err := r.api.Get(ctx, "/movies", query.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *movieRepository) FindByID(ctx context.Context, id int) (*response.MovieResponse, error) {
	var movie response.MovieResponse
	if err := r.api.Get(ctx, fmt.Sprintf("/movies/%d", id), nil, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) Create(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	var movie response.MovieResponse
	if err := r.api.Post(ctx, "/movies", req, &movie); err != nil {
		r.log.Debug("Create movie failed", zap.String("title", req.Title), zap.Error(err))
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) Update(ctx context.Context, id int, req *request.MovieRequest) (*response.MovieResponse, error) {
	var movie response.MovieResponse
	if err := r.api.Put(ctx, fmt.Sprintf("/movies/%d", id), req, &movie); err != nil {
		r.log.Debug("Update movie failed", zap.Int("movie_id", id), zap.Error(err))
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) Delete(ctx context.Context, id int) error {
	if err := r.api.Delete(ctx, fmt.Sprintf("/movies/%d", id), nil); err != nil {
		r.log.Debug("Delete movie failed", zap.Int("movie_id", id), zap.Error(err))
		return err
	}
	return nil
}
