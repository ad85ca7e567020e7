package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"movie-booking-client/internal/dto/request"
	"movie-booking-client/internal/dto/response"
	"movie-booking-client/pkg/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovieService_FeaturedTakesFirstSix(t *testing.T) {
	f := newFixture()
	for i := 1; i <= 9; i++ {
		f.movies.movies = append(f.movies.movies, response.MovieResponse{ID: i, Title: fmt.Sprintf("Movie %d", i)})
	}

	movies, err := f.service.Movie.Featured(context.Background())

	require.NoError(t, err)
	require.Len(t, movies, HomeMovieCount)
	assert.Equal(t, 1, movies[0].ID)
	assert.Equal(t, 6, movies[5].ID)
}

func TestMovieService_ListFailureNotifies(t *testing.T) {
	f := newFixture()
	f.movies.listErr = errNetwork

	_, err := f.service.Movie.List(context.Background())

	require.Error(t, err)
	assert.Equal(t, []string{"Failed to load movies"}, f.notifier.Messages(notify.LevelError))
}

func TestMovieService_ListPageDefaults(t *testing.T) {
	f := newFixture()

	page, err := f.service.Movie.ListPage(context.Background(), request.MovieListQuery{Page: -1})

	require.NoError(t, err)
	assert.Equal(t, 0, page.Number)
	assert.Equal(t, 10, page.Size)
}

func TestMovieService_DetailFiltersUpcoming(t *testing.T) {
	f := newFixture()
	f.movies.movies = []response.MovieResponse{{ID: 1, Title: "Dune"}}
	f.showtimes.showtimes = []response.ShowtimeResponse{
		{ID: 1, StartTime: at(-2)},
		{ID: 2, StartTime: at(5)},
	}

	detail := f.service.Movie.Detail(context.Background(), 1)

	require.NotNil(t, detail.Movie)
	assert.Equal(t, "Dune", detail.Movie.Title)
	require.Len(t, detail.Showtimes, 1)
	assert.Equal(t, 2, detail.Showtimes[0].ID)
}

func TestMovieService_DetailFailuresIndependent(t *testing.T) {
	f := newFixture()
	f.showtimes.err = errNetwork

	detail := f.service.Movie.Detail(context.Background(), 42)

	assert.Nil(t, detail.Movie)
	assert.Empty(t, detail.Showtimes)
	assert.ElementsMatch(t,
		[]string{"Failed to load movie details", "Failed to load showtimes"},
		f.notifier.Messages(notify.LevelError),
	)
}

func TestShowtimeService_DateFilter(t *testing.T) {
	f := newFixture()
	f.movies.movies = []response.MovieResponse{{ID: 1, Title: "Dune"}}
	f.showtimes.showtimes = []response.ShowtimeResponse{{ID: 3, StartTime: at(30)}}
	date := time.Date(2030, 6, 2, 0, 0, 0, 0, time.Local)

	page := f.service.Showtime.ForMovie(context.Background(), 1, &date)

	require.NotNil(t, page.Movie)
	assert.Len(t, page.Showtimes, 1)
	require.NotNil(t, f.showtimes.lastDate)
	assert.Equal(t, date, *f.showtimes.lastDate)
	assert.Contains(t, f.showtimes.calls, "FindByMovieIDAndDate")
}
