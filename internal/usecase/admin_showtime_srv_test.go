package usecase

import (
	"context"
	"testing"
	"time"

	"movie-booking-client/internal/dto/response"
	"movie-booking-client/pkg/apiclient"
	"movie-booking-client/pkg/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowtimeForm_Request(t *testing.T) {
	req, err := ShowtimeForm{
		MovieID:    "3",
		StartTime:  "2030-07-01T18:00",
		EndTime:    "2030-07-01T20:15",
		TotalSeats: "48",
	}.Request()

	require.NoError(t, err)
	assert.Equal(t, 3, req.MovieID)
	assert.Equal(t, 48, req.TotalSeats)
	assert.Equal(t, time.Date(2030, 7, 1, 18, 0, 0, 0, time.Local), req.StartTime)
	assert.Equal(t, 135*time.Minute, req.EndTime.Sub(req.StartTime))
}

func TestShowtimeForm_RequestErrors(t *testing.T) {
	_, err := ShowtimeForm{MovieID: "x", StartTime: "tomorrow", EndTime: "2030-07-01T20:15", TotalSeats: "10"}.Request()
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ShowtimeForm{MovieID: "1", StartTime: "2030-07-01T20:00", EndTime: "2030-07-01T19:00", TotalSeats: "10"}.Request()
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "EndTime")

	_, err = ShowtimeForm{}.Request()
	assert.ErrorIs(t, err, ErrValidation)
}

func loadedShowtimePage(t *testing.T) (*fixture, *AdminShowtimePage) {
	t.Helper()
	f := newFixture()
	f.movies.movies = []response.MovieResponse{{ID: 1, Title: "Dune"}}
	f.showtimes.showtimes = []response.ShowtimeResponse{
		{ID: 10, MovieID: 1, StartTime: at(24), EndTime: at(26), TotalSeats: 40},
	}
	page := f.service.AdminShowtime
	require.NoError(t, page.Load(context.Background()))
	return f, page
}

func TestAdminShowtimePage_LoadsMovieOptions(t *testing.T) {
	_, page := loadedShowtimePage(t)

	assert.Len(t, page.Showtimes(), 1)
	require.Len(t, page.MovieOptions(), 1)
	assert.Equal(t, "Dune", page.MovieOptions()[0].Title)
}

func TestAdminShowtimePage_EditPrefillsLocalTime(t *testing.T) {
	_, page := loadedShowtimePage(t)

	showtime, ok := page.Find(10)
	require.True(t, ok)
	page.OpenEdit(*showtime)

	form := page.Form()
	assert.Equal(t, "1", form.MovieID)
	assert.Equal(t, fixedNow.Add(24*time.Hour).Format(FormTimeLayout), form.StartTime)
	assert.Equal(t, "40", form.TotalSeats)
	require.NotNil(t, page.Editing())
	assert.Equal(t, 10, page.Editing().ID)
}

func TestAdminShowtimePage_CreateRefetches(t *testing.T) {
	f, page := loadedShowtimePage(t)

	page.OpenCreate()
	page.SetForm(ShowtimeForm{MovieID: "1", StartTime: "2030-07-01T18:00", EndTime: "2030-07-01T20:00", TotalSeats: "30"})
	require.NoError(t, page.Submit(context.Background()))

	assert.Contains(t, f.showtimes.calls, "Create")
	assert.Equal(t, "FindUpcoming", f.showtimes.calls[len(f.showtimes.calls)-1])
	assert.Len(t, page.Showtimes(), 2)
	assert.False(t, page.ModalOpen())
	assert.Equal(t, []string{"Showtime created successfully"}, f.notifier.Messages(notify.LevelSuccess))
}

func TestAdminShowtimePage_EditDecidedByEditingNotID(t *testing.T) {
	f, page := loadedShowtimePage(t)

	page.OpenEdit(response.ShowtimeResponse{ID: 0, MovieID: 1})
	page.SetForm(ShowtimeForm{MovieID: "1", StartTime: "2030-07-01T18:00", EndTime: "2030-07-01T20:00", TotalSeats: "30"})
	require.NoError(t, page.Submit(context.Background()))

	assert.Contains(t, f.showtimes.calls, "Update")
	assert.NotContains(t, f.showtimes.calls, "Create")
	assert.Equal(t, []string{"Showtime updated successfully"}, f.notifier.Messages(notify.LevelSuccess))
}

func TestAdminShowtimePage_FailureKeepsList(t *testing.T) {
	f, page := loadedShowtimePage(t)
	f.showtimes.saveErr = &apiclient.APIError{Status: 400, Message: "Movie not found"}

	page.OpenCreate()
	page.SetForm(ShowtimeForm{MovieID: "9", StartTime: "2030-07-01T18:00", EndTime: "2030-07-01T20:00", TotalSeats: "30"})
	require.Error(t, page.Submit(context.Background()))

	assert.Len(t, page.Showtimes(), 1)
	assert.True(t, page.ModalOpen())
	assert.Equal(t, []string{"Movie not found"}, f.notifier.Messages(notify.LevelError))
}

func TestAdminShowtimePage_DeleteFailure(t *testing.T) {
	f, page := loadedShowtimePage(t)
	f.showtimes.saveErr = errNetwork
	calls := len(f.showtimes.calls)

	require.Error(t, page.Delete(context.Background(), 10, staticConfirmer(true)))

	assert.Len(t, f.showtimes.calls, calls+1)
	assert.Equal(t, []string{"Failed to delete showtime"}, f.notifier.Messages(notify.LevelError))
}
