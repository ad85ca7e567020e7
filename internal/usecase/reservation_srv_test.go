package usecase

import (
	"context"
	"testing"

	"movie-booking-client/internal/dto/response"
	"movie-booking-client/pkg/apiclient"
	"movie-booking-client/pkg/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingsFixture() *fixture {
	f := newFixture()
	f.reservations.reservations = []response.ReservationResponse{
		{ID: 1, MovieTitle: "Past", ShowtimeStart: at(-5)},
		{ID: 2, MovieTitle: "Soon", ShowtimeStart: at(5)},
		{ID: 3, MovieTitle: "Dropped", ShowtimeStart: at(5), IsCancelled: true},
	}
	return f
}

func TestReservationService_MyBookingsMarkers(t *testing.T) {
	f := bookingsFixture()

	views, err := f.service.Reservation.MyBookings(context.Background())

	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.False(t, views[0].Upcoming)
	assert.False(t, views[0].Cancellable)
	assert.True(t, views[1].Upcoming)
	assert.True(t, views[1].Cancellable)
	assert.True(t, views[2].Upcoming)
	assert.False(t, views[2].Cancellable)
}

func TestReservationService_CancelRefetches(t *testing.T) {
	f := bookingsFixture()

	views, err := f.service.Reservation.Cancel(context.Background(), 2, staticConfirmer(true))

	require.NoError(t, err)
	assert.Equal(t, []int{2}, f.reservations.cancelled)
	assert.True(t, views[1].IsCancelled)
	assert.False(t, views[1].Cancellable)
	assert.Equal(t, []string{"Reservation cancelled successfully"}, f.notifier.Messages(notify.LevelSuccess))
}

func TestReservationService_CancelDeclined(t *testing.T) {
	f := bookingsFixture()

	_, err := f.service.Reservation.Cancel(context.Background(), 2, staticConfirmer(false))

	assert.ErrorIs(t, err, ErrNotConfirmed)
	assert.Empty(t, f.reservations.cancelled)
}

func TestReservationService_CancelRejected(t *testing.T) {
	f := bookingsFixture()
	f.reservations.cancelErr = &apiclient.APIError{Status: 400, Message: "Cannot cancel past reservations"}

	_, err := f.service.Reservation.Cancel(context.Background(), 1, staticConfirmer(true))

	require.Error(t, err)
	assert.Equal(t, []string{"Cannot cancel past reservations"}, f.notifier.Messages(notify.LevelError))
}

func TestReservationService_AllPaged(t *testing.T) {
	f := bookingsFixture()

	page, err := f.service.Reservation.All(context.Background(), 2, 2)

	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, 3, page.Data[0].ID)
	assert.Equal(t, int64(3), page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.TotalPages)
}

func TestReportService_DashboardKeepsLinksOnFailure(t *testing.T) {
	f := newFixture()
	f.reports.err = errNetwork

	dashboard := f.service.Report.Dashboard(context.Background())

	assert.Nil(t, dashboard.Report)
	assert.NotEmpty(t, dashboard.Links)
	assert.Equal(t, []string{"Failed to load reports"}, f.notifier.Messages(notify.LevelError))
}
