package tui

import (
	"testing"

	"movie-booking-client/internal/dto/response"
	"movie-booking-client/internal/usecase"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel() (Model, *usecase.SeatSelection) {
	seats := []response.SeatResponse{
		{SeatNumber: "A1"}, {SeatNumber: "A2", IsBooked: true}, {SeatNumber: "A3"},
		{SeatNumber: "B1"}, {SeatNumber: "B2"},
	}
	seatMap := &usecase.SeatMap{
		Showtime:  &response.ShowtimeResponse{MovieTitle: "Dune"},
		Seats:     usecase.SortSeats(seats),
		Rows:      usecase.GroupByRow(seats),
		SeatPrice: usecase.SeatPrice,
	}
	selection := seatMap.NewSelection()
	return NewModel(seatMap, selection), selection
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, model Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var updated tea.Model
		updated, cmd = model.Update(msg)
		model = updated.(Model)
	}
	return model, cmd
}

func TestModel_Navigation(t *testing.T) {
	model, _ := newTestModel()
	assert.Equal(t, "A1", model.Cursor())

	model, _ = send(t, model, runes("l"), runes("l"), runes("l"))
	assert.Equal(t, "A3", model.Cursor())

	// B has fewer seats, the cursor is clamped
	model, _ = send(t, model, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "B2", model.Cursor())

	model, _ = send(t, model, runes("j"))
	assert.Equal(t, "B2", model.Cursor())

	model, _ = send(t, model, runes("h"), tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "A1", model.Cursor())
}

func TestModel_ToggleAndConfirm(t *testing.T) {
	model, selection := newTestModel()

	model, _ = send(t, model, tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, selection.Contains("A1"))

	model, _ = send(t, model, runes("l"), tea.KeyMsg{Type: tea.KeySpace})
	assert.False(t, selection.Contains("A2"))
	assert.Contains(t, model.View(), "Seat A2 is already booked")

	model, cmd := send(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, model.Confirmed())
	assert.Equal(t, []string{"A1"}, selection.Seats())
}

func TestModel_ConfirmNeedsSeat(t *testing.T) {
	model, _ := newTestModel()

	model, cmd := send(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, model.Confirmed())
	assert.Contains(t, model.View(), "Please select at least one seat")
}

func TestModel_Quit(t *testing.T) {
	model, _ := newTestModel()

	model, cmd := send(t, model, tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.True(t, model.Aborted())
	assert.False(t, model.Confirmed())
}

func TestModel_ViewShowsTotal(t *testing.T) {
	model, _ := newTestModel()
	model, _ = send(t, model, tea.KeyMsg{Type: tea.KeySpace}, runes("j"), tea.KeyMsg{Type: tea.KeySpace})

	out := model.View()
	assert.Contains(t, out, "Dune")
	assert.Contains(t, out, "Selected: A1, B1")
	assert.Contains(t, out, "₹500.00")
}
