// Package tui is the interactive seat picker of the booking page.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"movie-booking-client/internal/usecase"
	"movie-booking-client/internal/view"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the bubbletea model of the seat picker. The selection is shared
// with the caller and updated in place.
type Model struct {
	seatMap   *usecase.SeatMap
	selection *usecase.SeatSelection
	keys      KeyMap
	row       int
	col       int
	message   string
	confirmed bool
	aborted   bool
}

func NewModel(seatMap *usecase.SeatMap, selection *usecase.SeatSelection) Model {
	return Model{
		seatMap:   seatMap,
		selection: selection,
		keys:      DefaultKeyMap,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.message = ""

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.aborted = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Confirm):
		if m.selection.Count() == 0 {
			m.message = "Please select at least one seat"
			return m, nil
		}
		m.confirmed = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Up):
		m.moveRow(-1)

	case key.Matches(keyMsg, m.keys.Down):
		m.moveRow(1)

	case key.Matches(keyMsg, m.keys.Left):
		if m.col > 0 {
			m.col--
		}

	case key.Matches(keyMsg, m.keys.Right):
		if m.col < m.rowLen()-1 {
			m.col++
		}

	case key.Matches(keyMsg, m.keys.Toggle):
		seat := m.Cursor()
		if seat == "" {
			return m, nil
		}
		if err := m.selection.Toggle(seat); err != nil {
			if errors.Is(err, usecase.ErrSeatBooked) {
				m.message = fmt.Sprintf("Seat %s is already booked", seat)
			} else {
				m.message = err.Error()
			}
		}
	}

	return m, nil
}

func (m *Model) moveRow(delta int) {
	next := m.row + delta
	if next < 0 || next >= len(m.seatMap.Rows) {
		return
	}
	m.row = next
	if last := m.rowLen() - 1; m.col > last {
		m.col = last
	}
}

func (m Model) rowLen() int {
	if m.row >= len(m.seatMap.Rows) {
		return 0
	}
	return len(m.seatMap.Rows[m.row].Seats)
}

// Cursor returns the seat number under the cursor, "" for an empty map.
func (m Model) Cursor() string {
	if m.row >= len(m.seatMap.Rows) || m.col >= m.rowLen() {
		return ""
	}
	return m.seatMap.Rows[m.row].Seats[m.col].SeatNumber
}

func (m Model) Confirmed() bool {
	return m.confirmed
}

func (m Model) Aborted() bool {
	return m.aborted
}

func (m Model) View() string {
	var b strings.Builder

	if st := m.seatMap.Showtime; st != nil {
		b.WriteString(headerStyle.Render(st.MovieTitle))
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(view.FormatTime(st.StartTime.Time)))
		b.WriteString("\n\n")
	}

	b.WriteString(view.SeatGrid(m.seatMap.Rows, m.selection, m.Cursor()))
	b.WriteString("\n\n")
	b.WriteString(view.Legend())
	b.WriteString("\n")
	b.WriteString(view.Summary(m.selection))
	b.WriteString("\n")

	if m.message != "" {
		b.WriteString(messageStyle.Render(m.message))
		b.WriteString("\n")
	}

	help := make([]string, 0, len(m.keys.help()))
	for _, binding := range m.keys.help() {
		h := binding.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	b.WriteString(helpStyle.Render(strings.Join(help, " • ")))
	b.WriteString("\n")

	return b.String()
}

// Picker runs the seat picker on a terminal.
type Picker struct {
	in  io.Reader
	out io.Writer
}

func NewPicker(in io.Reader, out io.Writer) *Picker {
	return &Picker{in: in, out: out}
}

// Pick lets the user edit selection. It reports false when the user
// aborted.
func (p *Picker) Pick(ctx context.Context, seatMap *usecase.SeatMap, selection *usecase.SeatSelection) (bool, error) {
	if len(seatMap.Rows) == 0 {
		return false, errors.New("no seats to pick from")
	}

	program := tea.NewProgram(
		NewModel(seatMap, selection),
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)

	final, err := program.Run()
	if err != nil {
		return false, fmt.Errorf("run seat picker: %w", err)
	}

	model, ok := final.(Model)
	if !ok {
		return false, errors.New("unexpected picker model")
	}
	return model.Confirmed(), nil
}
