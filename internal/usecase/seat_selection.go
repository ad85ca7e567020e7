package usecase

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"movie-booking-client/internal/dto/response"
)

// SeatPrice is the flat price of one seat.
const SeatPrice = 250

var (
	ErrNoSeatsSelected = errors.New("no seats selected")
	ErrSeatBooked      = errors.New("seat is already booked")
	ErrSeatUnknown     = errors.New("seat does not exist for this showtime")
)

// SeatRow is one row of the seat map, seats in sort order.
type SeatRow struct {
	Row   string                  `json:"row" yaml:"row"`
	Seats []response.SeatResponse `json:"seats" yaml:"seats"`
}

// SeatSelection is the set of seats picked on the booking page. Seats keep
// the order they were picked in.
type SeatSelection struct {
	known    map[string]response.SeatResponse
	selected []string
}

// NewSeatSelection starts an empty selection over the seats of a showtime.
// With no seats given every seat number is accepted.
func NewSeatSelection(seats []response.SeatResponse) *SeatSelection {
	known := make(map[string]response.SeatResponse, len(seats))
	for _, seat := range seats {
		known[seat.SeatNumber] = seat
	}
	return &SeatSelection{known: known}
}

// Toggle adds the seat when absent and removes it when present.
func (s *SeatSelection) Toggle(number string) error {
	if idx := slices.Index(s.selected, number); idx >= 0 {
		s.selected = slices.Delete(s.selected, idx, idx+1)
		return nil
	}

	if len(s.known) > 0 {
		seat, ok := s.known[number]
		if !ok {
			return fmt.Errorf("%w: %s", ErrSeatUnknown, number)
		}
		if seat.IsBooked {
			return fmt.Errorf("%w: %s", ErrSeatBooked, number)
		}
	}

	s.selected = append(s.selected, number)
	return nil
}

func (s *SeatSelection) Contains(number string) bool {
	return slices.Contains(s.selected, number)
}

func (s *SeatSelection) Count() int {
	return len(s.selected)
}

// Seats returns the selected seat numbers in pick order.
func (s *SeatSelection) Seats() []string {
	return slices.Clone(s.selected)
}

// Sorted returns the selected seat numbers in seat map order.
func (s *SeatSelection) Sorted() []string {
	sorted := slices.Clone(s.selected)
	slices.SortStableFunc(sorted, compareSeatNumbers)
	return sorted
}

func (s *SeatSelection) Total() int {
	return len(s.selected) * SeatPrice
}

func (s *SeatSelection) Clear() {
	s.selected = nil
}

// SortSeatNumbers orders seat numbers by row letter, then by the number
// that follows it ("A2" < "A10" < "B1").
func SortSeatNumbers(numbers []string) []string {
	sorted := slices.Clone(numbers)
	slices.SortStableFunc(sorted, compareSeatNumbers)
	return sorted
}

// SortSeats returns the seats in seat map order.
func SortSeats(seats []response.SeatResponse) []response.SeatResponse {
	sorted := slices.Clone(seats)
	slices.SortStableFunc(sorted, func(a, b response.SeatResponse) int {
		return compareSeatNumbers(a.SeatNumber, b.SeatNumber)
	})
	return sorted
}

// GroupByRow sorts the seats and splits them by their row letter.
func GroupByRow(seats []response.SeatResponse) []SeatRow {
	var rows []SeatRow
	for _, seat := range SortSeats(seats) {
		row := seatRow(seat.SeatNumber)
		if len(rows) == 0 || rows[len(rows)-1].Row != row {
			rows = append(rows, SeatRow{Row: row})
		}
		rows[len(rows)-1].Seats = append(rows[len(rows)-1].Seats, seat)
	}
	return rows
}

func compareSeatNumbers(a, b string) int {
	ra, rb := rowCode(a), rowCode(b)
	if ra != rb {
		return ra - rb
	}
	return seatIndex(a) - seatIndex(b)
}

func rowCode(number string) int {
	if number == "" {
		return 0
	}
	return int(number[0])
}

func seatRow(number string) string {
	if number == "" {
		return ""
	}
	return number[:1]
}

// non-numeric suffix dihitung 0
func seatIndex(number string) int {
	if len(number) < 2 {
		return 0
	}
	n, err := strconv.Atoi(number[1:])
	if err != nil {
		return 0
	}
	return n
}
