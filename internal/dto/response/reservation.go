package response

import "time"

type ReservationResponse struct {
	ID              int           `json:"id" yaml:"id"`
	UserID          int           `json:"userId" yaml:"userId"`
	UserName        string        `json:"userName" yaml:"userName"`
	ShowtimeID      int           `json:"showtimeId" yaml:"showtimeId"`
	MovieTitle      string        `json:"movieTitle" yaml:"movieTitle"`
	ShowtimeStart   LocalDateTime `json:"showtimeStart" yaml:"showtimeStart"`
	ShowtimeEnd     LocalDateTime `json:"showtimeEnd" yaml:"showtimeEnd"`
	SeatNumbers     []string      `json:"seatNumbers" yaml:"seatNumbers"`
	ReservationDate LocalDateTime `json:"reservationDate" yaml:"reservationDate"`
	TotalPrice      float64       `json:"totalPrice" yaml:"totalPrice"`
	IsCancelled     bool          `json:"isCancelled" yaml:"isCancelled"`
}

func (r ReservationResponse) IsUpcoming(now time.Time) bool {
	return r.ShowtimeStart.After(now)
}

// IsCancellable is true for upcoming reservations that are still active.
func (r ReservationResponse) IsCancellable(now time.Time) bool {
	return r.IsUpcoming(now) && !r.IsCancelled
}
