package response

import "time"

type ShowtimeResponse struct {
	ID             int           `json:"id" yaml:"id"`
	MovieID        int           `json:"movieId" yaml:"movieId"`
	MovieTitle     string        `json:"movieTitle" yaml:"movieTitle"`
	StartTime      LocalDateTime `json:"startTime" yaml:"startTime"`
	EndTime        LocalDateTime `json:"endTime" yaml:"endTime"`
	TotalSeats     int           `json:"totalSeats" yaml:"totalSeats"`
	AvailableSeats int           `json:"availableSeats" yaml:"availableSeats"`
}

// IsUpcoming reports whether the showtime starts after now.
func (s ShowtimeResponse) IsUpcoming(now time.Time) bool {
	return s.StartTime.After(now)
}
