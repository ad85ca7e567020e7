package request

import (
	"encoding/json"
	"time"

	"movie-booking-client/internal/dto/response"
)

type ShowtimeRequest struct {
	MovieID    int       `json:"movieId" validate:"required,min=1"`
	StartTime  time.Time `json:"startTime" validate:"required"`
	EndTime    time.Time `json:"endTime" validate:"required,gtfield=StartTime"`
	TotalSeats int       `json:"totalSeats" validate:"required,min=1"`
}

// MarshalJSON sends the times as zone-less local date-times, the format the
// backend stores showtimes in.
func (r ShowtimeRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		MovieID    int    `json:"movieId"`
		StartTime  string `json:"startTime"`
		EndTime    string `json:"endTime"`
		TotalSeats int    `json:"totalSeats"`
	}{
		MovieID:    r.MovieID,
		StartTime:  r.StartTime.Format(response.LocalDateTimeLayout),
		EndTime:    r.EndTime.Format(response.LocalDateTimeLayout),
		TotalSeats: r.TotalSeats,
	})
}
