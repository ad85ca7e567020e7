package response

type ReportResponse struct {
	TotalReservations   int64                       `json:"totalReservations" yaml:"totalReservations"`
	TotalRevenue        float64                     `json:"totalRevenue" yaml:"totalRevenue"`
	MovieRevenues       []MovieRevenueResponse      `json:"movieRevenues" yaml:"movieRevenues"`
	ShowtimeOccupancies []ShowtimeOccupancyResponse `json:"showtimeOccupancies" yaml:"showtimeOccupancies"`
}

type MovieRevenueResponse struct {
	MovieID          int     `json:"movieId" yaml:"movieId"`
	MovieTitle       string  `json:"movieTitle" yaml:"movieTitle"`
	ReservationCount int64   `json:"reservationCount" yaml:"reservationCount"`
	Revenue          float64 `json:"revenue" yaml:"revenue"`
}

type ShowtimeOccupancyResponse struct {
	ShowtimeID          int     `json:"showtimeId" yaml:"showtimeId"`
	MovieTitle          string  `json:"movieTitle" yaml:"movieTitle"`
	TotalSeats          int     `json:"totalSeats" yaml:"totalSeats"`
	BookedSeats         int     `json:"bookedSeats" yaml:"bookedSeats"`
	OccupancyPercentage float64 `json:"occupancyPercentage" yaml:"occupancyPercentage"`
}

// Occupancy is booked/total, 0 when the showtime has no seats.
func (s ShowtimeOccupancyResponse) Occupancy() float64 {
	if s.TotalSeats <= 0 {
		return 0
	}
	return float64(s.BookedSeats) / float64(s.TotalSeats)
}
