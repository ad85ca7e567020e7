package response

type SeatResponse struct {
	ID         int    `json:"id" yaml:"id"`
	SeatNumber string `json:"seatNumber" yaml:"seatNumber"`
	IsBooked   bool   `json:"isBooked" yaml:"isBooked"`
}
