package request

type ReservationRequest struct {
	ShowtimeID  int      `json:"showtimeId" validate:"required,min=1"`
	SeatNumbers []string `json:"seatNumbers" validate:"required,min=1,dive,required"`
}
