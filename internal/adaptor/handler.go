package adaptor

import (
	"context"
	"errors"
	"net/http"

	"movie-booking-client/internal/usecase"
	"movie-booking-client/pkg/apiclient"
	"movie-booking-client/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SeatPicker lets the user edit a seat selection interactively.
type SeatPicker interface {
	Pick(ctx context.Context, seatMap *usecase.SeatMap, selection *usecase.SeatSelection) (bool, error)
}

type Handler struct {
	Auth        *AuthHandler
	Movie       *MovieHandler
	Booking     *BookingHandler
	Reservation *ReservationHandler
	Admin       *AdminHandler
}

func NewHandler(service *usecase.Service, confirmer usecase.Confirmer, picker SeatPicker, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		Movie:       NewMovieHandler(service.Movie, service.Showtime, log),
		Booking:     NewBookingHandler(service.Booking, picker, log),
		Reservation: NewReservationHandler(service.Reservation, confirmer, log),
		Admin:       NewAdminHandler(service.Report, service.AdminMovie, service.AdminShowtime, confirmer, log),
	}
}

// pathID reads a positive id from the route, writing 400 when it is not one
func pathID(w http.ResponseWriter, r *http.Request, param string) (int, bool) {
	id, err := utils.ParseID(chi.URLParam(r, param))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid "+param)
		return 0, false
	}
	return id, true
}

// statusFor maps a failed backend call onto the page status
func statusFor(err error) int {
	var apiErr *apiclient.APIError
	switch {
	case errors.Is(err, usecase.ErrValidation),
		errors.Is(err, usecase.ErrNoSeatsSelected),
		errors.Is(err, usecase.ErrSeatBooked),
		errors.Is(err, usecase.ErrSeatUnknown):
		return http.StatusBadRequest
	case errors.As(err, &apiErr):
		if apiErr.Status >= http.StatusBadRequest {
			return apiErr.Status
		}
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}
