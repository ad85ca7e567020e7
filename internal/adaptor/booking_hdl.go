package adaptor

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"movie-booking-client/internal/usecase"
	"movie-booking-client/internal/view"
	"movie-booking-client/pkg/utils"

	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	picker  SeatPicker
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, picker SeatPicker, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		picker:  picker,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// SeatMap handles GET /booking/{showtimeId} (protected)
func (h *BookingHandler) SeatMap(w http.ResponseWriter, r *http.Request) {
	showtimeID, ok := pathID(w, r, "showtimeId")
	if !ok {
		return
	}

	seatMap := h.service.LoadSeatMap(r.Context(), showtimeID)

	code := http.StatusOK
	if seatMap.Showtime == nil && len(seatMap.Seats) == 0 {
		code = http.StatusBadGateway
	}
	view.Render(w, r, code, seatMap, func(out io.Writer) {
		view.SeatMap(out, seatMap, nil)
	})
}

// Book handles POST /booking/{showtimeId} (protected)
// Form: seat=<number> (repeatable), interactive=true to open the picker.
func (h *BookingHandler) Book(w http.ResponseWriter, r *http.Request) {
	showtimeID, ok := pathID(w, r, "showtimeId")
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		utils.ResponseBadRequest(w, "Invalid form")
		return
	}

	seatMap := h.service.LoadSeatMap(r.Context(), showtimeID)
	selection := seatMap.NewSelection()

	for _, seat := range seatNumbers(r.Form["seat"]) {
		if err := selection.Toggle(seat); err != nil {
			h.log.Debug("Seat refused", zap.String("seat", seat), zap.Error(err))
			utils.ResponseBadRequest(w, seatError(seat, err))
			return
		}
	}

	if r.FormValue("interactive") == "true" {
		if h.picker == nil {
			utils.ResponseBadRequest(w, "Interactive seat selection is not available")
			return
		}
		confirmed, err := h.picker.Pick(r.Context(), seatMap, selection)
		if err != nil {
			h.log.Warn("Seat picker failed", zap.Error(err))
			utils.ResponseText(w, http.StatusInternalServerError, err.Error())
			return
		}
		if !confirmed {
			utils.ResponseSuccess(w, "Booking cancelled")
			return
		}
	}

	reservation, err := h.service.Submit(r.Context(), showtimeID, selection)
	if err != nil {
		view.Render(w, r, statusFor(err), seatMap, func(out io.Writer) {
			view.SeatMap(out, seatMap, selection)
		})
		return
	}

	w.Header().Set("Location", "/my-bookings")
	view.Render(w, r, http.StatusSeeOther, reservation, func(out io.Writer) {
		fmt.Fprintf(out, "Reservation #%d: %s\n", reservation.ID, view.Summary(selection))
	})
}

// seat=A1,A2 and seat=A1&seat=A2 are both accepted
func seatNumbers(values []string) []string {
	var seats []string
	for _, value := range values {
		for _, seat := range strings.Split(value, ",") {
			if seat = strings.ToUpper(strings.TrimSpace(seat)); seat != "" {
				seats = append(seats, seat)
			}
		}
	}
	return seats
}

func seatError(seat string, err error) string {
	switch {
	case errors.Is(err, usecase.ErrSeatBooked):
		return fmt.Sprintf("Seat %s is already booked", seat)
	case errors.Is(err, usecase.ErrSeatUnknown):
		return fmt.Sprintf("Seat %s does not exist for this showtime", seat)
	default:
		return err.Error()
	}
}
