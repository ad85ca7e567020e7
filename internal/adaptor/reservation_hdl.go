package adaptor

import (
	"errors"
	"io"
	"net/http"

	"movie-booking-client/internal/usecase"
	"movie-booking-client/internal/view"
	"movie-booking-client/pkg/utils"

	"go.uber.org/zap"
)

type ReservationHandler struct {
	service   usecase.ReservationService
	confirmer usecase.Confirmer
	log       *zap.Logger
}

func NewReservationHandler(service usecase.ReservationService, confirmer usecase.Confirmer, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		service:   service,
		confirmer: confirmer,
		log:       log.With(zap.String("handler", "reservation")),
	}
}

// MyBookings handles GET /my-bookings (protected)
func (h *ReservationHandler) MyBookings(w http.ResponseWriter, r *http.Request) {
	code := http.StatusOK
	bookings, err := h.service.MyBookings(r.Context())
	if err != nil {
		code = statusFor(err)
	}

	view.Render(w, r, code, bookings, func(out io.Writer) {
		view.Bookings(out, bookings)
	})
}

// Cancel handles POST /my-bookings/{id}/cancel (protected)
func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	bookings, err := h.service.Cancel(r.Context(), id, h.confirmer)
	if errors.Is(err, usecase.ErrNotConfirmed) {
		utils.ResponseSuccess(w, "Nothing cancelled")
		return
	}
	if err != nil {
		utils.ResponseText(w, statusFor(err), "")
		return
	}

	view.Render(w, r, http.StatusOK, bookings, func(out io.Writer) {
		view.Bookings(out, bookings)
	})
}

// All handles GET /admin/reservations?page=&per_page= (admin)
func (h *ReservationHandler) All(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := utils.ParseInt(query.Get("page"), 1)
	perPage := utils.ParseInt(query.Get("per_page"), 20)

	result, err := h.service.All(r.Context(), page, perPage)
	if err != nil {
		utils.ResponseText(w, statusFor(err), "")
		return
	}

	view.Render(w, r, http.StatusOK, result, func(out io.Writer) {
		view.Reservations(out, result)
	})
}
