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

type AdminHandler struct {
	reports   usecase.ReportService
	movies    *usecase.AdminMoviePage
	showtimes *usecase.AdminShowtimePage
	confirmer usecase.Confirmer
	log       *zap.Logger
}

func NewAdminHandler(
	reports usecase.ReportService,
	movies *usecase.AdminMoviePage,
	showtimes *usecase.AdminShowtimePage,
	confirmer usecase.Confirmer,
	log *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		reports:   reports,
		movies:    movies,
		showtimes: showtimes,
		confirmer: confirmer,
		log:       log.With(zap.String("handler", "admin")),
	}
}

// ==================== DASHBOARD & REPORTS ====================

// Dashboard handles GET /admin/dashboard (admin)
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard := h.reports.Dashboard(r.Context())
	view.Render(w, r, http.StatusOK, dashboard, func(out io.Writer) {
		view.Dashboard(out, dashboard)
	})
}

// Reports handles GET /admin/reports (admin)
func (h *AdminHandler) Reports(w http.ResponseWriter, r *http.Request) {
	report, err := h.reports.Report(r.Context())
	if err != nil {
		utils.ResponseText(w, statusFor(err), "")
		return
	}
	view.Render(w, r, http.StatusOK, report, func(out io.Writer) {
		view.Report(out, report)
	})
}

// ==================== MOVIES ====================

// Movies handles GET /admin/movies (admin)
func (h *AdminHandler) Movies(w http.ResponseWriter, r *http.Request) {
	code := http.StatusOK
	if err := h.movies.Load(r.Context()); err != nil {
		code = statusFor(err)
	}
	h.renderMovies(w, r, code)
}

// CreateMovie handles POST /admin/movies (admin)
func (h *AdminHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	h.movies.OpenCreate()
	h.movies.SetForm(movieForm(r, usecase.MovieForm{}))
	h.submitMovie(w, r, http.StatusCreated)
}

// UpdateMovie handles PUT /admin/movies/{id} (admin)
// Fields left out of the form keep their current value.
func (h *AdminHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	movie, found := h.movies.Find(id)
	if !found {
		if err := h.movies.Load(r.Context()); err != nil {
			utils.ResponseText(w, statusFor(err), "")
			return
		}
		movie, found = h.movies.Find(id)
	}
	if !found {
		utils.ResponseNotFound(w, "Movie not found")
		return
	}

	h.movies.OpenEdit(*movie)
	h.movies.SetForm(movieForm(r, h.movies.Form()))
	h.submitMovie(w, r, http.StatusOK)
}

func (h *AdminHandler) submitMovie(w http.ResponseWriter, r *http.Request, code int) {
	if err := h.movies.Submit(r.Context()); err != nil {
		utils.ResponseText(w, statusFor(err), "")
		return
	}
	h.renderMovies(w, r, code)
}

// DeleteMovie handles DELETE /admin/movies/{id} (admin)
func (h *AdminHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	err := h.movies.Delete(r.Context(), id, h.confirmer)
	if errors.Is(err, usecase.ErrNotConfirmed) {
		utils.ResponseSuccess(w, "Nothing deleted")
		return
	}
	if err != nil {
		utils.ResponseText(w, statusFor(err), "")
		return
	}
	h.renderMovies(w, r, http.StatusOK)
}

func (h *AdminHandler) renderMovies(w http.ResponseWriter, r *http.Request, code int) {
	movies := h.movies.Movies()
	view.Render(w, r, code, movies, func(out io.Writer) {
		view.AdminMovies(out, movies)
	})
}

func movieForm(r *http.Request, form usecase.MovieForm) usecase.MovieForm {
	r.ParseForm()
	if _, ok := r.Form["title"]; ok {
		form.Title = r.Form.Get("title")
	}
	if _, ok := r.Form["description"]; ok {
		form.Description = r.Form.Get("description")
	}
	if _, ok := r.Form["genre"]; ok {
		form.Genre = r.Form.Get("genre")
	}
	if _, ok := r.Form["posterUrl"]; ok {
		form.PosterURL = r.Form.Get("posterUrl")
	}
	return form
}

// ==================== SHOWTIMES ====================

// Showtimes handles GET /admin/showtimes (admin)
func (h *AdminHandler) Showtimes(w http.ResponseWriter, r *http.Request) {
	code := http.StatusOK
	if err := h.showtimes.Load(r.Context()); err != nil {
		code = statusFor(err)
	}
	h.renderShowtimes(w, r, code)
}

// CreateShowtime handles POST /admin/showtimes (admin)
func (h *AdminHandler) CreateShowtime(w http.ResponseWriter, r *http.Request) {
	h.showtimes.OpenCreate()
	h.showtimes.SetForm(showtimeForm(r, usecase.ShowtimeForm{}))
	h.submitShowtime(w, r, http.StatusCreated)
}

// UpdateShowtime handles PUT /admin/showtimes/{id} (admin)
func (h *AdminHandler) UpdateShowtime(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	showtime, found := h.showtimes.Find(id)
	if !found {
		if err := h.showtimes.Load(r.Context()); err != nil {
			utils.ResponseText(w, statusFor(err), "")
			return
		}
		showtime, found = h.showtimes.Find(id)
	}
	if !found {
		utils.ResponseNotFound(w, "Showtime not found")
		return
	}

	h.showtimes.OpenEdit(*showtime)
	h.showtimes.SetForm(showtimeForm(r, h.showtimes.Form()))
	h.submitShowtime(w, r, http.StatusOK)
}

func (h *AdminHandler) submitShowtime(w http.ResponseWriter, r *http.Request, code int) {
	if err := h.showtimes.Submit(r.Context()); err != nil {
		utils.ResponseText(w, statusFor(err), "")
		return
	}
	h.renderShowtimes(w, r, code)
}

// DeleteShowtime handles DELETE /admin/showtimes/{id} (admin)
func (h *AdminHandler) DeleteShowtime(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	err := h.showtimes.Delete(r.Context(), id, h.confirmer)
	if errors.Is(err, usecase.ErrNotConfirmed) {
		utils.ResponseSuccess(w, "Nothing deleted")
		return
	}
	if err != nil {
		utils.ResponseText(w, statusFor(err), "")
		return
	}
	h.renderShowtimes(w, r, http.StatusOK)
}

func (h *AdminHandler) renderShowtimes(w http.ResponseWriter, r *http.Request, code int) {
	showtimes := h.showtimes.Showtimes()
	view.Render(w, r, code, showtimes, func(out io.Writer) {
		view.AdminShowtimes(out, showtimes)
	})
}

func showtimeForm(r *http.Request, form usecase.ShowtimeForm) usecase.ShowtimeForm {
	r.ParseForm()
	if _, ok := r.Form["movieId"]; ok {
		form.MovieID = r.Form.Get("movieId")
	}
	if _, ok := r.Form["startTime"]; ok {
		form.StartTime = r.Form.Get("startTime")
	}
	if _, ok := r.Form["endTime"]; ok {
		form.EndTime = r.Form.Get("endTime")
	}
	if _, ok := r.Form["totalSeats"]; ok {
		form.TotalSeats = r.Form.Get("totalSeats")
	}
	return form
}
