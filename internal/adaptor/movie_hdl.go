package adaptor

import (
	"io"
	"net/http"
	"time"

	"movie-booking-client/internal/dto/request"
	"movie-booking-client/internal/usecase"
	"movie-booking-client/internal/view"
	"movie-booking-client/pkg/utils"

	"go.uber.org/zap"
)

type MovieHandler struct {
	movies    usecase.MovieService
	showtimes usecase.ShowtimeService
	log       *zap.Logger
}

func NewMovieHandler(movies usecase.MovieService, showtimes usecase.ShowtimeService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		movies:    movies,
		showtimes: showtimes,
		log:       log.With(zap.String("handler", "movie")),
	}
}

// Home handles GET /
func (h *MovieHandler) Home(w http.ResponseWriter, r *http.Request) {
	code := http.StatusOK
	movies, err := h.movies.Featured(r.Context())
	if err != nil {
		code = statusFor(err)
	}

	view.Render(w, r, code, movies, func(out io.Writer) {
		view.Home(out, movies)
	})
}

// List handles GET /movies, paged when ?page= or ?size= is given
func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if query.Has("page") || query.Has("size") {
		// page di CLI mulai dari 1, backend mulai dari 0
		req := request.MovieListQuery{
			Page: utils.ParseInt(query.Get("page"), 1) - 1,
			Size: utils.ParseInt(query.Get("size"), 10),
		}
		if errs := utils.ValidateStruct(req); len(errs) > 0 {
			utils.ResponseBadRequest(w, utils.FormatValidationErrors(errs))
			return
		}

		page, err := h.movies.ListPage(r.Context(), req)
		if err != nil {
			utils.ResponseText(w, statusFor(err), "")
			return
		}
		view.Render(w, r, http.StatusOK, page, func(out io.Writer) {
			view.MoviePage(out, page)
		})
		return
	}

	code := http.StatusOK
	movies, err := h.movies.List(r.Context())
	if err != nil {
		code = statusFor(err)
	}
	view.Render(w, r, code, movies, func(out io.Writer) {
		view.MovieTable(out, "All Movies", movies)
	})
}

// Detail handles GET /movies/{id}
func (h *MovieHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	detail := h.movies.Detail(r.Context(), id)

	code := http.StatusOK
	if detail.Movie == nil {
		code = http.StatusNotFound
	}
	view.Render(w, r, code, detail, func(out io.Writer) {
		view.MovieDetail(out, detail)
	})
}

// Showtimes handles GET /showtimes/{movieId}?date=YYYY-MM-DD
func (h *MovieHandler) Showtimes(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathID(w, r, "movieId")
	if !ok {
		return
	}

	var date *time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.ParseInLocation(time.DateOnly, raw, time.Local)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid date, use YYYY-MM-DD")
			return
		}
		date = &parsed
	}

	page := h.showtimes.ForMovie(r.Context(), movieID, date)
	view.Render(w, r, http.StatusOK, page, func(out io.Writer) {
		view.MovieShowtimes(out, page)
	})
}
