package wire

import (
	"movie-booking-client/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	// ==================== PUBLIC ROUTES ====================
	// GET / - Home, featured movies
	r.Get("/", movieHandler.Home)

	// GET /movies - All movies (?page=&size= for the paged list)
	r.Get("/movies", movieHandler.List)

	// GET /movies/{id} - Movie details with upcoming showtimes
	r.Get("/movies/{id}", movieHandler.Detail)

	// GET /showtimes/{movieId} - Showtimes of a movie (?date=YYYY-MM-DD)
	r.Get("/showtimes/{movieId}", movieHandler.Showtimes)
}
