// internal/wire/wire.go
package wire

import (
	"net/http"

	"movie-booking-client/internal/adaptor"
	"movie-booking-client/internal/data/repository"
	"movie-booking-client/internal/session"
	"movie-booking-client/internal/usecase"
	"movie-booking-client/pkg/middleware"
	"movie-booking-client/pkg/notify"
	"movie-booking-client/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
	Session *session.Session
}

// Deps are the terminal-facing pieces the pages need.
type Deps struct {
	Notifier  notify.Notifier
	Confirmer usecase.Confirmer
	Picker    adaptor.SeatPicker
}

// Wiring menginisialisasi semua dependencies
func Wiring(repo *repository.Repository, sess *session.Session, deps Deps, config *utils.Config, logger *zap.Logger) *App {
	// Initialize services dan handlers
	service := usecase.NewService(repo, sess, deps.Notifier, logger)
	handler := adaptor.NewHandler(service, deps.Confirmer, deps.Picker, logger)

	// Setup router
	router := setupRouter(handler, sess, config, logger)

	return &App{
		Router:  router,
		Service: service,
		Session: sess,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(
	handler *adaptor.Handler,
	sess *session.Session,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestContext(config.App.Output))
	r.Use(middleware.Logger(logger))

	// Apply routes
	wireAuth(r, handler.Auth, sess, logger)
	wireMovie(r, handler.Movie)
	wireBooking(r, handler.Booking, handler.Reservation, sess, logger)
	wireAdmin(r, handler.Admin, handler.Reservation, sess, logger)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Page not found: "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseText(w, http.StatusMethodNotAllowed, r.Method+" is not supported on "+r.URL.Path)
	})

	return r
}
