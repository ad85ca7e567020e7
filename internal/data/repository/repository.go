package repository

import (
	"movie-booking-client/pkg/apiclient"
	"movie-booking-client/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Auth        AuthRepository
	Movie       MovieRepository
	Showtime    ShowtimeRepository
	Seat        SeatRepository
	Reservation ReservationRepository
	Report      ReportRepository
	Session     SessionRepository
}

func NewRepository(api apiclient.Doer, store database.Storage, log *zap.Logger) *Repository {
	return &Repository{
		Auth:        NewAuthRepository(api, log),
		Movie:       NewMovieRepository(api, log),
		Showtime:    NewShowtimeRepository(api, log),
		Seat:        NewSeatRepository(api, log),
		Reservation: NewReservationRepository(api, log),
		Report:      NewReportRepository(api, log),
		Session:     NewSessionRepository(store, log),
	}
}
