package usecase

import (
	"context"
	"sync"
	"time"

	"movie-booking-client/internal/data/repository"
	"movie-booking-client/internal/dto/request"
	"movie-booking-client/internal/dto/response"
	"movie-booking-client/internal/session"
	"movie-booking-client/pkg/apiclient"
	"movie-booking-client/pkg/database"
	"movie-booking-client/pkg/notify"

	"go.uber.org/zap"
)

var fixedNow = time.Date(2030, 6, 1, 12, 0, 0, 0, time.Local)

func at(hours int) response.LocalDateTime {
	return response.NewLocalDateTime(fixedNow.Add(time.Duration(hours) * time.Hour))
}

type fakeAuthRepo struct {
	resp *response.AuthResponse
	err  error
}

func (f *fakeAuthRepo) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	return f.resp, f.err
}

func (f *fakeAuthRepo) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	return f.resp, f.err
}

type fakeMovieRepo struct {
	mu      sync.Mutex
	movies  []response.MovieResponse
	listErr error
	saveErr error
	calls   []string
	nextID  int
}

func (f *fakeMovieRepo) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeMovieRepo) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeMovieRepo) FindAll(ctx context.Context) ([]response.MovieResponse, error) {
	f.record("FindAll")
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]response.MovieResponse(nil), f.movies...), nil
}

func (f *fakeMovieRepo) FindPage(ctx context.Context, query request.MovieListQuery) (*response.Page[response.MovieResponse], error) {
	f.record("FindPage")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return &response.Page[response.MovieResponse]{Content: f.movies, Number: query.Page, Size: query.Size}, nil
}

func (f *fakeMovieRepo) FindByID(ctx context.Context, id int) (*response.MovieResponse, error) {
	f.record("FindByID")
	if f.listErr != nil {
		return nil, f.listErr
	}
	for _, m := range f.movies {
		if m.ID == id {
			movie := m
			return &movie, nil
		}
	}
	return nil, &apiclient.APIError{Status: 404, Message: "Movie not found"}
}

func (f *fakeMovieRepo) Create(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	f.record("Create")
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	movie := response.MovieResponse{ID: 100 + f.nextID, Title: req.Title, Description: req.Description, Genre: req.Genre, PosterURL: req.PosterURL}
	f.movies = append(f.movies, movie)
	return &movie, nil
}

func (f *fakeMovieRepo) Update(ctx context.Context, id int, req *request.MovieRequest) (*response.MovieResponse, error) {
	f.record("Update")
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.movies {
		if f.movies[i].ID == id {
			f.movies[i].Title = req.Title
			movie := f.movies[i]
			return &movie, nil
		}
	}
	return nil, &apiclient.APIError{Status: 404, Message: "Movie not found"}
}

func (f *fakeMovieRepo) Delete(ctx context.Context, id int) error {
	f.record("Delete")
	if f.saveErr != nil {
		return f.saveErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.movies {
		if f.movies[i].ID == id {
			f.movies = append(f.movies[:i], f.movies[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeShowtimeRepo struct {
	mu        sync.Mutex
	showtimes []response.ShowtimeResponse
	err       error
	saveErr   error
	lastDate  *time.Time
	lastReq   *request.ShowtimeRequest
	calls     []string
}

func (f *fakeShowtimeRepo) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeShowtimeRepo) FindUpcoming(ctx context.Context) ([]response.ShowtimeResponse, error) {
	f.record("FindUpcoming")
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]response.ShowtimeResponse(nil), f.showtimes...), nil
}

func (f *fakeShowtimeRepo) FindByID(ctx context.Context, id int) (*response.ShowtimeResponse, error) {
	f.record("FindByID")
	if f.err != nil {
		return nil, f.err
	}
	for _, st := range f.showtimes {
		if st.ID == id {
			showtime := st
			return &showtime, nil
		}
	}
	return nil, &apiclient.APIError{Status: 404, Message: "Showtime not found"}
}

func (f *fakeShowtimeRepo) FindByMovieID(ctx context.Context, movieID int) ([]response.ShowtimeResponse, error) {
	f.record("FindByMovieID")
	if f.err != nil {
		return nil, f.err
	}
	return f.showtimes, nil
}

func (f *fakeShowtimeRepo) FindByMovieIDAndDate(ctx context.Context, movieID int, date time.Time) ([]response.ShowtimeResponse, error) {
	f.record("FindByMovieIDAndDate")
	f.mu.Lock()
	f.lastDate = &date
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.showtimes, nil
}

func (f *fakeShowtimeRepo) Create(ctx context.Context, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error) {
	f.record("Create")
	f.lastReq = req
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	showtime := response.ShowtimeResponse{ID: 900 + len(f.showtimes), MovieID: req.MovieID, TotalSeats: req.TotalSeats}
	f.showtimes = append(f.showtimes, showtime)
	return &showtime, nil
}

func (f *fakeShowtimeRepo) Update(ctx context.Context, id int, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error) {
	f.record("Update")
	f.lastReq = req
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	return &response.ShowtimeResponse{ID: id}, nil
}

func (f *fakeShowtimeRepo) Delete(ctx context.Context, id int) error {
	f.record("Delete")
	return f.saveErr
}

type fakeSeatRepo struct {
	seats []response.SeatResponse
	err   error
}

func (f *fakeSeatRepo) FindByShowtimeID(ctx context.Context, showtimeID int) ([]response.SeatResponse, error) {
	return f.seats, f.err
}

type fakeReservationRepo struct {
	mu           sync.Mutex
	reservations []response.ReservationResponse
	err          error
	createErr    error
	cancelErr    error
	created      []*request.ReservationRequest
	cancelled    []int
}

func (f *fakeReservationRepo) Create(ctx context.Context, req *request.ReservationRequest) (*response.ReservationResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, req)
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &response.ReservationResponse{ID: 77, ShowtimeID: req.ShowtimeID, SeatNumbers: req.SeatNumbers}, nil
}

func (f *fakeReservationRepo) FindMine(ctx context.Context) ([]response.ReservationResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reservations, f.err
}

func (f *fakeReservationRepo) FindMyUpcoming(ctx context.Context) ([]response.ReservationResponse, error) {
	return f.FindMine(ctx)
}

func (f *fakeReservationRepo) FindByID(ctx context.Context, id int) (*response.ReservationResponse, error) {
	return nil, f.err
}

func (f *fakeReservationRepo) Cancel(ctx context.Context, id int) (*response.ReservationResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancelErr != nil {
		return nil, f.cancelErr
	}
	f.cancelled = append(f.cancelled, id)
	for i := range f.reservations {
		if f.reservations[i].ID == id {
			f.reservations[i].IsCancelled = true
		}
	}
	return &response.ReservationResponse{ID: id, IsCancelled: true}, nil
}

func (f *fakeReservationRepo) FindAll(ctx context.Context) ([]response.ReservationResponse, error) {
	return f.FindMine(ctx)
}

type fakeReportRepo struct {
	report *response.ReportResponse
	err    error
}

func (f *fakeReportRepo) Generate(ctx context.Context) (*response.ReportResponse, error) {
	return f.report, f.err
}

type staticConfirmer bool

func (c staticConfirmer) Confirm(ctx context.Context, prompt string) bool { return bool(c) }

type fixture struct {
	repo         *repository.Repository
	store        database.Storage
	session      *session.Session
	notifier     *notify.Recorder
	auth         *fakeAuthRepo
	movies       *fakeMovieRepo
	showtimes    *fakeShowtimeRepo
	seats        *fakeSeatRepo
	reservations *fakeReservationRepo
	reports      *fakeReportRepo
	service      *Service
}

func newFixture() *fixture {
	f := &fixture{
		store:        database.NewMemoryStorage(),
		session:      session.New(),
		notifier:     notify.NewRecorder(),
		auth:         &fakeAuthRepo{},
		movies:       &fakeMovieRepo{},
		showtimes:    &fakeShowtimeRepo{},
		seats:        &fakeSeatRepo{},
		reservations: &fakeReservationRepo{},
		reports:      &fakeReportRepo{},
	}
	f.repo = &repository.Repository{
		Auth:        f.auth,
		Movie:       f.movies,
		Showtime:    f.showtimes,
		Seat:        f.seats,
		Reservation: f.reservations,
		Report:      f.reports,
		Session:     repository.NewSessionRepository(f.store, zap.NewNop()),
	}
	f.service = NewServiceWithClock(f.repo, f.session, f.notifier, func() time.Time { return fixedNow }, zap.NewNop())
	return f
}

var errNetwork = &apiclient.TransportError{Op: "GET /movies", Err: context.DeadlineExceeded}
