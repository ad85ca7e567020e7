package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"movie-booking-client/internal/data/repository"
	"movie-booking-client/internal/dto/request"
	"movie-booking-client/internal/dto/response"
	"movie-booking-client/pkg/apiclient"
	"movie-booking-client/pkg/notify"
	"movie-booking-client/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	DeleteShowtimePrompt = "Are you sure you want to delete this showtime?"

	// FormTimeLayout is the minute-precision local time of the showtime form.
	FormTimeLayout = "2006-01-02T15:04"
)

// ShowtimeForm holds the raw fields of the add/edit showtime dialog.
type ShowtimeForm struct {
	MovieID    string `json:"movieId" yaml:"movieId"`
	StartTime  string `json:"startTime" yaml:"startTime"`
	EndTime    string `json:"endTime" yaml:"endTime"`
	TotalSeats string `json:"totalSeats" yaml:"totalSeats"`
}

// Request converts the form into the request payload.
func (f ShowtimeForm) Request() (*request.ShowtimeRequest, error) {
	req := &request.ShowtimeRequest{}
	var problems []string

	if f.MovieID != "" {
		id, err := strconv.Atoi(strings.TrimSpace(f.MovieID))
		if err != nil {
			problems = append(problems, "MovieID: Must be a number")
		}
		req.MovieID = id
	}
	if f.TotalSeats != "" {
		seats, err := strconv.Atoi(strings.TrimSpace(f.TotalSeats))
		if err != nil {
			problems = append(problems, "TotalSeats: Must be a number")
		}
		req.TotalSeats = seats
	}
	if f.StartTime != "" {
		start, err := time.ParseInLocation(FormTimeLayout, strings.TrimSpace(f.StartTime), time.Local)
		if err != nil {
			problems = append(problems, "StartTime: Must look like "+FormTimeLayout)
		}
		req.StartTime = start
	}
	if f.EndTime != "" {
		end, err := time.ParseInLocation(FormTimeLayout, strings.TrimSpace(f.EndTime), time.Local)
		if err != nil {
			problems = append(problems, "EndTime: Must look like "+FormTimeLayout)
		}
		req.EndTime = end
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, strings.Join(problems, "; "))
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}
	return req, nil
}

// AdminShowtimePage is the state of the showtime management page. It also
// keeps the movie options of the form.
type AdminShowtimePage struct {
	mu        sync.Mutex
	repo      *repository.Repository
	notifier  notify.Notifier
	log       *zap.Logger
	showtimes []response.ShowtimeResponse
	movies    []response.MovieResponse
	modalOpen bool
	editing   *response.ShowtimeResponse
	form      ShowtimeForm
}

func NewAdminShowtimePage(repo *repository.Repository, notifier notify.Notifier, log *zap.Logger) *AdminShowtimePage {
	return &AdminShowtimePage{
		repo:     repo,
		notifier: notifier,
		log:      log.With(zap.String("service", "admin_showtime")),
	}
}

// Load fetches showtimes and movie options concurrently. It returns the
// showtime error; a failed movie list only empties the options.
func (p *AdminShowtimePage) Load(ctx context.Context) error {
	var showtimesErr error

	var g errgroup.Group
	g.Go(func() error {
		showtimesErr = p.loadShowtimes(ctx)
		return nil
	})
	g.Go(func() error {
		movies, err := p.repo.Movie.FindAll(ctx)
		if err != nil {
			p.log.Warn("Failed to load movie options", zap.Error(err))
			p.notifier.Error("Failed to load movies")
			return nil
		}
		p.mu.Lock()
		p.movies = movies
		p.mu.Unlock()
		return nil
	})
	_ = g.Wait()

	return showtimesErr
}

func (p *AdminShowtimePage) loadShowtimes(ctx context.Context) error {
	showtimes, err := p.repo.Showtime.FindUpcoming(ctx)
	if err != nil {
		p.log.Warn("Failed to load showtimes", zap.Error(err))
		p.notifier.Error("Failed to load showtimes")
		return err
	}

	p.mu.Lock()
	p.showtimes = showtimes
	p.mu.Unlock()
	return nil
}

func (p *AdminShowtimePage) Showtimes() []response.ShowtimeResponse {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]response.ShowtimeResponse, len(p.showtimes))
	copy(out, p.showtimes)
	return out
}

func (p *AdminShowtimePage) MovieOptions() []response.MovieResponse {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]response.MovieResponse, len(p.movies))
	copy(out, p.movies)
	return out
}

func (p *AdminShowtimePage) Find(id int) (*response.ShowtimeResponse, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.showtimes {
		if p.showtimes[i].ID == id {
			showtime := p.showtimes[i]
			return &showtime, true
		}
	}
	return nil, false
}

func (p *AdminShowtimePage) OpenCreate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.editing = nil
	p.form = ShowtimeForm{}
	p.modalOpen = true
}

// OpenEdit pre-fills the form in local time
func (p *AdminShowtimePage) OpenEdit(showtime response.ShowtimeResponse) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.editing = &showtime
	p.form = ShowtimeForm{
		MovieID:    strconv.Itoa(showtime.MovieID),
		StartTime:  showtime.StartTime.In(time.Local).Format(FormTimeLayout),
		EndTime:    showtime.EndTime.In(time.Local).Format(FormTimeLayout),
		TotalSeats: strconv.Itoa(showtime.TotalSeats),
	}
	p.modalOpen = true
}

func (p *AdminShowtimePage) CloseModal() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.modalOpen = false
	p.editing = nil
	p.form = ShowtimeForm{}
}

func (p *AdminShowtimePage) ModalOpen() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.modalOpen
}

func (p *AdminShowtimePage) Editing() *response.ShowtimeResponse {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.editing == nil {
		return nil
	}
	showtime := *p.editing
	return &showtime
}

func (p *AdminShowtimePage) Form() ShowtimeForm {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.form
}

func (p *AdminShowtimePage) SetForm(form ShowtimeForm) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.form = form
}

// Submit creates or updates the showtime and re-fetches on success
func (p *AdminShowtimePage) Submit(ctx context.Context) error {
	p.mu.Lock()
	form := p.form
	editing := p.editing != nil
	var editingID int
	if editing {
		editingID = p.editing.ID
	}
	p.mu.Unlock()

	req, err := form.Request()
	if err != nil {
		p.notifier.Error(strings.TrimPrefix(err.Error(), ErrValidation.Error()+": "))
		return err
	}

	if editing {
		_, err = p.repo.Showtime.Update(ctx, editingID, req)
	} else {
		_, err = p.repo.Showtime.Create(ctx, req)
	}
	if err != nil {
		p.log.Info("Showtime save rejected", zap.Int("showtime_id", editingID), zap.Error(err))
		p.notifier.Error(apiclient.Message(err, "Operation failed"))
		return err
	}

	if editing {
		p.notifier.Success("Showtime updated successfully")
	} else {
		p.notifier.Success("Showtime created successfully")
	}

	p.CloseModal()
	_ = p.loadShowtimes(ctx) // failure already notified
	return nil
}

func (p *AdminShowtimePage) Delete(ctx context.Context, id int, confirmer Confirmer) error {
	if confirmer != nil && !confirmer.Confirm(ctx, DeleteShowtimePrompt) {
		return ErrNotConfirmed
	}

	if err := p.repo.Showtime.Delete(ctx, id); err != nil {
		p.log.Info("Showtime delete rejected", zap.Int("showtime_id", id), zap.Error(err))
		p.notifier.Error("Failed to delete showtime")
		return err
	}

	p.notifier.Success("Showtime deleted successfully")
	_ = p.loadShowtimes(ctx) // failure already notified
	return nil
}
