package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"movie-booking-client/internal/data/repository"
	"movie-booking-client/internal/dto/request"
	"movie-booking-client/internal/dto/response"
	"movie-booking-client/pkg/apiclient"
	"movie-booking-client/pkg/notify"
	"movie-booking-client/pkg/utils"

	"go.uber.org/zap"
)

const DeleteMoviePrompt = "Are you sure you want to delete this movie?"

var ErrValidation = errors.New("validation failed")

// MovieForm holds the fields of the add/edit movie dialog.
type MovieForm struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Genre       string `json:"genre" yaml:"genre"`
	PosterURL   string `json:"posterUrl" yaml:"posterUrl"`
}

func (f MovieForm) Request() *request.MovieRequest {
	return &request.MovieRequest{
		Title:       f.Title,
		Description: f.Description,
		Genre:       f.Genre,
		PosterURL:   f.PosterURL,
	}
}

// AdminMoviePage is the state of the movie management page: the list, the
// dialog flag, the movie being edited (nil while creating) and the form.
type AdminMoviePage struct {
	mu        sync.Mutex
	repo      repository.MovieRepository
	notifier  notify.Notifier
	log       *zap.Logger
	movies    []response.MovieResponse
	modalOpen bool
	editing   *response.MovieResponse
	form      MovieForm
}

func NewAdminMoviePage(repo repository.MovieRepository, notifier notify.Notifier, log *zap.Logger) *AdminMoviePage {
	return &AdminMoviePage{
		repo:     repo,
		notifier: notifier,
		log:      log.With(zap.String("service", "admin_movie")),
	}
}

// Load re-fetches the list; on failure the previous list is kept.
func (p *AdminMoviePage) Load(ctx context.Context) error {
	movies, err := p.repo.FindAll(ctx)
	if err != nil {
		p.log.Warn("Failed to load movies", zap.Error(err))
		p.notifier.Error("Failed to load movies")
		return err
	}

	p.mu.Lock()
	p.movies = movies
	p.mu.Unlock()
	return nil
}

func (p *AdminMoviePage) Movies() []response.MovieResponse {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]response.MovieResponse, len(p.movies))
	copy(out, p.movies)
	return out
}

// Find looks a movie up in the loaded list.
func (p *AdminMoviePage) Find(id int) (*response.MovieResponse, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.movies {
		if p.movies[i].ID == id {
			movie := p.movies[i]
			return &movie, true
		}
	}
	return nil, false
}

// OpenCreate opens the dialog with an empty form
func (p *AdminMoviePage) OpenCreate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.editing = nil
	p.form = MovieForm{}
	p.modalOpen = true
}

// OpenEdit opens the dialog pre-filled with movie
func (p *AdminMoviePage) OpenEdit(movie response.MovieResponse) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.editing = &movie
	p.form = MovieForm{
		Title:       movie.Title,
		Description: movie.Description,
		Genre:       movie.Genre,
		PosterURL:   movie.PosterURL,
	}
	p.modalOpen = true
}

func (p *AdminMoviePage) CloseModal() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.modalOpen = false
	p.editing = nil
	p.form = MovieForm{}
}

func (p *AdminMoviePage) ModalOpen() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.modalOpen
}

func (p *AdminMoviePage) Editing() *response.MovieResponse {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.editing == nil {
		return nil
	}
	movie := *p.editing
	return &movie
}

func (p *AdminMoviePage) Form() MovieForm {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.form
}

func (p *AdminMoviePage) SetForm(form MovieForm) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.form = form
}

// Submit creates or updates depending on the edit state. Success closes the
// dialog and re-fetches the list; failure leaves list and dialog as they were.
func (p *AdminMoviePage) Submit(ctx context.Context) error {
	p.mu.Lock()
	form := p.form
	editing := p.editing != nil
	var editingID int
	if editing {
		editingID = p.editing.ID
	}
	p.mu.Unlock()

	req := form.Request()
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		msg := utils.FormatValidationErrors(errs)
		p.notifier.Error(msg)
		return fmt.Errorf("%w: %s", ErrValidation, msg)
	}

	var err error
	if editing {
		_, err = p.repo.Update(ctx, editingID, req)
	} else {
		_, err = p.repo.Create(ctx, req)
	}
	if err != nil {
		p.log.Info("Movie save rejected", zap.Int("movie_id", editingID), zap.Error(err))
		p.notifier.Error(apiclient.Message(err, "Operation failed"))
		return err
	}

	if editing {
		p.notifier.Success("Movie updated successfully")
	} else {
		p.notifier.Success("Movie created successfully")
	}

	p.CloseModal()
	_ = p.Load(ctx) // failure already notified
	return nil
}

// Delete asks for confirmation, deletes and re-fetches the list
func (p *AdminMoviePage) Delete(ctx context.Context, id int, confirmer Confirmer) error {
	if confirmer != nil && !confirmer.Confirm(ctx, DeleteMoviePrompt) {
		return ErrNotConfirmed
	}

	if err := p.repo.Delete(ctx, id); err != nil {
		p.log.Info("Movie delete rejected", zap.Int("movie_id", id), zap.Error(err))
		p.notifier.Error("Failed to delete movie")
		return err
	}

	p.notifier.Success("Movie deleted successfully")
	_ = p.Load(ctx) // failure already notified
	return nil
}
