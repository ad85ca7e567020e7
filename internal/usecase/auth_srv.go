package usecase

import (
	"context"
	"errors"

	"movie-booking-client/internal/data/entity"
	"movie-booking-client/internal/data/repository"
	"movie-booking-client/internal/dto/request"
	"movie-booking-client/internal/dto/response"
	"movie-booking-client/internal/session"
	"movie-booking-client/pkg/apiclient"
	"movie-booking-client/pkg/notify"
	"movie-booking-client/pkg/utils"

	"go.uber.org/zap"
)

// AuthResult is the outcome of Login and Register. Failures are carried in
// Error, they are never returned as error values.
type AuthResult struct {
	Success bool   `json:"success" yaml:"success"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

type AuthService interface {
	Restore(ctx context.Context)
	Login(ctx context.Context, email, password string) AuthResult
	Register(ctx context.Context, name, email, password string) AuthResult
	Logout(ctx context.Context)

	CurrentUser() *entity.User
	IsAuthenticated() bool
	IsAdmin() bool
	Loading() bool
}

type authService struct {
	auth     repository.AuthRepository
	store    repository.SessionRepository
	session  *session.Session
	notifier notify.Notifier
	log      *zap.Logger
}

func NewAuthService(auth repository.AuthRepository, store repository.SessionRepository, sess *session.Session, notifier notify.Notifier, log *zap.Logger) AuthService {
	return &authService{
		auth:     auth,
		store:    store,
		session:  sess,
		notifier: notifier,
		log:      log.With(zap.String("service", "auth")),
	}
}

// Restore loads the persisted session. Broken or expired data is removed
// and the client stays logged out.
func (s *authService) Restore(ctx context.Context) {
	defer s.session.Ready()

	stored, err := s.store.Load(ctx)
	if err != nil {
		s.log.Warn("Discarding stored session", zap.Error(err))
		if clearErr := s.store.Clear(ctx); clearErr != nil {
			s.log.Error("Failed to remove stored session", zap.Error(clearErr))
		}
		s.session.Clear()
		return
	}
	if stored == nil {
		return
	}

	s.session.Set(stored.Token, stored.User)
	s.log.Info("Session restored", zap.Int("user_id", stored.User.ID))
}

func (s *authService) Login(ctx context.Context, email, password string) AuthResult {
	req := &request.LoginRequest{Email: email, Password: password}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return s.fail(utils.FormatValidationErrors(errs))
	}

	auth, err := s.auth.Login(ctx, req)
	if err != nil {
		s.log.Info("Login rejected", zap.String("email", email), zap.Error(err))
		return s.fail(apiclient.Message(err, "Login failed"))
	}

	return s.establish(ctx, auth, "Login successful!", "Login failed")
}

func (s *authService) Register(ctx context.Context, name, email, password string) AuthResult {
	req := &request.RegisterRequest{Name: name, Email: email, Password: password}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return s.fail(utils.FormatValidationErrors(errs))
	}

	auth, err := s.auth.Register(ctx, req)
	if err != nil {
		s.log.Info("Registration rejected", zap.String("email", email), zap.Error(err))
		return s.fail(apiclient.Message(err, "Registration failed"))
	}

	return s.establish(ctx, auth, "Registration successful!", "Registration failed")
}

// establish persists token and profile, then makes them the live session.
func (s *authService) establish(ctx context.Context, auth *response.AuthResponse, success, fallback string) AuthResult {
	if auth == nil || auth.Token == "" {
		return s.fail(fallback)
	}

	user := auth.ToUser()
	if err := s.store.Save(ctx, auth.Token, user); err != nil {
		s.log.Error("Failed to persist session", zap.Error(err))
		return s.fail(fallback)
	}

	s.session.Set(auth.Token, user)
	s.log.Info("User authenticated", zap.Int("user_id", user.ID), zap.Strings("roles", user.Roles))
	s.notifier.Success(success)
	return AuthResult{Success: true}
}

func (s *authService) fail(message string) AuthResult {
	s.notifier.Error(message)
	return AuthResult{Success: false, Error: message}
}

// Logout always succeeds locally, even when storage is unavailable.
func (s *authService) Logout(ctx context.Context) {
	if err := s.store.Clear(ctx); err != nil && !errors.Is(err, context.Canceled) {
		s.log.Error("Failed to clear stored session", zap.Error(err))
	}
	s.session.Clear()
	s.notifier.Success("Logged out successfully")
}

func (s *authService) CurrentUser() *entity.User {
	return s.session.User()
}

func (s *authService) IsAuthenticated() bool {
	return s.session.IsAuthenticated()
}

func (s *authService) IsAdmin() bool {
	return s.session.IsAdmin()
}

func (s *authService) Loading() bool {
	return s.session.Loading()
}
