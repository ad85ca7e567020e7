package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"movie-booking-client/internal/data/entity"
	"movie-booking-client/pkg/database"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

var (
	ErrSessionCorrupt = errors.New("stored session is corrupt")
	ErrSessionExpired = errors.New("stored session token has expired")
)

type SessionRepository interface {
	Load(ctx context.Context) (*entity.Session, error)
	Save(ctx context.Context, token string, user *entity.User) error
	Clear(ctx context.Context) error
}

type sessionRepository struct {
	store database.Storage
	now   func() time.Time
	log   *zap.Logger
}

func NewSessionRepository(store database.Storage, log *zap.Logger) SessionRepository {
	return &sessionRepository{
		store: store,
		now:   time.Now,
		log:   log.With(zap.String("repository", "session")),
	}
}

// Load returns (nil, nil) when nothing is stored. A half-written pair, an
// unreadable profile or an expired token is reported as an error and the
// caller is expected to Clear.
func (r *sessionRepository) Load(ctx context.Context) (*entity.Session, error) {
	token, hasToken, err := r.store.Get(ctx, entity.StorageKeyToken)
	if err != nil {
		return nil, fmt.Errorf("failed to read token: %w", err)
	}
	rawUser, hasUser, err := r.store.Get(ctx, entity.StorageKeyUser)
	if err != nil {
		return nil, fmt.Errorf("failed to read user: %w", err)
	}

	if !hasToken && !hasUser {
		return nil, nil
	}
	if !hasToken || !hasUser || token == "" {
		r.log.Warn("Incomplete stored session",
			zap.Bool("has_token", hasToken),
			zap.Bool("has_user", hasUser),
		)
		return nil, ErrSessionCorrupt
	}

	var user *entity.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		r.log.Warn("Failed to parse stored user", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrSessionCorrupt, err)
	}
	// "null" atau profil kosong bukan user yang login
	if user == nil || (user.ID == 0 && user.Email == "") {
		r.log.Warn("Stored user is empty")
		return nil, fmt.Errorf("%w: empty user", ErrSessionCorrupt)
	}

	session := &entity.Session{Token: token, User: user}

	expiresAt, err := tokenExpiry(token)
	if err != nil {
		r.log.Debug("Token is not a readable JWT, keeping it as is", zap.Error(err))
		return session, nil
	}
	if expiresAt != nil {
		session.ExpiresAt = expiresAt
		if !expiresAt.After(r.now()) {
			r.log.Info("Stored token expired", zap.Time("expires_at", *expiresAt))
			return nil, ErrSessionExpired
		}
	}

	return session, nil
}

// Save writes token and user together
func (r *sessionRepository) Save(ctx context.Context, token string, user *entity.User) error {
	if token == "" || user == nil {
		return errors.New("token and user are required")
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	if err := r.store.Set(ctx, entity.StorageKeyToken, token); err != nil {
		return err
	}
	if err := r.store.Set(ctx, entity.StorageKeyUser, string(raw)); err != nil {
		// jangan tinggalkan token tanpa user
		_ = r.store.Remove(ctx, entity.StorageKeyToken)
		return err
	}

	r.log.Debug("Session saved", zap.Int("user_id", user.ID))
	return nil
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	if err := r.store.Remove(ctx, entity.StorageKeyToken, entity.StorageKeyUser); err != nil {
		r.log.Error("Failed to clear session", zap.Error(err))
		return err
	}
	return nil
}

// tokenExpiry reads the exp claim without verifying the signature, the
// backend holds the key and stays the judge of validity.
func tokenExpiry(token string) (*time.Time, error) {
	if strings.Count(token, ".") != 2 {
		return nil, errors.New("not a JWT")
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, err
	}
	if claims.ExpiresAt == nil {
		return nil, nil
	}
	expiresAt := claims.ExpiresAt.Time
	return &expiresAt, nil
}
