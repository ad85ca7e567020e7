package repository

import (
	"context"

	"movie-booking-client/internal/dto/request"
	"movie-booking-client/internal/dto/response"
	"movie-booking-client/pkg/apiclient"

	"go.uber.org/zap"
)

type AuthRepository interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
}

type authRepository struct {
	api apiclient.Doer
	log *zap.Logger
}

func NewAuthRepository(api apiclient.Doer, log *zap.Logger) AuthRepository {
	return &authRepository{
		api: api,
		log: log.With(zap.String("repository", "auth")),
	}
}

// Register calls POST /auth/register
func (r *authRepository) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	var auth response.AuthResponse
	if err := r.api.Post(ctx, "/auth/register", req, &auth); err != nil {
		r.log.Debug("Register failed", zap.String("email", req.Email), zap.Error(err))
		return nil, err
	}
	return &auth, nil
}

// Login calls POST /auth/login
func (r *authRepository) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	var auth response.AuthResponse
	if err := r.api.Post(ctx, "/auth/login", req, &auth); err != nil {
		r.log.Debug("Login failed", zap.String("email", req.Email), zap.Error(err))
		return nil, err
	}
	return &auth, nil
}
