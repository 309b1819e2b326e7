package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"taskapp/internal/core/domain"
	"taskapp/internal/core/model/request"
	"taskapp/internal/core/port"
	"taskapp/internal/core/util"
)

type AuthService struct {
	users port.UserRepository
	codec port.TokenCodec
}

func NewAuthService(users port.UserRepository, codec port.TokenCodec) *AuthService {
	return &AuthService{users: users, codec: codec}
}

func (s *AuthService) Register(ctx context.Context, req *request.RegisterRequest) (*domain.User, error) {
	_, err := s.users.GetByEmail(ctx, req.Email)

	if err == nil {
		return nil, domain.ErrEmailExists
	}

	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := util.HashPassword(req.Password)

	if err != nil {
		return nil, err
	}

	user := domain.User{
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: hashed,
		CreatedAt:    time.Now(),
	}

	// The unique constraint still backs this up if two registrations race
	// past the lookup above; the repository maps that to ErrEmailExists.
	saved, err := s.users.Create(ctx, user)

	if err != nil {
		return nil, err
	}

	log.Info().Str("email", saved.Email).Int64("user_id", saved.ID).Msg("user registered")

	return &saved, nil
}

func (s *AuthService) Login(ctx context.Context, req *request.LoginRequest) (string, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)

	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Burn a bcrypt verification so an unknown email takes as
			// long as a wrong password.
			_ = util.CheckPassword(req.Password, util.DummyHash)
			return "", domain.ErrBadCredentials
		}

		return "", err
	}

	if err := util.CheckPassword(req.Password, user.PasswordHash); err != nil {
		log.Debug().Str("email", req.Email).Msg("login rejected")
		return "", domain.ErrBadCredentials
	}

	return s.codec.Issue(user.Email)
}
