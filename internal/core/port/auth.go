package port

import (
	"context"

	"taskapp/internal/core/domain"
	"taskapp/internal/core/model/request"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, req *request.LoginRequest) (string, error)
}

// TokenCodec issues and verifies bearer tokens. Tokens are opaque to every
// other component; only the subject travels in and out.
type TokenCodec interface {
	Issue(subject string) (string, error)
	Verify(token string) (string, error)
}
