package ports

import (
	"context"

	"github.com/financeassistant/authform/internal/core/domain"
)

// AuthService registers and authenticates accounts on the server side.
type AuthService interface {
	Register(ctx context.Context, mail, password string) (string, *domain.User, error)
	Login(ctx context.Context, mail, password string) (string, *domain.User, error)
}
