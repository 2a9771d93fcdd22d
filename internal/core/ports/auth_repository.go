package ports

import (
	"context"

	"github.com/financeassistant/authform/internal/core/domain"
)

// UserRepository defines the interface for account persistence.
type UserRepository interface {
	FindByMail(ctx context.Context, mail string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
