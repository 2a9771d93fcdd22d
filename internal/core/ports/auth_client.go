package ports

import (
	"context"

	"github.com/financeassistant/authform/internal/core/domain"
)

// AuthClient calls the remote authentication service. Transport failures and
// remote rejections are both reported as a failed AuthResult.
type AuthClient interface {
	Authenticate(ctx context.Context, mode domain.FormMode, creds domain.Credentials) domain.AuthResult
}

// IdentityStore persists the currently authenticated user under a fixed key.
type IdentityStore interface {
	Save(ctx context.Context, id domain.IdentityRecord) error
}

// Navigator moves the user to a destination.
type Navigator interface {
	Navigate(path string)
}
