package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/financeassistant/authform/internal/core/domain"
	"github.com/financeassistant/authform/internal/core/ports"
)

const (
	DefaultDestination   = "/dashboard"
	DefaultNavigateDelay = time.Second
)

// FormOptions tunes the post-success navigation.
type FormOptions struct {
	// Destination is the authenticated area; DefaultDestination when empty.
	Destination string
	// NavigateDelay is how long after a successful submission navigation fires.
	NavigateDelay time.Duration
}

// Form is the sign-in / sign-up form. It owns the form state, runs live and
// submission-time validation, calls the remote service and triggers the
// identity write and navigation on success.
//
// All methods are safe for concurrent use. Only the remote call and the
// identity write run outside the lock; Status stays InFlight meanwhile and a
// second Submit is a no-op.
type Form struct {
	client ports.AuthClient
	store  ports.IdentityStore
	nav    ports.Navigator
	log    zerolog.Logger

	destination string
	delay       time.Duration

	mu     sync.Mutex
	state  domain.FormState
	timer  *time.Timer
	closed bool
}

// NewForm returns a Form in sign-in mode with empty fields.
func NewForm(
	client ports.AuthClient,
	store ports.IdentityStore,
	nav ports.Navigator,
	log zerolog.Logger,
	opts FormOptions,
) *Form {
	if opts.Destination == "" {
		opts.Destination = DefaultDestination
	}
	return &Form{
		client:      client,
		store:       store,
		nav:         nav,
		log:         log,
		destination: opts.Destination,
		delay:       opts.NavigateDelay,
		state:       domain.FormState{Mode: domain.ModeSignIn},
	}
}

// State returns a copy of the current form state.
func (f *Form) State() domain.FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// SetField stores a new value for field and recomputes that field's error.
// The other field's error is left untouched.
func (f *Form) SetField(field domain.Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case domain.FieldEmail:
		f.state.Email = value
		f.state.EmailError = domain.ValidateEmail(value)
	case domain.FieldPassword:
		f.state.Password = value
		f.state.PasswordError = domain.ValidatePassword(value)
	default:
		return fmt.Errorf("set field %q: %w", field, domain.ErrUnknownField)
	}
	return nil
}

// ResetMessages clears the outcome message.
func (f *Form) ResetMessages() {
	f.mu.Lock()
	f.state.Outcome = domain.OutcomeMessage{}
	f.mu.Unlock()
}

// SwitchMode toggles between sign-in and sign-up and clears both field errors
// and the outcome message. Field values are kept.
func (f *Form) SwitchMode() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state.Mode = f.state.Mode.Toggle()
	f.state.EmailError = ""
	f.state.PasswordError = ""
	f.state.Outcome = domain.OutcomeMessage{}
	f.log.Debug().Stringer("mode", f.state.Mode).Msg("form mode switched")
}

// FillDemoCredentials sets the demo email and password and clears both field
// errors without running the validator.
func (f *Form) FillDemoCredentials() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state.Email = domain.DemoEmail
	f.state.Password = domain.DemoPassword
	f.state.EmailError = ""
	f.state.PasswordError = ""
}

// TogglePasswordVisibility flips whether the password is rendered in clear text.
func (f *Form) TogglePasswordVisibility() {
	f.mu.Lock()
	f.state.ShowPassword = !f.state.ShowPassword
	f.mu.Unlock()
}

// Submit runs one submission attempt and returns the resulting state.
//
// It is a no-op while another submission is InFlight or after Close. Invalid
// input never reaches the remote service. There is no timeout on the remote
// call beyond what ctx and the client impose.
func (f *Form) Submit(ctx context.Context) domain.FormState {
	f.mu.Lock()
	if f.closed || f.state.Status == domain.StatusInFlight {
		st := f.state
		f.mu.Unlock()
		f.log.Debug().Msg("submit ignored: submission in flight or form closed")
		return st
	}

	f.state.Status = domain.StatusInFlight
	f.state.Outcome = domain.OutcomeMessage{}
	f.state.EmailError = domain.ValidateEmail(f.state.Email)
	f.state.PasswordError = domain.ValidatePassword(f.state.Password)
	if !f.state.Valid() {
		f.state.Status = domain.StatusIdle
		st := f.state
		f.mu.Unlock()
		f.log.Debug().Msg("submit rejected by validation")
		return st
	}

	mode := f.state.Mode
	creds := domain.Credentials{Mail: f.state.Email, Password: f.state.Password}
	f.mu.Unlock()

	f.log.Debug().Stringer("mode", mode).Str("mail", creds.Mail).Msg("submitting credentials")

	result := f.client.Authenticate(ctx, mode, creds)
	if !result.OK() {
		f.log.Warn().Stringer("mode", mode).Str("mail", creds.Mail).
			Str("reason", result.FailureMessage()).Msg("authentication failed")
		return f.finish(domain.OutcomeMessage{Error: result.FailureMessage()}, false)
	}

	identity := result.Identity()
	if err := f.store.Save(ctx, identity); err != nil {
		f.log.Error().Err(err).Str("user_id", identity.ID).Msg("failed to persist identity")
		return f.finish(domain.OutcomeMessage{Error: err.Error()}, false)
	}

	f.log.Info().Stringer("mode", mode).Str("user_id", identity.ID).Msg("authentication succeeded")
	return f.finish(domain.OutcomeMessage{Success: domain.SuccessMessage(mode)}, true)
}

// finish records the outcome, schedules navigation on success and returns to Idle.
func (f *Form) finish(outcome domain.OutcomeMessage, navigate bool) domain.FormState {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state.Outcome = outcome
	if navigate && !f.closed {
		f.scheduleNavigation()
	}
	f.state.Status = domain.StatusIdle
	return f.state
}

// scheduleNavigation must be called with f.mu held.
func (f *Form) scheduleNavigation() {
	if f.timer != nil {
		f.timer.Stop()
	}
	dest := f.destination
	f.timer = time.AfterFunc(f.delay, func() {
		f.mu.Lock()
		closed := f.closed
		f.mu.Unlock()
		if closed {
			return
		}
		f.nav.Navigate(dest)
	})
}

// Close tears the form down and cancels a pending navigation. Further Submit
// calls are no-ops.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}
