package domain

import "errors"

// FormMode selects which authentication flow the form targets.
type FormMode int

const (
	ModeSignIn FormMode = iota
	ModeSignUp
)

func (m FormMode) String() string {
	if m == ModeSignUp {
		return "sign_up"
	}
	return "sign_in"
}

// Toggle returns the other mode.
func (m FormMode) Toggle() FormMode {
	if m == ModeSignUp {
		return ModeSignIn
	}
	return ModeSignUp
}

// Field names one of the two form inputs.
type Field string

const (
	FieldEmail    Field = "email"
	FieldPassword Field = "password"
)

// SubmissionStatus reports whether a submit attempt is outstanding.
type SubmissionStatus int

const (
	StatusIdle SubmissionStatus = iota
	StatusInFlight
)

func (s SubmissionStatus) String() string {
	if s == StatusInFlight {
		return "in_flight"
	}
	return "idle"
}

// Demo credentials offered by the form. Both satisfy ValidateEmail and ValidatePassword.
const (
	DemoEmail    = "demo@gmail.com"
	DemoPassword = "demopass"
)

// Outcome and fallback messages shown after a submission completes.
const (
	MsgLoginSuccess        = "Login successful!"
	MsgRegistrationSuccess = "Registration successful!"
	MsgGenericFailure      = "Something went wrong"
)

var ErrUnknownField = errors.New("unknown form field")

// OutcomeMessage holds the single success-or-error message of the last submission.
// At most one of the two fields is non-empty.
type OutcomeMessage struct {
	Error   string `json:"error,omitempty"`
	Success string `json:"success,omitempty"`
}

// IsZero reports whether neither message is set.
func (m OutcomeMessage) IsZero() bool {
	return m.Error == "" && m.Success == ""
}

// IdentityRecord is the minimal authenticated-user data handed to the identity store.
type IdentityRecord struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Credentials is the request body sent to the remote authentication service.
type Credentials struct {
	Mail     string `json:"mail"`
	Password string `json:"password"`
}

// FormState is a point-in-time copy of everything the form renders.
type FormState struct {
	Mode          FormMode
	Email         string
	Password      string
	EmailError    string
	PasswordError string
	Status        SubmissionStatus
	Outcome       OutcomeMessage
	ShowPassword  bool
}

// Valid reports whether both field errors are empty.
func (s FormState) Valid() bool {
	return s.EmailError == "" && s.PasswordError == ""
}

// SuccessMessage returns the outcome text for a successful submission in mode m.
func SuccessMessage(m FormMode) string {
	if m == ModeSignUp {
		return MsgRegistrationSuccess
	}
	return MsgLoginSuccess
}
