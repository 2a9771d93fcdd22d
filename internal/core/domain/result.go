package domain

// AuthResult is the outcome of one call to the remote authentication service:
// either Success carrying an IdentityRecord or Failure carrying a user-facing message.
type AuthResult struct {
	identity IdentityRecord
	failure  string
	ok       bool
}

// Succeeded builds a successful result.
func Succeeded(id IdentityRecord) AuthResult {
	return AuthResult{identity: id, ok: true}
}

// Failed builds a failed result. An empty message is replaced by MsgGenericFailure.
func Failed(message string) AuthResult {
	if message == "" {
		message = MsgGenericFailure
	}
	return AuthResult{failure: message}
}

// OK reports whether the call succeeded.
func (r AuthResult) OK() bool { return r.ok }

// Identity returns the authenticated identity; zero when the call failed.
func (r AuthResult) Identity() IdentityRecord { return r.identity }

// FailureMessage returns the failure text; empty when the call succeeded.
func (r AuthResult) FailureMessage() string { return r.failure }
