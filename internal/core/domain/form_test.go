package domain

import "testing"

func TestFormMode_Toggle(t *testing.T) {
	if ModeSignIn.Toggle() != ModeSignUp || ModeSignUp.Toggle() != ModeSignIn {
		t.Fatalf("toggle is not an involution")
	}
	var zero FormMode
	if zero != ModeSignIn {
		t.Fatalf("zero mode must be sign in")
	}
}

func TestAuthResult(t *testing.T) {
	ok := Succeeded(IdentityRecord{ID: "u1", Email: "demo@gmail.com"})
	if !ok.OK() || ok.Identity().ID != "u1" || ok.FailureMessage() != "" {
		t.Fatalf("unexpected success result: %+v", ok)
	}

	bad := Failed("Invalid credentials")
	if bad.OK() || bad.FailureMessage() != "Invalid credentials" {
		t.Fatalf("unexpected failure result: %+v", bad)
	}
	if bad.Identity() != (IdentityRecord{}) {
		t.Fatalf("failed result must carry no identity")
	}

	if Failed("").FailureMessage() != MsgGenericFailure {
		t.Fatalf("empty failure message must fall back")
	}
}

func TestSubmitLabel(t *testing.T) {
	if got := SubmitLabel(FormState{Mode: ModeSignIn}); got != "Sign In ->" {
		t.Fatalf("got %q", got)
	}
	if got := SubmitLabel(FormState{Mode: ModeSignUp}); got != "Sign Up ->" {
		t.Fatalf("got %q", got)
	}
	if got := SubmitLabel(FormState{Mode: ModeSignUp, Status: StatusInFlight}); got != LoadingLabel {
		t.Fatalf("got %q", got)
	}
	if CopyFor(ModeSignUp).Title != "Create Account" {
		t.Fatalf("unexpected sign up title")
	}
}

func TestSuccessMessage(t *testing.T) {
	if SuccessMessage(ModeSignIn) != MsgLoginSuccess || SuccessMessage(ModeSignUp) != MsgRegistrationSuccess {
		t.Fatalf("wrong success messages")
	}
}
