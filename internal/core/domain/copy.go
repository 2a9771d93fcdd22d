package domain

// ModeCopy is the user-facing text that changes with the form mode.
type ModeCopy struct {
	Title        string
	Subtitle     string
	Description  string
	SubmitLabel  string
	SwitchPrompt string
	SwitchAction string
}

const LoadingLabel = "Loading..."

var modeCopy = map[FormMode]ModeCopy{
	ModeSignIn: {
		Title:        "Sign In",
		Subtitle:     "Welcome back! Sign in to your account",
		Description:  "Enter your credentials to access your dashboard",
		SubmitLabel:  "Sign In ->",
		SwitchPrompt: "Don't have an account?",
		SwitchAction: "Sign up",
	},
	ModeSignUp: {
		Title:        "Create Account",
		Subtitle:     "Create your account to get started",
		Description:  "Fill in your details to create a new account",
		SubmitLabel:  "Sign Up ->",
		SwitchPrompt: "Already have an account?",
		SwitchAction: "Sign in",
	},
}

// CopyFor returns the text for mode m.
func CopyFor(m FormMode) ModeCopy {
	return modeCopy[m]
}

// SubmitLabel returns the label of the submit trigger for the given state.
func SubmitLabel(s FormState) string {
	if s.Status == StatusInFlight {
		return LoadingLabel
	}
	return CopyFor(s.Mode).SubmitLabel
}
