package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"
)

const minPasswordLen = 6

// Field error messages.
const (
	MsgEmailRequired    = "Email is required"
	MsgEmailInvalid     = "Please enter a valid email address"
	MsgPasswordRequired = "Password is required"
	MsgPasswordShort    = "Password must be at least 6 characters long"
)

// MsgPasswordTooLong is reported by the server only; bcrypt hashes at most 72 bytes.
const MsgPasswordTooLong = "Password must be at most 72 bytes long"

var ErrValidation = errors.New("validation failed")

// emailPattern accepts local@domain.tld with a single "@" and no whitespace.
// \s in RE2 is ASCII only, so Unicode separators and BOM are excluded explicitly.
var emailPattern = regexp.MustCompile(`^[^@\s\v\p{Z}\x{FEFF}]+@[^@\s\v\p{Z}\x{FEFF}]+\.[^@\s\v\p{Z}\x{FEFF}]+$`)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("formemail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("utf16min", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return utf16Len(fl.Field().String()) >= n
	})
	return v
}

// ValidateEmail returns the error message for an email input, or "" when valid.
func ValidateEmail(value string) string {
	return message(validate.Var(value, "required,formemail"), MsgEmailRequired, MsgEmailInvalid)
}

// ValidatePassword returns the error message for a password input, or "" when valid.
// Length is counted in UTF-16 code units, so a character outside the BMP counts twice.
func ValidatePassword(value string) string {
	return message(validate.Var(value, fmt.Sprintf("required,utf16min=%d", minPasswordLen)), MsgPasswordRequired, MsgPasswordShort)
}

func utf16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// ValidateCredentials checks both fields and returns an error wrapping ErrValidation
// that names the first failing message.
func ValidateCredentials(c Credentials) error {
	if msg := ValidateEmail(c.Mail); msg != "" {
		return fmt.Errorf("%w: %s", ErrValidation, msg)
	}
	if msg := ValidatePassword(c.Password); msg != "" {
		return fmt.Errorf("%w: %s", ErrValidation, msg)
	}
	return nil
}

// message maps the first validator failure to user-facing text.
func message(err error, requiredMsg, invalidMsg string) string {
	if err == nil {
		return ""
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 && ve[0].Tag() == "required" {
		return requiredMsg
	}
	return invalidMsg
}
