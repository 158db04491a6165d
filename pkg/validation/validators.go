package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// local@domain.tld, no whitespace and a single @
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Exactly ten decimal digits, no separators
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
)

// New returns a validator with the custom contact tags registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("basic_email", BasicEmail)
	_ = v.RegisterValidation("phone_10", TenDigitPhone)
}

// BasicEmail validates the local@domain.tld shape.
// The built-in "email" tag is stricter than what the API accepts.
func BasicEmail(fl validator.FieldLevel) bool {
	return IsEmail(fl.Field().String())
}

// TenDigitPhone validates a phone number of exactly 10 digits
func TenDigitPhone(fl validator.FieldLevel) bool {
	return IsPhone(fl.Field().String())
}

func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}

func IsPhone(s string) bool {
	return phoneRegex.MatchString(s)
}
