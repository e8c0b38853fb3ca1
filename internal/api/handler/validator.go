package handler

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/JakeKoks/aicomics/internal/core/domain"
)

var usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// passwordSpecials is the accepted special-character set for the password
// complexity policy.
const passwordSpecials = "@$!%*?&"

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
// Failures are converted into domain.ValidationError with per-field messages,
// which the error handler renders as 400 VALIDATION_ERROR with details.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New()

	// username: 3-30 chars, alphanumeric and underscores only.
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return len(s) >= 3 && len(s) <= 30 && usernameRe.MatchString(s)
	})

	// userpassword: >= 8 chars containing lowercase, uppercase, digit, and
	// one of the accepted specials.
	_ = v.RegisterValidation("userpassword", func(fl validator.FieldLevel) bool {
		return validPassword(fl.Field().String())
	})

	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			fields := make(map[string]string, len(ve))
			for _, fe := range ve {
				field := lowerFirst(fe.Field())
				fields[field] = fieldError(field, fe)
			}
			return &domain.ValidationError{Fields: fields}
		}
		return err
	}
	return nil
}

func validPassword(s string) bool {
	if len(s) < 8 {
		return false
	}
	var lower, upper, digit, special bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	return lower && upper && digit && special
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "username":
		return field + " must be 3-30 characters, alphanumeric and underscores only"
	case "userpassword":
		return field + " must be 8+ characters with uppercase, lowercase, number, and special character"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
