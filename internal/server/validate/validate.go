// Package validate checks request payloads with go-playground/validator and
// turns failures into common.ValidationError values.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/griotme/griot/internal/common"
	"github.com/griotme/griot/internal/server/models"
)

const (
	DefaultMinPasswordLen = 8
	// bcrypt ignores anything past 72 bytes.
	MaxPasswordLen = 72
	MaxUsernameLen = 150
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9@.+_-]+$`)

type Validator struct {
	v              *validator.Validate
	minPasswordLen int
}

func New(minPasswordLen int) *Validator {
	if minPasswordLen <= 0 {
		minPasswordLen = DefaultMinPasswordLen
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("timezone_choice", func(fl validator.FieldLevel) bool {
		return models.IsKnownTimezone(fl.Field().String())
	})
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})

	return &Validator{v: v, minPasswordLen: minPasswordLen}
}

// Struct validates s against its validate tags.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", common.ErrBadRequest, err)
	}

	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, &common.ValidationError{Field: fe.Field(), Message: message(fe)})
	}
	return errors.Join(errs...)
}

// Password enforces the password policy. username may be empty.
func (val *Validator) Password(password, username string) error {
	switch {
	case len(password) < val.minPasswordLen:
		return fmt.Errorf("%w: must be at least %d characters", common.ErrWeakPassword, val.minPasswordLen)
	case len(password) > MaxPasswordLen:
		return fmt.Errorf("%w: must be at most %d characters", common.ErrWeakPassword, MaxPasswordLen)
	case username != "" && strings.EqualFold(password, username):
		return fmt.Errorf("%w: too similar to the username", common.ErrWeakPassword)
	}

	var letter, digit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !letter || !digit {
		return fmt.Errorf("%w: must contain letters and digits", common.ErrWeakPassword)
	}
	return nil
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "enter a valid email address"
	case "max":
		return fmt.Sprintf("ensure this field has no more than %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("ensure this field has at least %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "datetime":
		return "date has wrong format, use YYYY-MM-DD"
	case "timezone_choice":
		return "not a supported timezone"
	case "username":
		return "letters, digits and @/./+/-/_ only"
	case "uuid":
		return "must be a valid id"
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
