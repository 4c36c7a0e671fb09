package models

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	nonDigits = regexp.MustCompile(`\D`)

	// Matched against the digit-stripped form so formatted input like
	// "+1 (555) 123-4567" validates the same as its normalized value.
	bookingPhoneRe   = regexp.MustCompile(`^[1-9]\d{0,15}$`)
	testDrivePhoneRe = regexp.MustCompile(`^\d{7,16}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("booking_phone", func(fl validator.FieldLevel) bool {
		return bookingPhoneRe.MatchString(nonDigits.ReplaceAllString(fl.Field().String(), ""))
	})
	_ = v.RegisterValidation("testdrive_phone", func(fl validator.FieldLevel) bool {
		return testDrivePhoneRe.MatchString(nonDigits.ReplaceAllString(fl.Field().String(), ""))
	})
	// Date must not fall before the start of the current calendar day.
	// Time-of-day is ignored, so same-day submissions pass.
	_ = v.RegisterValidation("datefloor", func(fl validator.FieldLevel) bool {
		t, ok := fl.Field().Interface().(time.Time)
		if !ok {
			return false
		}
		return !t.Before(StartOfDay(time.Now()))
	})

	return v
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ValidationError reports every failed field constraint, not just the first.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

func collectErrors(err error, messages map[string]string) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
			out = append(out, msg)
		} else {
			out = append(out, fe.Field()+" is invalid")
		}
	}
	return &ValidationError{Messages: out}
}
