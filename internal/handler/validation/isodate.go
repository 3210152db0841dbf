package validation

import (
	"errors"
	"sync"

	"hotel-quote-engine/internal/domain/stay"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// Register adds the custom rules to gin's validator. Safe to call more than once.
func Register() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		err = v.RegisterValidation("isodate", isoDate)
	})
	return err
}

// isoDate accepts a yyyy-MM-dd calendar date. Empty strings are left to required.
func isoDate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := stay.ParseDate(s)
	return err == nil
}

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// Details lists the failed rules of a binding error, nil for other errors.
func Details(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return out
}
