package validation

import (
	stderrors "errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"meteorenard.app/pkg/errors"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator instance
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// Struct validates a struct using its `validate` tags and converts failures
// into a validation AppError naming the first offending field.
func Struct(s interface{}) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if stderrors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return errors.NewValidationError(fmt.Sprintf("%s failed %q validation", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return errors.NewValidationError(err.Error())
}

// IsValidLatitude reports whether v is within [-90, 90]
func IsValidLatitude(v float64) bool {
	return Validator().Var(v, "latitude") == nil
}

// IsValidLongitude reports whether v is within [-180, 180]
func IsValidLongitude(v float64) bool {
	return Validator().Var(v, "longitude") == nil
}

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}
