package api

import (
	"math"
	"reflect"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"meteorenard.app/pkg/errors"
)

var (
	providerMu sync.RWMutex
	providerOK = map[string]bool{}
)

func validateProvider(fl validator.FieldLevel) bool {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return providerOK[fl.Field().String()]
}

// validateFinite rejects NaN and infinite floats, which parse from query strings
func validateFinite(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	default:
		return true
	}
}

// RegisterValidators installs the "provider" binding tag, accepting the
// given provider identifiers, and the "finite" tag
func RegisterValidators(providers []string) error {
	providerMu.Lock()
	providerOK = make(map[string]bool, len(providers))
	for _, id := range providers {
		providerOK[id] = true
	}
	providerMu.Unlock()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.NewConfigurationError("gin binding validator is not go-playground/validator", nil)
	}
	if err := v.RegisterValidation("provider", validateProvider); err != nil {
		return errors.NewConfigurationError("failed to register provider validator", err)
	}
	if err := v.RegisterValidation("finite", validateFinite); err != nil {
		return errors.NewConfigurationError("failed to register finite validator", err)
	}
	return nil
}
