package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"meteorenard.app/pkg/errors"
)

type sample struct {
	Name string  `validate:"required"`
	Lat  float64 `validate:"latitude"`
}

func TestStruct(t *testing.T) {
	assert.NoError(t, Struct(sample{Name: "Laval", Lat: 45.6066}))

	err := Struct(sample{Name: "", Lat: 45})
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "name")

	err = Struct(sample{Name: "Nowhere", Lat: 123})
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "latitude")
}

func TestCoordinates(t *testing.T) {
	assert.True(t, IsValidLatitude(0))
	assert.True(t, IsValidLatitude(-90))
	assert.True(t, IsValidLatitude(45.5017))
	assert.False(t, IsValidLatitude(90.5))

	assert.True(t, IsValidLongitude(-73.5673))
	assert.True(t, IsValidLongitude(180))
	assert.False(t, IsValidLongitude(-181))
}

func TestTrimAndValidate(t *testing.T) {
	v, ok := TrimAndValidate("  Sherbrooke ")
	assert.True(t, ok)
	assert.Equal(t, "Sherbrooke", v)

	_, ok = TrimAndValidate("   ")
	assert.False(t, ok)
	assert.False(t, IsNotEmpty("\t"))
}
