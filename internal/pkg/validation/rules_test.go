package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCode(t *testing.T) {
	for _, ok := range []string{"CS101", "CS101-A", "123-45-6789", "s.001", "A"} {
		assert.True(t, IsCode(ok), ok)
	}
	for _, bad := range []string{"", " CS101", "CS 101", "-A", "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"} {
		assert.False(t, IsCode(bad), bad)
	}
}

func TestRegister(t *testing.T) {
	v := validator.New()
	require.NoError(t, Register(v))

	type req struct {
		CourseNo string `validate:"required,code"`
		Name     string `validate:"required,nonblank"`
	}
	assert.NoError(t, v.Struct(req{CourseNo: "CS101", Name: "Functional Programming"}))

	err := v.Struct(req{CourseNo: "CS 101", Name: "   "})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 2)
	assert.Equal(t, TagCode, verrs[0].Tag())
	assert.Equal(t, TagNonBlank, verrs[1].Tag())
}
