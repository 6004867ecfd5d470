// Package validation holds the request validation rules shared by the HTTP
// layer.
package validation

import (
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// Course numbers, section numbers and SSNs: 1-32 characters, no spaces
	CodePattern = `^[A-Za-z0-9][A-Za-z0-9._-]{0,31}$`

	// Name validation max length
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Code *regexp.Regexp
}{
	Code: regexp.MustCompile(CodePattern),
}

// Binding tags registered by Register
const (
	TagCode     = "code"
	TagNonBlank = "nonblank"
)

// IsCode reports whether s is a valid catalog code.
func IsCode(s string) bool {
	return CompiledPatterns.Code.MatchString(s)
}

// IsNonBlank reports whether s has visible content and fits NameMaxLength.
func IsNonBlank(s string) bool {
	trimmed := strings.TrimSpace(s)
	return trimmed != "" && len(trimmed) <= NameMaxLength
}

// Register installs the custom rules on v.
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation(TagCode, func(fl validator.FieldLevel) bool {
		return IsCode(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation(TagNonBlank, func(fl validator.FieldLevel) bool {
		return IsNonBlank(fl.Field().String())
	})
}

var registerOnce sync.Once

// RegisterBinding installs the custom rules on gin's default validator. It
// must run before the first request is bound.
func RegisterBinding() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			panic("gin binding validator is not go-playground/validator")
		}
		if err := Register(v); err != nil {
			panic(err)
		}
	})
}
