// Package validation shares gin's validator engine between request binding
// and the service layer, so both enforce the same struct tags.
package validation

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/hometrack/hometrack-api/internal/models"
)

var registerOnce sync.Once

// Setup registers the custom tags on gin's validator. It is safe to call
// more than once.
func Setup() {
	registerOnce.Do(func() {
		engine, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			panic(fmt.Sprintf("unexpected validator engine %T", binding.Validator.Engine()))
		}
		if err := engine.RegisterValidation("enum", validateEnum); err != nil {
			panic(err)
		}
	})
}

// Struct validates v against its binding tags.
func Struct(v any) error {
	Setup()
	return binding.Validator.ValidateStruct(v)
}

// validateEnum accepts values whose type reports them as a known member.
func validateEnum(fl validator.FieldLevel) bool {
	enum, ok := fl.Field().Interface().(models.Enum)
	if !ok {
		return false
	}
	return enum.IsValid()
}
