package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ConfigValidator wraps struct-tag validation for loaded configurations.
type ConfigValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *ConfigValidator {
	return &ConfigValidator{
		validate: validator.New(),
	}
}

// Validate checks the configuration against its struct tags and reports
// every failing field at once.
func (cv *ConfigValidator) Validate(config *Config) error {
	if err := cv.validate.Struct(config); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			var errMsgs []string
			for _, e := range validationErrors {
				errMsgs = append(errMsgs, fmt.Sprintf("field '%s' failed rule '%s'", e.Field(), e.Tag()))
			}
			return fmt.Errorf("invalid configuration:\n- %s", strings.Join(errMsgs, "\n- "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
