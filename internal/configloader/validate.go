package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/codestat/pkg/analysis"
	"github.com/yaklabco/codestat/pkg/config"
)

// ValidationError describes an invalid configuration value.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// ValidationResult collects errors and non-fatal warnings.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []string
}

// Valid returns true when no errors were recorded.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Validate checks a merged configuration for invalid values.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Message: fmt.Sprintf("%q (valid: text, table, json)", cfg.Format),
		})
	}

	if cfg.Sort != "" && !analysis.SortField(cfg.Sort).IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "sort",
			Message: fmt.Sprintf("%q (valid: name, code)", cfg.Sort),
		})
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Message: fmt.Sprintf("%d (must be >= 0)", cfg.Jobs),
		})
	}

	for _, pattern := range cfg.Ignore {
		if strings.TrimSpace(pattern) == "" {
			result.Warnings = append(result.Warnings, "empty ignore pattern has no effect")
		}
	}

	return result
}
