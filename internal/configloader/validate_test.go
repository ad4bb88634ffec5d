package configloader

import (
	"strings"
	"testing"

	"github.com/yaklabco/codestat/pkg/config"
)

func TestValidate_Valid(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Format: config.FormatJSON, Sort: "code", Jobs: 4}
	result := Validate(cfg)
	if !result.Valid() {
		t.Errorf("expected valid, got errors: %v", result.Errors)
	}
}

func TestValidate_EmptyFieldsAllowed(t *testing.T) {
	t.Parallel()

	result := Validate(&config.Config{})
	if !result.Valid() {
		t.Errorf("zero config should validate, got: %v", result.Errors)
	}
}

func TestValidate_UnknownFormat(t *testing.T) {
	t.Parallel()

	result := Validate(&config.Config{Format: "xml"})
	if result.Valid() {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(result.Errors[0].Error(), "format") {
		t.Errorf("error should name the field: %v", result.Errors[0])
	}
}

func TestValidate_UnknownSort(t *testing.T) {
	t.Parallel()

	result := Validate(&config.Config{Sort: "size"})
	if result.Valid() {
		t.Fatal("expected error for unknown sort")
	}
}

func TestValidate_NegativeJobs(t *testing.T) {
	t.Parallel()

	result := Validate(&config.Config{Jobs: -1})
	if result.Valid() {
		t.Fatal("expected error for negative jobs")
	}
}

func TestValidate_EmptyIgnorePatternWarns(t *testing.T) {
	t.Parallel()

	result := Validate(&config.Config{Ignore: []string{"vendor/**", "  "}})
	if !result.Valid() {
		t.Fatalf("warnings must not fail validation: %v", result.Errors)
	}
	if len(result.Warnings) != 1 {
		t.Errorf("expected 1 warning, got %v", result.Warnings)
	}
}
