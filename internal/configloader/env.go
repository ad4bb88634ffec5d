package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/codestat/pkg/config"
)

// envVarPrefix is the prefix for all codestat environment variables.
const envVarPrefix = "CODESTAT_"

// LoadFromEnv applies environment variable overrides to the configuration.
// Variables are prefixed with CODESTAT_ (e.g. CODESTAT_FORMAT).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if value := os.Getenv(envVarPrefix + "FORMAT"); value != "" {
		cfg.Format = config.OutputFormat(value)
	}
	if value := os.Getenv(envVarPrefix + "SORT"); value != "" {
		cfg.Sort = value
	}
	if value := os.Getenv(envVarPrefix + "IGNORE"); value != "" {
		cfg.Ignore = parseSliceValue(value)
	}
	if value := os.Getenv(envVarPrefix + "JOBS"); value != "" {
		jobs, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %sJOBS: %q", envVarPrefix, value)
		}
		cfg.Jobs = jobs
	}
	if value := os.Getenv(envVarPrefix + "FOLLOW_SYMLINKS"); value != "" {
		follow, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %sFOLLOW_SYMLINKS: %q (expected true/false/1/0)", envVarPrefix, value)
		}
		cfg.FollowSymlinks = follow
	}
	if value := os.Getenv(envVarPrefix + "PER_FILE"); value != "" {
		perFile, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %sPER_FILE: %q (expected true/false/1/0)", envVarPrefix, value)
		}
		cfg.PerFile = perFile
	}

	return nil
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ListEnvVars returns the supported environment variables with descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"CODESTAT_FORMAT":          "Output format: text, table or json",
		"CODESTAT_SORT":            "Report ordering: name or code",
		"CODESTAT_IGNORE":          "Comma-separated list of ignore patterns",
		"CODESTAT_JOBS":            "Number of parallel workers (0 = auto)",
		"CODESTAT_FOLLOW_SYMLINKS": "Traverse directory symlinks: true or false",
		"CODESTAT_PER_FILE":        "Include per-file breakdown: true or false",
	}
}
