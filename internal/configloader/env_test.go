package configloader

import (
	"testing"

	"github.com/yaklabco/codestat/pkg/config"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CODESTAT_FORMAT", "json")
	t.Setenv("CODESTAT_SORT", "code")
	t.Setenv("CODESTAT_IGNORE", "vendor/**, build/**,")
	t.Setenv("CODESTAT_JOBS", "6")
	t.Setenv("CODESTAT_FOLLOW_SYMLINKS", "true")
	t.Setenv("CODESTAT_PER_FILE", "1")

	cfg := config.NewConfig()
	if err := LoadFromEnv(cfg); err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.Format != config.FormatJSON {
		t.Errorf("Format = %q, want json", cfg.Format)
	}
	if cfg.Sort != "code" {
		t.Errorf("Sort = %q, want code", cfg.Sort)
	}
	if len(cfg.Ignore) != 2 || cfg.Ignore[0] != "vendor/**" || cfg.Ignore[1] != "build/**" {
		t.Errorf("Ignore = %v, want trimmed two-element slice", cfg.Ignore)
	}
	if cfg.Jobs != 6 {
		t.Errorf("Jobs = %d, want 6", cfg.Jobs)
	}
	if !cfg.FollowSymlinks || !cfg.PerFile {
		t.Error("boolean env vars not applied")
	}
}

func TestLoadFromEnv_InvalidInt(t *testing.T) {
	t.Setenv("CODESTAT_JOBS", "lots")

	if err := LoadFromEnv(config.NewConfig()); err == nil {
		t.Fatal("expected error for invalid CODESTAT_JOBS")
	}
}

func TestLoadFromEnv_InvalidBool(t *testing.T) {
	t.Setenv("CODESTAT_FOLLOW_SYMLINKS", "maybe")

	if err := LoadFromEnv(config.NewConfig()); err == nil {
		t.Fatal("expected error for invalid CODESTAT_FOLLOW_SYMLINKS")
	}
}

func TestListEnvVars(t *testing.T) {
	t.Parallel()

	vars := ListEnvVars()
	for _, key := range []string{
		"CODESTAT_FORMAT", "CODESTAT_SORT", "CODESTAT_IGNORE",
		"CODESTAT_JOBS", "CODESTAT_FOLLOW_SYMLINKS", "CODESTAT_PER_FILE",
	} {
		if _, ok := vars[key]; !ok {
			t.Errorf("missing env var description for %s", key)
		}
	}
}
