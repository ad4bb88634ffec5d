package pretty

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStyles(t *testing.T) {
	t.Parallel()

	colored := NewStyles(true)
	require.NotNil(t, colored)

	plain := NewStyles(false)
	require.NotNil(t, plain)

	// No-color styles must render text unchanged.
	assert.Equal(t, "hello", plain.LanguageName.Render("hello"))
	assert.Equal(t, "hello", plain.Failure.Render("hello"))
}

func TestIsColorEnabled(t *testing.T) {
	tests := []struct {
		name string
		mode string
		want bool
	}{
		{name: "always", mode: "always", want: true},
		{name: "never", mode: "never", want: false},
		{name: "auto with non-tty buffer", mode: "auto", want: false},
		{name: "unknown mode behaves like auto", mode: "bogus", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsColorEnabled(tt.mode, &bytes.Buffer{}))
		})
	}
}

func TestIsColorEnabled_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, IsColorEnabled("auto", &bytes.Buffer{}))
	// Explicit always still wins over NO_COLOR.
	assert.True(t, IsColorEnabled("always", &bytes.Buffer{}))
}
