package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/codestat/pkg/grammar"
)

func TestIsBinary(t *testing.T) {
	t.Parallel()

	assert.False(t, grammar.IsBinary([]byte("plain text\n")))
	assert.True(t, grammar.IsBinary([]byte{0x7f, 'E', 'L', 'F', 0x00, 0x01}))
}

func TestHint(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Go", grammar.Hint("main.go", nil))
	assert.Equal(t, "", grammar.Hint("noextension", nil))
}
