package grammar

import (
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
)

// Hint names the language a skipped file appears to be, for debug logging.
// It is never used to choose a grammar; counting is strictly extension-driven.
func Hint(path string, content []byte) string {
	if lang, safe := enry.GetLanguageByExtension(filepath.Base(path)); safe {
		return lang
	}
	if len(content) > 0 {
		if lang, safe := enry.GetLanguageByContent(filepath.Base(path), content); safe {
			return lang
		}
	}
	return ""
}

// IsBinary reports whether content looks like binary rather than text.
// Binary files are excluded from analysis the same way unreadable files are.
func IsBinary(content []byte) bool {
	return enry.IsBinary(content)
}
