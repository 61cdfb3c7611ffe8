package logs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTagNames(t *testing.T) {
	// " a " trims to a duplicate of "a" and is dropped; case is preserved.
	assert.Equal(t, []string{"a", "B"}, normalizeTagNames([]string{"a", " a ", "B"}))
}

func TestNormalizeTagNamesCaseSensitive(t *testing.T) {
	assert.Equal(t, []string{"Go", "go"}, normalizeTagNames([]string{"Go", "go"}))
}

func TestNormalizeTagNamesKeepsBlanksForReporting(t *testing.T) {
	// Blank names are not silently dropped; the attach batch reports each as
	// a validation failure.
	got := normalizeTagNames([]string{"", "  ", "x"})
	assert.Equal(t, []string{"", "", "x"}, got)
}

func TestNormalizeTagNamesEmpty(t *testing.T) {
	assert.Empty(t, normalizeTagNames(nil))
}
