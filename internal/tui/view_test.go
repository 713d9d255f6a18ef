package tui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	t.Run("ShortStringUntouched", func(t *testing.T) {
		assert.Equal(t, "hello", truncate("hello", 10))
	})

	t.Run("LongStringGetsEllipsis", func(t *testing.T) {
		got := truncate("abcdefghij", 5)
		assert.Equal(t, "abcd…", got)
	})

	t.Run("NeverCutsMidRune", func(t *testing.T) {
		got := truncate("Améliorer la satisfaction clientèle", 10)
		assert.True(t, utf8.ValidString(got), "got %q", got)
		assert.Equal(t, 10, len([]rune(got)))
		assert.True(t, strings.HasSuffix(got, "…"))
	})

	t.Run("CJKTitle", func(t *testing.T) {
		got := truncate("顧客満足度の向上を図る", 6)
		assert.True(t, utf8.ValidString(got), "got %q", got)
		assert.Equal(t, "顧客満足度…", got)
	})
}
