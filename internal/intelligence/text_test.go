package intelligence

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exact", Truncate("exact", 5))
	assert.Equal(t, "abc…", Truncate("abcdefgh", 4))
	assert.Equal(t, "…", Truncate("abcdefgh", 1))
	assert.Equal(t, "", Truncate("abc", 0))

	cut := Truncate("héllo wörld ünïcode", 8)
	assert.True(t, utf8.ValidString(cut))
	assert.Equal(t, 8, utf8.RuneCountInString(cut))
	assert.Equal(t, "héllo w…", cut)
}
