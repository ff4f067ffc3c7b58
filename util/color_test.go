package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorize(t *testing.T) {
	assert.Equal(t, "\x1b[43mP\x1b[0m", Colorize("P", Yellow, true))
	assert.Equal(t, "\x1b[32;1mok\x1b[0m", Colorize("ok", Green, false, true))
}
