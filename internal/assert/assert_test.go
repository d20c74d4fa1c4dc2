package assert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	tw "github.com/katalvlaran/twexact/internal/assert"
)

func TestThat(t *testing.T) {
	assert.NotPanics(t, func() { tw.That(true, "never") })
	if tw.Enabled {
		assert.Panics(t, func() { tw.That(false, "boom %d", 1) })
	} else {
		assert.NotPanics(t, func() { tw.That(false, "boom %d", 1) })
	}
}
