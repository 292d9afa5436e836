package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequire(t *testing.T) {
	assert.NotPanics(t, func() { Require(true, "never") })

	if Enabled {
		assert.PanicsWithValue(t, "contract violation: pool 3 released twice", func() {
			Require(false, "pool %d released twice", 3)
		})
	} else {
		assert.NotPanics(t, func() { Require(false, "ignored in release builds") })
	}
}
