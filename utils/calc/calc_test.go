package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	assert.Equal(t, 25.0, AbsError(2525, 2500))
	assert.Equal(t, 25.0, AbsError(2475, 2500))
	assert.InDelta(t, 0.01, RelativeError(2525, 2500), 1e-12)
	assert.Equal(t, 0.5, RelativeError(-0.5, 0))
	assert.Equal(t, 3.0, Abs(-3))
	assert.Equal(t, 3.0, Abs(3))
}
