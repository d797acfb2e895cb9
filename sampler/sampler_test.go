package sampler

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ringcalc/model"
)

func TestLookup(t *testing.T) {
	fn, err := Lookup("cube")
	require.NoError(t, err)
	assert.Equal(t, 27.0, fn.F(3))
	assert.Equal(t, 27.0, fn.Derivative(3))
	assert.Equal(t, 2500.0, fn.Integral(0, 10))

	_, err = Lookup("tan")
	assert.True(t, errors.Is(err, ErrUnknownFunction))
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"cos", "cube", "exp", "linear", "sin", "square"}, Names())
	for _, name := range Names() {
		fn, err := Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, string(fn.Name))
		assert.NotEmpty(t, fn.Expression)
	}
}

func TestFill(t *testing.T) {
	fn, err := Lookup("cube")
	require.NoError(t, err)

	rb, err := model.NewRingBuffer(10)
	require.NoError(t, err)
	require.NoError(t, Fill(rb, fn.F, 1))

	assert.Equal(t, []float64{1, 8, 27, 64, 125, 216, 343, 512, 729, 1000}, rb.Slots())
	assert.Equal(t, 0, rb.Cursor())
	assert.Equal(t, 10, rb.Count())
}

func TestFill_Progress(t *testing.T) {
	fn, err := Lookup("linear")
	require.NoError(t, err)

	rb, err := model.NewRingBuffer(4)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, Fill(rb, fn.F, 0.5, WithProgress(&out)))
	assert.Equal(t, []float64{0.5, 1, 1.5, 2}, rb.Slots())
	assert.Contains(t, out.String(), "sampling")
}
