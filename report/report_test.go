package report

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ringcalc/service"
	"ringcalc/types"
)

func cubeResult(t *testing.T) *service.Result {
	t.Helper()
	log := logrus.New()
	log.Out = io.Discard
	setting := types.SamplerSetting{SampleCount: 10, ResolutionFactor: 1, Function: "cube", Dump: true}
	result, err := service.NewRunner(setting, log).Run(context.Background())
	require.NoError(t, err)
	return result
}

func TestSummary(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Summary(&out, cubeResult(t)))

	s := out.String()
	assert.Contains(t, s, "f(x) = x^3")
	assert.Contains(t, s, "capacity: 10")
	assert.Contains(t, s, "wrap")
	assert.Contains(t, s, "2525.000000")
	assert.Contains(t, s, "composite")
	assert.Contains(t, s, "2524.500000")
	assert.Contains(t, s, "2500.000000")
}

func TestDerivatives(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Derivatives(&out, cubeResult(t)))

	s := out.String()
	assert.Contains(t, s, "10.00")
	assert.Contains(t, s, "271.00")
	assert.Contains(t, s, "300.00")
	assert.Contains(t, s, "MAX ERR")
}

func TestBuffer(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Buffer(&out, []float64{1, 8, 27.5}))
	assert.Equal(t, "Buffer Contents: {1.000, 8.000, 27.500}\n", out.String())
}

func TestHistogram(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Histogram(&out, cubeResult(t).Derivatives, 5))
	assert.NotEmpty(t, out.String())

	out.Reset()
	require.NoError(t, Histogram(&out, nil, 5))
	assert.Empty(t, out.String())
}
