package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ringcalc/tools/config"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	oldConfig, oldEnv := config.ConfigPath, config.EnvConfigPath
	config.EnvConfigPath = filepath.Join(t.TempDir(), ".env")
	t.Cleanup(func() {
		config.ConfigPath, config.EnvConfigPath = oldConfig, oldEnv
		viper.Reset()
	})

	var out, errOut bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &errOut
	err := app.Run(append([]string{"ringcalc", "--config", t.TempDir()}, args...))
	return out.String(), err
}

func TestRun(t *testing.T) {
	out, err := runApp(t, "run", "--samples", "10", "--dump")
	require.NoError(t, err)
	assert.Contains(t, out, "2525.000000")
	assert.Contains(t, out, "2524.500000")
	assert.Contains(t, out, "271.00")
	assert.Contains(t, out, "Buffer Contents: {1.000, 8.000, 27.000")
}

func TestRun_Functions(t *testing.T) {
	out, err := runApp(t, "run", "-f", "linear", "-f", "square", "-f", "linear")
	require.NoError(t, err)
	assert.Contains(t, out, "f(x) = x |")
	assert.Contains(t, out, "f(x) = x^2 |")
	assert.Equal(t, 2, bytes.Count([]byte(out), []byte("f(x) =")))
}

func TestRun_Interval(t *testing.T) {
	out, err := runApp(t, "run", "--interval", "100ms", "--histogram")
	require.NoError(t, err)
	assert.Contains(t, out, "resolution: 10")
	assert.Contains(t, out, "capacity: 100")
	assert.Contains(t, out, "------ DERIVATIVE -------")
}

func TestRun_Invalid(t *testing.T) {
	_, err := runApp(t, "run", "--samples", "0")
	require.Error(t, err)

	_, err = runApp(t, "run", "-f", "tan")
	require.Error(t, err)
}

func TestRun_WatchWithoutConfig(t *testing.T) {
	_, err := runApp(t, "run", "--watch")
	require.Error(t, err)
}

func TestFunctions(t *testing.T) {
	out, err := runApp(t, "functions")
	require.NoError(t, err)
	assert.Contains(t, out, "cube")
	assert.Contains(t, out, "x^3")
}

func TestConfigDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sampler.yaml"), []byte("sampler:\n  sampleCount: 4\n  function: square\n"), 0o644))

	oldEnv := config.EnvConfigPath
	config.EnvConfigPath = filepath.Join(dir, ".env")
	t.Cleanup(func() {
		config.EnvConfigPath = oldEnv
		viper.Reset()
	})

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &bytes.Buffer{}
	require.NoError(t, app.Run([]string{"ringcalc", "--config", dir, "run"}))
	assert.Contains(t, out.String(), "f(x) = x^2 | samples: 4")
}
