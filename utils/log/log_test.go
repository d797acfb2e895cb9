package log

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"ringcalc/constants"
)

func TestNewLogger(t *testing.T) {
	t.Cleanup(viper.Reset)

	viper.Set(constants.KeyLogLevel, "warn")
	var out bytes.Buffer
	logger, err := NewLogger(&out)
	require.NoError(t, err)
	require.Equal(t, logrus.WarnLevel, logger.GetLevel())

	logger.Info("hidden")
	logger.Warn("shown")
	require.NotContains(t, out.String(), "hidden")
	require.Contains(t, out.String(), "shown")
}

func TestNewLogger_BadLevel(t *testing.T) {
	t.Cleanup(viper.Reset)

	viper.Set(constants.KeyLogLevel, "loud")
	_, err := NewLogger(&bytes.Buffer{})
	require.Error(t, err)
}

func TestNewLogger_Files(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	viper.Set(constants.KeyLogLevel, "info")
	viper.Set(constants.KeyLogStdout, true)
	viper.Set(constants.KeyLogPath, dir)
	viper.Set(constants.KeyLogFlag, "ringcalc")

	logger, err := NewLogger(&bytes.Buffer{})
	require.NoError(t, err)
	logger.Info("to file")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	found := false
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "ringcalc-info-") {
			found = true
		}
	}
	require.True(t, found, "no info log file in %s", dir)
}

func TestNewLogger_Plain(t *testing.T) {
	t.Cleanup(viper.Reset)

	viper.Set(constants.KeyLogFormat, "plain")
	var out bytes.Buffer
	logger, err := NewLogger(&out)
	require.NoError(t, err)
	logger.Info("integral: 2525")
	require.Equal(t, "integral: 2525\n", out.String())
}

func TestMineFormatter(t *testing.T) {
	b, err := (&MineFormatter{}).Format(&logrus.Entry{Message: "integral: 2525"})
	require.NoError(t, err)
	require.Equal(t, "integral: 2525\n", string(b))
}
