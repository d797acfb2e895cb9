package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"ringcalc/constants"
	"ringcalc/types"
	"ringcalc/utils/fileutil"
)

var (
	ConfigPath    = "./configs/"
	EnvConfigPath = "./.env"
)

// LoadConf 读取默认配置、配置目录与环境变量
func LoadConf() error {
	setDefaults()
	if err := setFileConfig(); err != nil {
		return errors.Wrap(err, "初始化配置文件出错")
	}
	if err := setEnvConfig(); err != nil {
		return errors.Wrap(err, "载入环境变量出错")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault(constants.KeySampleCount, constants.DefaultSampleCount)
	viper.SetDefault(constants.KeyResolutionFactor, constants.DefaultResolutionFactor)
	viper.SetDefault(constants.KeyFunction, constants.DefaultFunction)
	viper.SetDefault(constants.KeyReportBins, constants.DefaultReportBins)
	viper.SetDefault(constants.KeyLogLevel, "info")
	viper.SetDefault(constants.KeyLogSuffix, "log")
}

// setFileConfig 读取 config 文件夹下的配置，按文件名顺序合并
func setFileConfig() error {
	absPath, err := filepath.Abs(ConfigPath)
	if err != nil {
		return err
	}
	exist, err := fileutil.PathExists(absPath)
	if err != nil || !exist {
		return err
	}
	entries, err := os.ReadDir(absPath)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		viper.SetConfigFile(filepath.Join(absPath, entry.Name()))
		if err := viper.MergeInConfig(); err != nil {
			return errors.Wrapf(err, "merge %s", entry.Name())
		}
	}
	return nil
}

// setEnvConfig 读取系统变量与 .env 文件
func setEnvConfig() error {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	absPath, err := filepath.Abs(EnvConfigPath)
	if err != nil {
		return err
	}
	exist, err := fileutil.PathExists(absPath)
	if err != nil || !exist {
		return err
	}

	envViper := viper.New()
	envViper.SetConfigFile(absPath)
	envViper.SetConfigType("env")
	if err := envViper.ReadInConfig(); err != nil {
		return err
	}
	// SAMPLER_SAMPLECOUNT -> sampler.samplecount
	for _, key := range envViper.AllKeys() {
		viper.Set(strings.Replace(key, "_", ".", 1), envViper.Get(key))
	}
	return nil
}

// Setting 从当前配置构建一次采样参数
func Setting() types.SamplerSetting {
	return types.SamplerSetting{
		SampleCount:      viper.GetInt(constants.KeySampleCount),
		ResolutionFactor: viper.GetInt(constants.KeyResolutionFactor),
		Interval:         viper.GetString(constants.KeyInterval),
		Function:         viper.GetString(constants.KeyFunction),
		MaxCapacity:      viper.GetInt(constants.KeyMaxCapacity),
		Histogram:        viper.GetBool(constants.KeyReportHistogram),
		Bins:             viper.GetInt(constants.KeyReportBins),
		Progress:         viper.GetBool(constants.KeyReportProgress),
		Dump:             viper.GetBool(constants.KeyReportDump),
	}
}

// WatchConfig 监听配置文件是否改变，用于热更新
func WatchConfig(onChange func(name string)) {
	viper.OnConfigChange(func(e fsnotify.Event) {
		if e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
			return
		}
		onChange(e.Name)
	})
	viper.WatchConfig()
}
