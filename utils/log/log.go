package log

import (
	"io"
	"path"
	"time"

	rotatelogs "github.com/lestrrat/go-file-rotatelogs"
	"github.com/pkg/errors"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"ringcalc/constants"
	"ringcalc/utils/fileutil"
)

// NewLogger 根据配置创建日志实例，开启 log.stdout 时同时按级别写入滚动日志文件
func NewLogger(out io.Writer) (*logrus.Logger, error) {
	var loglevel logrus.Level

	logLevel := viper.GetString(constants.KeyLogLevel)
	if logLevel == "" {
		logLevel = "info"
	}
	Log := logrus.New()
	if viper.GetString(constants.KeyLogFormat) == "plain" {
		Log.SetFormatter(&MineFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}
	Log.Out = out

	if err := loglevel.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, errors.Wrapf(err, "unknown log level %q", logLevel)
	}
	Log.SetLevel(loglevel)

	if viper.GetBool(constants.KeyLogStdout) {
		dataPath := viper.GetString(constants.KeyLogPath)
		if dataPath == "" {
			dataPath = "./logs"
		}
		if err := fileutil.CreateDir(dataPath); err != nil {
			return nil, err
		}
		if err := NewSimpleLogger(Log, dataPath, 30); err != nil {
			return nil, err
		}
	}
	return Log, nil
}

// NewSimpleLogger 文件日志，每个级别一个文件
func NewSimpleLogger(log *logrus.Logger, logPath string, save uint) error {
	writers := lfshook.WriterMap{}
	for _, level := range logrus.AllLevels {
		w, err := writer(logPath, level.String(), save)
		if err != nil {
			return err
		}
		writers[level] = w
	}

	log.AddHook(lfshook.NewHook(writers, &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	}))
	return nil
}

// writer 文件设置
func writer(logPath string, level string, save uint) (*rotatelogs.RotateLogs, error) {
	var tempFileFlag string
	if flag := viper.GetString(constants.KeyLogFlag); flag != "" {
		tempFileFlag = flag + "-"
	}
	suffix := viper.GetString(constants.KeyLogSuffix)
	if suffix == "" {
		suffix = "log"
	}

	tempFileFlag += level
	logFullPath := path.Join(logPath, tempFileFlag)

	logier, err := rotatelogs.New(
		logFullPath+"-%Y%m%d."+suffix,
		rotatelogs.WithRotationTime(24*time.Hour),   // 日志切割时间间隔
		rotatelogs.WithMaxAge(-1),                   // 关闭过期清理
		rotatelogs.WithLinkName(logFullPath+".out"), // 生成软链，指向最新日志文件
		rotatelogs.WithRotationCount(int(save)),     // 文件最大保存份数
	)
	if err != nil {
		return nil, errors.Wrapf(err, "rotate log %s", logFullPath)
	}
	return logier, nil
}
