package log

import (
	"github.com/sirupsen/logrus"
)

// MineFormatter 只输出日志消息本身，log.format 为 plain 时使用
type MineFormatter struct{}

func (f *MineFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	return []byte(entry.Message + "\n"), nil
}
