package fileutil

import (
	"os"

	"github.com/pkg/errors"
)

func PathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// CreateDir 创建不存在的目录
func CreateDir(dirs ...string) error {
	for _, v := range dirs {
		exist, err := PathExists(v)
		if err != nil {
			return err
		}
		if exist {
			continue
		}
		if err := os.MkdirAll(v, os.ModePerm); err != nil {
			return errors.Wrapf(err, "create directory %s", v)
		}
	}
	return nil
}
