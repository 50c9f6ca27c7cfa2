package util

import (
	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger *zap.Logger

func init() {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.OutputPaths = []string{"stdout"}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	var err error
	Logger, err = config.Build()
	if err != nil {
		panic(err)
	}
}

// InitLogger replaces Logger with one of the given level. When filename is not
// empty, logs go to that file and are rotated by pingcap/log.
func InitLogger(level, filename string) error {
	lg, props, err := log.InitLogger(&log.Config{
		Level: level,
		File:  log.FileLogConfig{Filename: filename},
	})
	if err != nil {
		return errors.Annotatef(err, "init logger with level %q and file %q", level, filename)
	}
	log.ReplaceGlobals(lg, props)
	Logger = lg
	return nil
}
