package slackify

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger 全局日志记录器。默认只输出 warn 及以上级别到 stderr
var Logger = zerolog.New(os.Stderr).With().
	Timestamp().
	Str("component", "slackify").
	Logger().
	Level(zerolog.WarnLevel)

// SetLogger 设置自定义日志记录器
func SetLogger(logger zerolog.Logger) {
	Logger = logger
}
