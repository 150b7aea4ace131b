package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	globalLogger *zap.Logger
	mu           sync.Mutex
)

// Options 日志配置
// Level: debug, info, warn, error
// Format: json, console
type Options struct {
	Level  string
	Format string
	Output io.Writer // 默认 os.Stderr
}

// fixedWidthColorLevelEncoder 固定宽度（5字符）的彩色日志等级编码器
func fixedWidthColorLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	s := fmt.Sprintf("%-5s", level.CapitalString())
	switch level {
	case zapcore.DebugLevel:
		s = "\x1b[35m" + s + "\x1b[0m"
	case zapcore.InfoLevel:
		s = "\x1b[34m" + s + "\x1b[0m"
	case zapcore.WarnLevel:
		s = "\x1b[33m" + s + "\x1b[0m"
	default:
		s = "\x1b[31m" + s + "\x1b[0m"
	}
	enc.AppendString(s)
}

// New 按配置创建 Logger，未知级别或格式返回错误
func New(opts Options) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if opts.Level != "" {
		l, err := zapcore.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("日志级别无效: %w", err)
		}
		level = l
	}

	var encoder zapcore.Encoder
	switch strings.ToLower(opts.Format) {
	case "json":
		cfg := zap.NewProductionEncoderConfig()
		cfg.TimeKey = "time"
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(cfg)
	case "", "console":
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = "time"
		cfg.EncodeLevel = fixedWidthColorLevelEncoder
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout("[2006-01-02 15:04:05]")
		cfg.ConsoleSeparator = " "
		encoder = zapcore.NewConsoleEncoder(cfg)
	default:
		return nil, fmt.Errorf("日志格式无效: %q", opts.Format)
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	core := zapcore.NewCore(encoder, zapcore.AddSync(out), level)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

// Init 初始化全局日志器，可重复调用以替换
func Init(level, format string) error {
	l, err := New(Options{Level: level, Format: format})
	if err != nil {
		return err
	}
	mu.Lock()
	globalLogger = l
	mu.Unlock()
	return nil
}

// Get 获取全局 Logger，未初始化时使用 info/console
func Get() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if globalLogger == nil {
		globalLogger, _ = New(Options{})
	}
	return globalLogger
}

// Sync 刷新日志缓冲
func Sync() {
	mu.Lock()
	l := globalLogger
	mu.Unlock()
	if l != nil {
		_ = l.Sync()
	}
}

// Named 创建命名 Logger
func Named(name string) *zap.Logger {
	return Get().Named(name)
}
