package logger

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel 日志级别
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

// Logger 全局日志管理器
type Logger struct {
	level   LogLevel
	verbose bool
	sugar   *zap.SugaredLogger
}

var globalLogger *Logger

// Init 初始化日志管理器,日志写入 stderr,stdout 只保留结果输出
func Init(levelStr string, verbose bool) {
	InitWithWriter(os.Stderr, levelStr, verbose)
}

// InitWithWriter 使用指定的输出初始化日志管理器
func InitWithWriter(w io.Writer, levelStr string, verbose bool) {
	level := parseLogLevel(levelStr)

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05")
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		zapcore.DebugLevel, // 级别由 Logger 自行过滤
	)

	globalLogger = &Logger{
		level:   level,
		verbose: verbose,
		sugar:   zap.New(core).Sugar(),
	}

	Debug("📋 日志管理器已初始化 | level=%s verbose=%v", levelStr, verbose)
}

// Sync 刷新缓冲的日志
func Sync() {
	if globalLogger == nil {
		return
	}
	_ = globalLogger.sugar.Sync()
}

// parseLogLevel 解析日志级别字符串
func parseLogLevel(levelStr string) LogLevel {
	switch strings.ToLower(levelStr) {
	case "debug":
		return DEBUG
	case "info":
		return INFO
	case "warn", "warning":
		return WARN
	case "error":
		return ERROR
	default:
		return INFO
	}
}

// Debug 输出 DEBUG 级别日志
func Debug(format string, v ...interface{}) {
	if globalLogger == nil || globalLogger.level > DEBUG {
		return
	}
	globalLogger.sugar.Debugf(format, v...)
}

// Info 输出 INFO 级别日志
func Info(format string, v ...interface{}) {
	if globalLogger == nil || globalLogger.level > INFO {
		return
	}
	globalLogger.sugar.Infof(format, v...)
}

// Warn 输出 WARN 级别日志
func Warn(format string, v ...interface{}) {
	if globalLogger == nil || globalLogger.level > WARN {
		return
	}
	globalLogger.sugar.Warnf(format, v...)
}

// Error 输出 ERROR 级别日志
func Error(format string, v ...interface{}) {
	if globalLogger == nil || globalLogger.level > ERROR {
		return
	}
	globalLogger.sugar.Errorf(format, v...)
}

// Verbose 输出详细日志 (仅在 VERBOSE_LOGGING=true 时输出)
// 不受日志级别限制
func Verbose(format string, v ...interface{}) {
	if globalLogger == nil || !globalLogger.verbose {
		return
	}
	globalLogger.sugar.Infof(format, v...)
}

// IsVerbose 返回是否启用详细日志
func IsVerbose() bool {
	if globalLogger == nil {
		return false
	}
	return globalLogger.verbose
}

// ReqAdapter 适配 req.Logger 接口,避免 HTTP 客户端写入 stdout
type ReqAdapter struct{}

func (ReqAdapter) Errorf(format string, v ...interface{}) { Error(format, v...) }
func (ReqAdapter) Warnf(format string, v ...interface{})  { Warn(format, v...) }
func (ReqAdapter) Debugf(format string, v ...interface{}) { Debug(format, v...) }
