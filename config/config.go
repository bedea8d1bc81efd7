package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultModelsURL OpenRouter 模型列表接口
const DefaultModelsURL = "https://openrouter.ai/api/v1/models"

// Config 应用配置
type Config struct {
	Upstream UpstreamConfig
	Logger   LoggerConfig
}

// UpstreamConfig 上游接口配置
type UpstreamConfig struct {
	ModelsURL   string
	Timeout     time.Duration // 0 表示使用 HTTP 客户端默认超时
	RetryCount  int           // 0 表示只请求一次
	Impersonate bool          // 模拟 Chrome 请求头与 TLS 指纹
}

// LoggerConfig 日志配置
type LoggerConfig struct {
	Level   string // 日志级别: debug, info, warn, error
	Verbose bool   // 是否启用详细日志
}

// Load 加载配置
func Load() *Config {
	return &Config{
		Upstream: UpstreamConfig{
			ModelsURL:   getEnv("MODELS_URL", DefaultModelsURL),
			Timeout:     getDurationEnv("REQUEST_TIMEOUT", 0),
			RetryCount:  getIntEnv("RETRY_COUNT", 0),
			Impersonate: getBoolEnv("IMPERSONATE_BROWSER", false),
		},
		Logger: LoggerConfig{
			Level:   getEnv("LOG_LEVEL", "warn"),
			Verbose: getBoolEnv("VERBOSE_LOGGING", false),
		},
	}
}

// getEnv 获取环境变量
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv 获取时长类型的环境变量(支持秒为单位)
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		// 尝试解析为秒数
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
		// 尝试解析为 Go duration 格式 (如 "25s", "10m", "1h")
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getIntEnv 获取整数类型的环境变量,负数视为无效
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && n >= 0 {
			return n
		}
	}
	return defaultValue
}

// getBoolEnv 获取布尔类型的环境变量
func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		value = strings.ToLower(strings.TrimSpace(value))
		return value == "true" || value == "1" || value == "yes" || value == "on"
	}
	return defaultValue
}
