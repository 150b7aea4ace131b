// Package config 从环境变量读取命令行工具的运行配置。
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config 运行配置
type Config struct {
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`
	// 为 true 时日志中的密钥材料不做掩码，仅用于调试
	LogSecrets bool `envconfig:"LOG_SECRETS" default:"false"`
}

// Load 读取 MILENAGE_ 前缀的环境变量
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("milenage", &cfg); err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}
	return &cfg, nil
}
