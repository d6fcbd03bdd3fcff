package lab

import (
	"log"

	"github.com/caarlos0/env/v11"
)

// EnvConfig 从环境变量读取的实验室密钥
type EnvConfig struct {
	APIKey       string `env:"API_KEY"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
}

// LoadEnvConfig 读取环境变量，解析失败时返回空配置
func LoadEnvConfig() EnvConfig {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		log.Printf("[Lab] Warning: Failed to parse environment: %v", err)
		return EnvConfig{}
	}
	return cfg
}

// Key 返回可用的 API 密钥，API_KEY 优先
func (c EnvConfig) Key() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	return c.GeminiAPIKey
}
