package config

import "time"

type Config struct {
	Server  HTTPServerConfig `json:"server"`
	LLM     LLMConfig        `json:"llm"`
	Metrics MetricsConfig
}

type HTTPServerConfig struct {
	Host         string        `json:"host" default:"0.0.0.0"`
	Port         int           `json:"port" default:"8080"`
	ReadTimeout  time.Duration `json:"read_timeout" default:"120s"`
	WriteTimeout time.Duration `json:"write_timeout" default:"120s"`
}

type LLMConfig struct {
	APIKey  string        `json:"api_key" required:"true"`
	BaseURL string        `json:"base_url" default:"https://generativelanguage.googleapis.com"`
	Model   string        `json:"model" default:"gemini-1.5-pro"`
	Timeout time.Duration `json:"timeout" default:"120s"`
}

type MetricsConfig struct {
	Addr string `json:"addr" default:":2112"`
}
