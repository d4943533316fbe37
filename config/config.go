package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port          string        `mapstructure:"port"`
	Provider      string        `mapstructure:"provider"`
	AIEndpoint    string        `mapstructure:"ai_endpoint"`
	Model         string        `mapstructure:"model"`
	OpenAIAPIKey  string        `mapstructure:"OPENAI_API_KEY"`
	GeminiAPIKey  string        `mapstructure:"GEMINI_API_KEY"`
	UploadDir     string        `mapstructure:"upload_dir"`
	AnswerTimeout time.Duration `mapstructure:"answer_timeout"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set up Viper to read from config file
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Set up Viper to read from environment variables
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("provider", "openai")
	v.SetDefault("upload_dir", "uploads")
	v.SetDefault("answer_timeout", "60s")

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Bind environment variables
	v.BindEnv("OPENAI_API_KEY")
	v.BindEnv("GEMINI_API_KEY")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}
