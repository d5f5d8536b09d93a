package config

import (
	"fmt"
	"os"
	"sync"
)

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

var (
	openAIConfig *OpenAIConfig
	openAIOnce   sync.Once
)

func LoadOpenAIConfig() *OpenAIConfig {
	openAIOnce.Do(func() {
		model := os.Getenv("OPENAI_MODEL")
		if model == "" {
			model = "gpt-4o-mini"
		}
		baseURL := os.Getenv("OPENAI_BASE_URL")
		if baseURL == "" {
			baseURL = "https://api.openai.com/v1"
		}
		openAIConfig = &OpenAIConfig{
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			Model:   model,
			BaseURL: baseURL,
		}
	})
	return openAIConfig
}

// Validate reports a missing credential as a startup error. Absence of the
// key is fatal at boot, not a per-request failure.
func (c *OpenAIConfig) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY not found! Please check your .env file")
	}
	return nil
}
