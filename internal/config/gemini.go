package config

import (
	"os"
	"sync"
)

type GeminiConfig struct {
	APIKey string
}

var (
	geminiConfig *GeminiConfig
	geminiOnce   sync.Once
)

func LoadGeminiConfig() *GeminiConfig {
	geminiOnce.Do(func() {
		key := os.Getenv("GEMINI_API_KEY")
		if key == "" {
			// the genai SDK recognizes either name
			key = os.Getenv("GOOGLE_API_KEY")
		}
		geminiConfig = &GeminiConfig{
			APIKey: key,
		}
	})
	return geminiConfig
}
