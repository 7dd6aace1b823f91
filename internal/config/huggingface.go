package config

import (
	"os"
	"sync"
)

type HuggingFaceConfig struct {
	Token   string
	BaseURL string
}

var (
	huggingFaceConfig *HuggingFaceConfig
	huggingFaceOnce   sync.Once
)

func LoadHuggingFaceConfig() *HuggingFaceConfig {
	huggingFaceOnce.Do(func() {
		baseURL := os.Getenv("HF_INFERENCE_URL")
		if baseURL == "" {
			baseURL = "https://api-inference.huggingface.co/models"
		}
		huggingFaceConfig = &HuggingFaceConfig{
			Token:   os.Getenv("HUGGINGFACE_TOKEN"),
			BaseURL: baseURL,
		}
	})
	return huggingFaceConfig
}
