package llm

import (
	"sofdesk/internal/config"
	"sofdesk/internal/llm/gemini"
	"sofdesk/internal/llm/openai"
	"sofdesk/internal/port"
)

func init() {
	RegisterProvider("gemini", func(cfg *config.LLMProviderConfig) (port.LLMClient, error) {
		return gemini.NewClient(cfg), nil
	})
	RegisterProvider("openai", func(cfg *config.LLMProviderConfig) (port.LLMClient, error) {
		return openai.NewClient(cfg)
	})
}
