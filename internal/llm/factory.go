// Package llm wires language model providers behind port.LLMClient.
// Providers register themselves by name; the router and services only
// ever see the interface.
package llm

import (
	"fmt"

	"sofdesk/internal/config"
	"sofdesk/internal/port"
)

// ProviderFactory is a function that creates an LLMClient from a provider config.
type ProviderFactory func(cfg *config.LLMProviderConfig) (port.LLMClient, error)

// registry of provider factories, populated explicitly via RegisterProvider.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewClient creates an LLMClient from a provider config using the registered factory.
func NewClient(cfg *config.LLMProviderConfig) (port.LLMClient, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
	return factory(cfg)
}
