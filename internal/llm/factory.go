package llm

import (
	"fmt"
	"sort"
	"strings"
)

// Provider names accepted in the [llm] config section.
const (
	ProviderCopilot  = "copilot"
	ProviderOllama   = "ollama"
	ProviderLMStudio = "lmstudio"
)

const (
	defaultOllamaBaseURL   = "http://localhost:11434"
	defaultLMStudioBaseURL = "http://localhost:1234/v1"
)

var constructors = map[string]func(model, baseURL string) (Client, error){
	ProviderCopilot: func(model, _ string) (Client, error) {
		return NewCopilotClient(model)
	},
	ProviderOllama: func(model, baseURL string) (Client, error) {
		return NewOllamaClient(model, baseURL)
	},
	ProviderLMStudio: func(model, baseURL string) (Client, error) {
		return NewLMStudioClient(model, baseURL)
	},
}

var providerAliases = map[string]string{
	"":          ProviderCopilot,
	"lm-studio": ProviderLMStudio,
	"llmstudio": ProviderLMStudio,
}

// NormalizeProvider maps a configured provider name to its canonical form.
func NormalizeProvider(provider string) string {
	p := strings.ToLower(strings.TrimSpace(provider))
	if canonical, ok := providerAliases[p]; ok {
		return canonical
	}
	return p
}

// Providers lists the canonical provider names.
func Providers() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewClient creates the client for a configured provider.
func NewClient(provider, model, baseURL string) (Client, error) {
	build, ok := constructors[NormalizeProvider(provider)]
	if !ok {
		return nil, fmt.Errorf("unsupported LLM provider %q (available: %s)", provider, strings.Join(Providers(), ", "))
	}
	return build(model, baseURL)
}
