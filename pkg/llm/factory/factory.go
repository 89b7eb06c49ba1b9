package factory

import (
	"fmt"
	"time"

	"ecomia-be/pkg/llm"
	"ecomia-be/pkg/llm/groq"
	"ecomia-be/pkg/llm/ollama"
)

// NewLLMProvider selects the LLM backend from config.
func NewLLMProvider(provider, model, ollamaBaseURL, groqAPIKey string, timeout time.Duration) (llm.LLMProvider, error) {
	switch provider {
	case "groq":
		if groqAPIKey == "" {
			return nil, fmt.Errorf("GROQ_API_KEY is required for the groq provider")
		}
		return groq.NewGroqProvider(groqAPIKey, model, timeout), nil
	case "ollama":
		return ollama.NewOllamaProvider(ollamaBaseURL, model), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", provider)
	}
}
