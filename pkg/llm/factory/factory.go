package factory

import (
	"fmt"
	"time"

	"bulletin-board-be/pkg/llm"
	"bulletin-board-be/pkg/llm/ollama"
)

const defaultOllamaBaseURL = "http://localhost:11434"

func NewLLMProvider(providerType, modelName, baseURL string, timeout time.Duration) (llm.LLMProvider, error) {
	switch providerType {
	case "ollama":
		if baseURL == "" {
			baseURL = defaultOllamaBaseURL
		}
		if modelName == "" {
			return nil, fmt.Errorf("ollama provider requires a model name")
		}
		return ollama.NewOllamaProvider(baseURL, modelName, timeout), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
