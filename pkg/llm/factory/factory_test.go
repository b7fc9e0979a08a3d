package factory

import (
	"testing"
	"time"

	"bulletin-board-be/pkg/llm/ollama"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLLMProvider(t *testing.T) {
	tests := []struct {
		name         string
		providerType string
		model        string
		baseURL      string
		wantErr      bool
		wantBaseURL  string
	}{
		{name: "ollama with explicit url", providerType: "ollama", model: "mistral", baseURL: "http://llm:11434", wantBaseURL: "http://llm:11434"},
		{name: "ollama default url", providerType: "ollama", model: "mistral", wantBaseURL: defaultOllamaBaseURL},
		{name: "ollama without model", providerType: "ollama", wantErr: true},
		{name: "unknown provider", providerType: "openai", model: "gpt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewLLMProvider(tt.providerType, tt.model, tt.baseURL, time.Minute)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)

			op, ok := p.(*ollama.OllamaProvider)
			require.True(t, ok)
			assert.Equal(t, tt.wantBaseURL, op.BaseURL)
			assert.Equal(t, tt.model, op.ModelName)
			assert.Equal(t, time.Minute, op.Client.Timeout)
		})
	}
}
