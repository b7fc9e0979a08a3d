package ollama

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bulletin-board-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSendsNonStreamingPrompt(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"model":"mistral","response":" - one\n- two ","done":true}`))
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL+"/", "mistral", 5*time.Second)
	out, err := p.Generate(context.Background(), "make a list")
	require.NoError(t, err)

	// Trimming is the caller's job.
	assert.Equal(t, " - one\n- two ", out)
	assert.Equal(t, "mistral", got["model"])
	assert.Equal(t, "make a list", got["prompt"])
	assert.Equal(t, false, got["stream"])
	_, hasOptions := got["options"]
	assert.False(t, hasOptions)
}

func TestGenerateHonoursModelOverrideAndOptions(t *testing.T) {
	var got ollamaGenerateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"response":"ok"}`))
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "mistral", 0)
	_, err := p.Generate(context.Background(), "p", llm.WithModel("llama3"), llm.WithTemperature(0.2), llm.WithMaxTokens(64))
	require.NoError(t, err)

	assert.Equal(t, "llama3", got.Model)
	require.NotNil(t, got.Options)
	assert.InDelta(t, 0.2, got.Options.Temperature, 1e-9)
	assert.Equal(t, 64, got.Options.NumPredict)
}

func TestGenerateReportsNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "missing", time.Second)
	_, err := p.Generate(context.Background(), "p")
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "model not found")
}

func TestGenerateReportsMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "mistral", time.Second)
	_, err := p.Generate(context.Background(), "p")
	assert.ErrorContains(t, err, "unmarshal response")
}

func TestGenerateReportsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	p := NewOllamaProvider(url, "mistral", time.Second)
	_, err := p.Generate(context.Background(), "p")
	assert.ErrorContains(t, err, "ollama request failed")
}
