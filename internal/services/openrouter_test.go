package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRouterService_GenerateText(t *testing.T) {
	var received map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"score\": 90}"}}]}`))
	}))
	defer server.Close()

	svc := NewOpenRouterService(server.URL+"/", "test-key", "openai/gpt-4o-mini")
	text, err := svc.GenerateText(context.Background(), "hello")

	require.NoError(t, err)
	assert.Equal(t, `{"score": 90}`, text)
	assert.Equal(t, "openai/gpt-4o-mini", received["model"])

	messages, ok := received["messages"].([]interface{})
	require.True(t, ok)
	require.Len(t, messages, 1)
	assert.Equal(t, "hello", messages[0].(map[string]interface{})["content"])
}

func TestOpenRouterService_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"No auth credentials found","code":401}}`))
	}))
	defer server.Close()

	_, err := NewOpenRouterService(server.URL, "bad", "m").GenerateText(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No auth credentials found")
}

func TestOpenRouterService_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	_, err := NewOpenRouterService(server.URL, "key", "m").GenerateText(context.Background(), "hello")
	assert.Error(t, err)
}
