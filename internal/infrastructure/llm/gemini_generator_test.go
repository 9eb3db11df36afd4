package llm_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"infragen/internal/infrastructure/llm"
)

func TestGeminiGenerate(t *testing.T) {
	var gotPath, gotKey string
	var gotBody []byte

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		gotBody, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"candidates":[{"content":{"parts":[{"text":"FROM golang:1.24\n"}]}}]}`)
	}))
	defer ts.Close()

	g := llm.NewGeminiGenerator("test-key", ts.URL, "gemini-1.5-pro")

	out, err := g.Generate(context.Background(), "build a container")
	require.NoError(t, err)
	assert.Equal(t, "FROM golang:1.24\n", out)
	assert.Equal(t, "/v1beta/models/gemini-1.5-pro:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Contains(t, string(gotBody), "build a container")
}

func TestGeminiGenerateJoinsParts(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"candidates":[{"content":{"parts":[{"text":"resource "},{"text":"\"aws_vpc\" \"main\" {}"}]}}]}`)
	}))
	defer ts.Close()

	g := llm.NewGeminiGenerator("test-key", ts.URL, "gemini-1.5-pro")

	out, err := g.Generate(context.Background(), "a vpc")
	require.NoError(t, err)
	assert.Equal(t, `resource "aws_vpc" "main" {}`, out)
}

func TestGeminiMissingAPIKey(t *testing.T) {
	var called bool
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer ts.Close()

	g := llm.NewGeminiGenerator("", ts.URL, "gemini-1.5-pro")

	_, err := g.Generate(context.Background(), "anything")
	assert.ErrorIs(t, err, llm.ErrMissingAPIKey)
	assert.False(t, called, "no request may be issued without a credential")
}

func TestGeminiServiceError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`)
	}))
	defer ts.Close()

	g := llm.NewGeminiGenerator("test-key", ts.URL, "gemini-1.5-pro")

	_, err := g.Generate(context.Background(), "anything")
	require.Error(t, err)

	var svcErr *llm.ServiceError
	require.True(t, errors.As(err, &svcErr))
	assert.Equal(t, http.StatusTooManyRequests, svcErr.StatusCode)
	assert.Equal(t, "quota exceeded", svcErr.Message)
}

func TestGeminiServiceErrorPlainBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, "upstream unavailable")
	}))
	defer ts.Close()

	g := llm.NewGeminiGenerator("test-key", ts.URL, "gemini-1.5-pro")

	_, err := g.Generate(context.Background(), "anything")
	var svcErr *llm.ServiceError
	require.True(t, errors.As(err, &svcErr))
	assert.Equal(t, "upstream unavailable", svcErr.Message)
}

func TestGeminiMalformedResponse(t *testing.T) {
	cases := map[string]string{
		"no candidates": `{"candidates":[]}`,
		"no content":    `{"candidates":[{}]}`,
		"no parts":      `{"candidates":[{"content":{"parts":[]}}]}`,
		"no text":       `{"candidates":[{"content":{"parts":[{"inline_data":{}}]}}]}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, body)
			}))
			defer ts.Close()

			g := llm.NewGeminiGenerator("test-key", ts.URL, "gemini-1.5-pro")

			_, err := g.Generate(context.Background(), "anything")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid response format")
		})
	}
}
