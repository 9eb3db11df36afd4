package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"infragen/internal/domain/repository"
	"infragen/internal/infrastructure/metrics"
)

// ErrMissingAPIKey is returned before any network I/O when no credential is
// configured.
var ErrMissingAPIKey = errors.New("gemini api key is not configured")

// ServiceError is a non-200 reply from the Gemini API.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("gemini api error: %d - %s", e.StatusCode, e.Message)
}

type GeminiGenerator struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewGeminiGenerator(apiKey, baseURL, model string) repository.Generator {
	return &GeminiGenerator{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{Timeout: 2 * time.Minute},
	}
}

func (g *GeminiGenerator) Name() string {
	return "gemini"
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		metrics.IncError("llm", "missing_api_key")
		return "", ErrMissingAPIKey
	}

	metrics.IncLLMRequest(g.model)

	request := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
	}

	response, err := g.makeRequest(ctx, request)
	if err != nil {
		metrics.IncError("llm", "make_request")
		return "", fmt.Errorf("failed to make Gemini request: %w", err)
	}

	text, err := g.parseResponse(response)
	if err != nil {
		metrics.IncError("llm", "parse_response")
		return "", fmt.Errorf("failed to parse Gemini response: %w", err)
	}

	return text, nil
}

func (g *GeminiGenerator) makeRequest(ctx context.Context, request map[string]interface{}) (map[string]interface{}, error) {
	jsonData, err := json.Marshal(request)
	if err != nil {
		metrics.IncError("llm", "marshal_request")
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		metrics.IncError("llm", "create_request")
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		metrics.IncError("llm", "http_do")
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer func() {
		err := resp.Body.Close()
		if err != nil {
			log.Printf("close body err: %s", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		metrics.IncError("llm", fmt.Sprintf("api_error_%d", resp.StatusCode))
		return nil, &ServiceError{StatusCode: resp.StatusCode, Message: apiErrorMessage(body)}
	}

	var response map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		metrics.IncError("llm", "decode_response")
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return response, nil
}

func (g *GeminiGenerator) parseResponse(response map[string]interface{}) (string, error) {
	candidates, ok := response["candidates"].([]interface{})
	if !ok || len(candidates) == 0 {
		return "", fmt.Errorf("invalid response format: no candidates")
	}

	candidate, ok := candidates[0].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("invalid response format: invalid candidate")
	}

	content, ok := candidate["content"].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("invalid response format: no content")
	}

	parts, ok := content["parts"].([]interface{})
	if !ok || len(parts) == 0 {
		return "", fmt.Errorf("invalid response format: no parts")
	}

	var sb strings.Builder
	for _, p := range parts {
		part, ok := p.(map[string]interface{})
		if !ok {
			continue
		}
		if text, ok := part["text"].(string); ok {
			sb.WriteString(text)
		}
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("invalid response format: no text parts")
	}

	return sb.String(), nil
}

// apiErrorMessage pulls the human-readable message out of a Gemini error
// body, falling back to the raw body.
func apiErrorMessage(body []byte) string {
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error.Message != "" {
		return payload.Error.Message
	}
	return string(body)
}
