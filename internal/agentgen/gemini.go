package agentgen

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
	genai "google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// GeminiConfig configures the Gemini backend. APIKey is required.
type GeminiConfig struct {
	APIKey string
	Model  string
	// BaseURL overrides the Gemini API endpoint (proxies, tests).
	BaseURL string
	Logger  *zap.Logger
}

// GeminiBackend implements Backend using the Google GenAI SDK.
type GeminiBackend struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// NewGeminiBackend creates a Gemini backend bound to one model and credential.
func NewGeminiBackend(ctx context.Context, cfg GeminiConfig) (*GeminiBackend, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, newError(KindConfiguration,
			"GEMINI_API_KEY (or API_KEY) environment variable is not set", nil)
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, newError(KindConfiguration, "failed to create Google GenAI client", err)
	}

	return &GeminiBackend{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// Model returns the configured model identifier.
func (b *GeminiBackend) Model() string {
	return b.model
}

// Invoke sends one generation request. No retry is attempted.
func (b *GeminiBackend) Invoke(ctx context.Context, payload *RequestPayload) (*ModelReply, error) {
	temperature := payload.Sampling.Temperature
	topP := payload.Sampling.TopP
	topK := payload.Sampling.TopK

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(payload.SystemInstruction, genai.RoleUser),
		Temperature:       &temperature,
		TopP:              &topP,
		TopK:              &topK,
	}
	contents := []*genai.Content{
		genai.NewContentFromText(payload.UserMessage, genai.RoleUser),
	}

	resp, err := b.client.Models.GenerateContent(ctx, b.model, contents, cfg)
	if err != nil {
		b.logger.Error("gemini generate content failed",
			zap.String("model", b.model),
			zap.Error(err),
		)
		return nil, classifyBackendError(err)
	}

	return &ModelReply{Text: replyText(resp)}, nil
}

// Ping fetches model metadata to check credential and connectivity.
func (b *GeminiBackend) Ping(ctx context.Context) error {
	if _, err := b.client.Models.Get(ctx, b.model, nil); err != nil {
		return classifyBackendError(err)
	}
	return nil
}

func replyText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	return sb.String()
}

// classifyBackendError maps SDK and transport failures onto Kinds.
func classifyBackendError(err error) error {
	if isAuthFailure(err) {
		return newError(KindAuthentication,
			"invalid API key; please check your Gemini API key configuration", err)
	}
	return newError(KindTransport, "an error occurred while communicating with the AI", err)
}

func isAuthFailure(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return isAuthAPIError(apiErr)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return isAuthAPIError(*apiErrPtr)
	}
	return strings.Contains(err.Error(), "API_KEY_INVALID")
}

func isAuthAPIError(e genai.APIError) bool {
	switch e.Code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return true
	}
	switch e.Status {
	case "UNAUTHENTICATED", "PERMISSION_DENIED":
		return true
	}
	return strings.Contains(e.Message, "API_KEY_INVALID") ||
		strings.Contains(fmt.Sprint(e.Details), "API_KEY_INVALID")
}
