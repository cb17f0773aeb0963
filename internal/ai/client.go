package ai

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/youruser/jashn/internal/config"
)

// ErrNoCredentials is reported when no upstream API key is configured.
var ErrNoCredentials = errors.New("API key not configured")

// ChatCompleter is the slice of the go-openai client the service needs.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// headerTransport stamps the attribution headers OpenRouter asks for.
type headerTransport struct {
	base    http.RoundTripper
	headers map[string]string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	for k, v := range t.headers {
		if v != "" {
			r.Header.Set(k, v)
		}
	}
	return t.base.RoundTrip(r)
}

// NewClient builds an OpenAI-compatible client pointed at OpenRouter.
func NewClient(cfg config.OpenRouterConfig) *openai.Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	clientConfig.HTTPClient = &http.Client{
		Timeout: cfg.Timeout,
		Transport: &headerTransport{
			base: http.DefaultTransport,
			headers: map[string]string{
				"HTTP-Referer": cfg.Referer,
				"X-Title":      cfg.Title,
			},
		},
	}
	return openai.NewClientWithConfig(clientConfig)
}

// Service generates palettes and greeting quotes. Every operation degrades
// to a fixed fallback; a nil client means no credentials.
type Service struct {
	client ChatCompleter
	model  string

	pick func(n int) int
	now  func() time.Time
}

// NewService wires the OpenRouter client when an API key is present.
func NewService(cfg config.OpenRouterConfig) *Service {
	var client ChatCompleter
	if cfg.APIKey != "" {
		client = NewClient(cfg)
	}
	return NewServiceWithClient(client, cfg.Model)
}

// NewServiceWithClient uses the given completer; nil disables upstream calls.
func NewServiceWithClient(client ChatCompleter, model string) *Service {
	return &Service{
		client: client,
		model:  model,
		pick:   rand.IntN,
		now:    time.Now,
	}
}

// HasCredentials reports whether upstream calls are possible.
func (s *Service) HasCredentials() bool {
	return s.client != nil
}

func (s *Service) complete(ctx context.Context, prompt string, temperature float32, maxTokens int) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", upstreamError(err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// UpstreamError carries the HTTP status of a failed completion, 0 if the
// request never got a response.
type UpstreamError struct {
	Status int
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("API returned %d", e.Status)
	}
	return fmt.Sprintf("upstream: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func upstreamError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &UpstreamError{Status: apiErr.HTTPStatusCode, Err: err}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &UpstreamError{Status: reqErr.HTTPStatusCode, Err: err}
	}
	return &UpstreamError{Err: err}
}
