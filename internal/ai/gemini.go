package ai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/sportlog/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

const (
	PlaceholderAPIKey = "PLACEHOLDER_API_KEY"

	defaultMaxRetries  = 2
	defaultBaseBackoff = 300 * time.Millisecond
	// requests per second towards the provider, shared by all endpoints
	defaultRateLimit = 5
	defaultBurst     = 5
)

var ErrNotConfigured = errors.New("generative ai provider not configured")

// Schema is the subset of the OpenAPI schema object understood by generateContent.
type Schema struct {
	Type       string
	Properties map[string]Schema
	Required   []string
}

func (s Schema) toGenai() *genai.Schema {
	out := &genai.Schema{
		Type:     genai.Type(s.Type),
		Required: s.Required,
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = prop.toGenai()
		}
	}
	return out
}

type GeminiClientParams struct {
	BaseURL    string
	Model      string
	APIKey     string
	HttpClient *http.Client
	MaxRetries int
}

// GeminiClient calls Gemini generateContent through the genai SDK, adding a shared
// rate limit and retries on 429 and 5xx answers.
type GeminiClient struct {
	client     *genai.Client
	model      string
	apiKey     string
	limiter    *rate.Limiter
	maxRetries int
	backoff    time.Duration
}

// NewGeminiClient builds the client. Without a usable API key no SDK client is created
// and every call fails with ErrNotConfigured.
func NewGeminiClient(ctx context.Context, params GeminiClientParams) (*GeminiClient, error) {
	maxRetries := params.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	c := &GeminiClient{
		model:      params.Model,
		apiKey:     params.APIKey,
		limiter:    rate.NewLimiter(rate.Limit(defaultRateLimit), defaultBurst),
		maxRetries: maxRetries,
		backoff:    defaultBaseBackoff,
	}
	if !c.Configured() {
		return c, nil
	}

	clientConfig := &genai.ClientConfig{
		APIKey:     params.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: params.HttpClient,
	}
	if params.BaseURL != "" {
		clientConfig.HTTPOptions.BaseURL = strings.TrimRight(params.BaseURL, "/") + "/"
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	c.client = client

	return c, nil
}

// Configured reports whether a usable API key is set.
func (c *GeminiClient) Configured() bool {
	return c.apiKey != "" && c.apiKey != PlaceholderAPIKey
}

// GenerateJSON asks for a JSON answer constrained by schema and returns the raw JSON text.
func (c *GeminiClient) GenerateJSON(ctx context.Context, prompt string, schema Schema) (string, error) {
	return c.generate(ctx, prompt, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema.toGenai(),
	})
}

// GenerateText asks for a free text answer.
func (c *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, prompt, nil)
}

func (c *GeminiClient) generate(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "ai.gemini.generate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("ai.model", c.model))

	if !c.Configured() || c.client == nil {
		return "", ErrNotConfigured
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := c.backoff * time.Duration(1<<(attempt-1))
			timer := time.NewTimer(backoff)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return "", ctx.Err()
			}
		}

		text, err := c.generateOnce(ctx, prompt, config)
		if err == nil {
			span.SetAttributes(attribute.Int("ai.attempts", attempt+1))
			return text, nil
		}

		lastErr = err
		var re *retryableError
		if !errors.As(err, &re) {
			return "", err
		}
	}

	return "", fmt.Errorf("max retries exceeded: %w", lastErr)
}

func (c *GeminiClient) generateOnce(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
	if err == nil {
		return responseText(resp), nil
	}

	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusTooManyRequests:
			return "", &retryableError{err: errors.New("rate limited (429)")}
		case apiErr.Code >= 500:
			return "", &retryableError{err: fmt.Errorf("server error (%d): %s", apiErr.Code, apiErr.Message)}
		default:
			return "", fmt.Errorf("api error (%d): %s", apiErr.Code, apiErr.Message)
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return "", &retryableError{err: fmt.Errorf("request failed: %w", err)}
	}

	return "", fmt.Errorf("generate content: %w", err)
}

// responseText joins the text parts of the first candidate; empty when there is none.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, p := range candidate.Content.Parts {
		if p != nil {
			sb.WriteString(p.Text)
		}
	}
	return sb.String()
}

type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return e.err.Error()
}

func (e *retryableError) Unwrap() error {
	return e.err
}
