// Package llm wraps the Anthropic Messages API behind the small completion
// interface the Brain needs: one-shot, JSON-shaped where requested, with
// bounded retry on transient failures.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/cenkalti/backoff/v4"
)

// ModelClass selects between the configured models.
type ModelClass string

// Model classes. Understanding uses Primary; ambient rewrites use Fast.
const (
	ModelPrimary ModelClass = "primary"
	ModelFast    ModelClass = "fast"
)

// Message is one conversation message.
type Message struct {
	Role    string // "user" or "assistant"
	Content string
}

// Request is a single completion request.
type Request struct {
	System      string
	Messages    []Message
	Class       ModelClass
	MaxTokens   int
	Temperature float64
	JSONOnly    bool // Instructs the model to emit a bare JSON object
}

// Response is the completion result.
type Response struct {
	Text      string
	TokensIn  int
	TokensOut int
	ModelID   string
}

// Client is the completion contract the Brain depends on.
type Client interface {
	Complete(ctx context.Context, req *Request) (*Response, error)
}

// messagesAPI is the subset of the SDK used here; satisfied by
// *sdk.MessageService and by test fakes.
type messagesAPI interface {
	New(ctx context.Context, body sdk.MessageNewParams, opts ...option.RequestOption) (*sdk.Message, error)
}

// Config holds client construction settings.
type Config struct {
	PrimaryModel string
	FastModel    string
	MaxTokens    int
	Temperature  float64
	Timeout      time.Duration
}

// AnthropicClient implements Client on the Anthropic Messages API.
type AnthropicClient struct {
	msg messagesAPI
	cfg Config
}

// NewAnthropicClient builds a client from an API key.
func NewAnthropicClient(apiKey string, cfg Config) (*AnthropicClient, error) {
	if apiKey == "" {
		return nil, errors.New("llm: api key is required")
	}
	if cfg.PrimaryModel == "" || cfg.FastModel == "" {
		return nil, errors.New("llm: primary and fast model ids are required")
	}
	ac := sdk.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicClient{msg: &ac.Messages, cfg: cfg}, nil
}

// NewAnthropicClientWithAPI wires a pre-built messages API (tests).
func NewAnthropicClientWithAPI(msg messagesAPI, cfg Config) *AnthropicClient {
	return &AnthropicClient{msg: msg, cfg: cfg}
}

// Complete issues the request with up to three attempts on transient errors
// (exponential backoff, ±50% jitter). Permanent API errors return
// immediately.
func (c *AnthropicClient) Complete(ctx context.Context, req *Request) (*Response, error) {
	params, err := c.buildParams(req)
	if err != nil {
		return nil, err
	}

	timeout := c.cfg.Timeout
	if timeout == 0 {
		timeout = 25 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	policy := backoff.WithContext(backoff.WithMaxRetries(&backoff.ExponentialBackOff{
		InitialInterval:     500 * time.Millisecond,
		RandomizationFactor: 0.5,
		Multiplier:          2,
		MaxInterval:         5 * time.Second,
		MaxElapsedTime:      timeout,
		Clock:               backoff.SystemClock,
		Stop:                backoff.Stop,
	}, 2), ctx)

	var msg *sdk.Message
	operation := func() error {
		var callErr error
		msg, callErr = c.msg.New(ctx, *params)
		if callErr == nil {
			return nil
		}
		if isTransient(callErr) {
			return callErr
		}
		return backoff.Permanent(callErr)
	}
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, fmt.Errorf("llm completion failed: %w", err)
	}

	return translate(msg, req.JSONOnly)
}

func (c *AnthropicClient) buildParams(req *Request) (*sdk.MessageNewParams, error) {
	if len(req.Messages) == 0 {
		return nil, errors.New("llm: messages are required")
	}

	model := c.cfg.PrimaryModel
	if req.Class == ModelFast {
		model = c.cfg.FastModel
	}
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.cfg.MaxTokens
	}
	temperature := req.Temperature
	if temperature == 0 {
		temperature = c.cfg.Temperature
	}

	msgs := make([]sdk.MessageParam, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case "assistant":
			msgs = append(msgs, sdk.NewAssistantMessage(sdk.NewTextBlock(m.Content)))
		default:
			msgs = append(msgs, sdk.NewUserMessage(sdk.NewTextBlock(m.Content)))
		}
	}

	system := req.System
	if req.JSONOnly {
		system = strings.TrimSpace(system + "\nRespond with a single JSON object and nothing else.")
	}

	params := &sdk.MessageNewParams{
		Model:       sdk.Model(model),
		MaxTokens:   int64(maxTokens),
		Messages:    msgs,
		Temperature: sdk.Float(temperature),
	}
	if system != "" {
		params.System = []sdk.TextBlockParam{{Text: system}}
	}
	return params, nil
}

func translate(msg *sdk.Message, jsonOnly bool) (*Response, error) {
	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	text := strings.TrimSpace(sb.String())
	if jsonOnly {
		text = extractJSON(text)
	}
	return &Response{
		Text:      text,
		TokensIn:  int(msg.Usage.InputTokens),
		TokensOut: int(msg.Usage.OutputTokens),
		ModelID:   string(msg.Model),
	}, nil
}

// extractJSON strips code fences and surrounding prose, keeping the
// outermost JSON object. Models occasionally wrap JSON despite instructions.
func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return text[start : end+1]
	}
	return text
}

func isTransient(err error) bool {
	var apiErr *sdk.Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 429 || apiErr.StatusCode >= 500
	}
	// Network-level failures are retryable
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}
