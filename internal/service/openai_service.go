package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/careerforge/cover-letter-api/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const (
	// Structured-data requests are cheap and near-deterministic; synthesis
	// calls run longer, so they get a bigger window. A second window is
	// consumed when a tool round trip happens.
	structuredTimeout = 30 * time.Second
	generationTimeout = 45 * time.Second
)

type OpenAIServiceInterface interface {
	CompleteJSON(ctx context.Context, system, prompt string) (string, error)
	ChatWithTools(ctx context.Context, messages []any, tools []map[string]any) (*AssistantTurn, error)
	Chat(ctx context.Context, system, prompt string, temperature float32) (string, error)
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// ToolCall is a model-initiated request to run a named local function.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string
}

// AssistantTurn is one assistant reply: its text, any tool calls, and the
// raw message so it can be replayed into the conversation verbatim.
type AssistantTurn struct {
	Content   string
	ToolCalls []ToolCall
	Raw       json.RawMessage
}

type OpenAIService struct {
	cfg    *config.OpenAIConfig
	client *resty.Client
}

func NewOpenAIService(cfg *config.OpenAIConfig) (*OpenAIService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &OpenAIService{
		cfg:    cfg,
		client: resty.New(),
	}, nil
}

// CompleteJSON sends a single system+user exchange expected to come back as
// a JSON-shaped answer. Low temperature, hard 30s timeout, no retries.
func (s *OpenAIService) CompleteJSON(ctx context.Context, system, prompt string) (string, error) {
	payload := map[string]any{
		"model": s.cfg.Model,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": prompt},
		},
		"temperature": 0.1,
	}

	body, err := s.chatCompletion(ctx, payload, structuredTimeout)
	if err != nil {
		return "", err
	}

	content := gjson.Get(body, "choices.0.message.content").String()
	if content == "" {
		return "", errors.New("no response from model")
	}
	return content, nil
}

// ChatWithTools sends a full message list, optionally declaring callable
// tools with automatic selection, and returns the assistant turn as-is.
func (s *OpenAIService) ChatWithTools(ctx context.Context, messages []any, tools []map[string]any) (*AssistantTurn, error) {
	payload := map[string]any{
		"model":       s.cfg.Model,
		"messages":    messages,
		"temperature": 0.7,
	}
	if len(tools) > 0 {
		payload["tools"] = tools
		payload["tool_choice"] = "auto"
	}

	body, err := s.chatCompletion(ctx, payload, generationTimeout)
	if err != nil {
		return nil, err
	}

	rawMsg := gjson.Get(body, "choices.0.message")
	if !rawMsg.Exists() {
		return nil, errors.New("no response from model")
	}

	turn := &AssistantTurn{
		Content: rawMsg.Get("content").String(),
		Raw:     json.RawMessage(rawMsg.Raw),
	}
	for _, tc := range rawMsg.Get("tool_calls").Array() {
		turn.ToolCalls = append(turn.ToolCalls, ToolCall{
			ID:        tc.Get("id").String(),
			Name:      tc.Get("function.name").String(),
			Arguments: tc.Get("function.arguments").String(),
		})
	}
	return turn, nil
}

// Chat is a plain system+user completion used by the meeting-minutes flow.
func (s *OpenAIService) Chat(ctx context.Context, system, prompt string, temperature float32) (string, error) {
	payload := map[string]any{
		"model": s.cfg.Model,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": prompt},
		},
		"temperature": temperature,
	}

	body, err := s.chatCompletion(ctx, payload, generationTimeout)
	if err != nil {
		return "", err
	}

	content := gjson.Get(body, "choices.0.message.content").String()
	if content == "" {
		return "", errors.New("no response from model")
	}
	return content, nil
}

// Transcribe sends an audio file to the hosted speech-to-text endpoint and
// returns the plain-text transcript.
func (s *OpenAIService) Transcribe(ctx context.Context, audioPath string) (string, error) {
	reqCtx, cancel := context.WithTimeout(ctx, 2*generationTimeout)
	defer cancel()

	resp, err := s.client.R().
		SetContext(reqCtx).
		SetHeader("Authorization", "Bearer "+s.cfg.APIKey).
		SetFile("file", audioPath).
		SetFormData(map[string]string{
			"model":           "whisper-1",
			"response_format": "text",
		}).
		Post(s.cfg.BaseURL + "/audio/transcriptions")
	if err != nil {
		return "", fmt.Errorf("transcription request: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("transcription failed: %s", resp.String())
	}
	return resp.String(), nil
}

func (s *OpenAIService) chatCompletion(ctx context.Context, payload map[string]any, timeout time.Duration) (string, error) {
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := s.client.R().
		SetContext(reqCtx).
		SetHeader("Authorization", "Bearer "+s.cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(s.cfg.BaseURL + "/chat/completions")
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("model request timeout: %w", err)
		}
		return "", fmt.Errorf("model request: %w", err)
	}

	body := resp.String()
	if apiErr := gjson.Get(body, "error.message"); apiErr.Exists() {
		return "", fmt.Errorf("model error: %s (%s)", apiErr.String(), gjson.Get(body, "error.type").String())
	}
	if resp.IsError() {
		return "", fmt.Errorf("model request failed with status %d", resp.StatusCode())
	}
	return body, nil
}

var _ OpenAIServiceInterface = (*OpenAIService)(nil)
