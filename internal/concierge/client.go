// Package concierge talks to the Anthropic Messages API on behalf of the
// chat feature.
package concierge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/limbo/tabebui/pkg/entity"
)

const (
	DefaultModel     = "claude-3-5-haiku-latest"
	DefaultMaxTokens = 1024
)

// MessagesAPI is the part of the SDK client the concierge uses.
type MessagesAPI interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

type Config struct {
	APIKey    string
	Model     string
	MaxTokens int64
}

type Client struct {
	messages  MessagesAPI
	model     string
	maxTokens int64
	logger    *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	client := anthropic.NewClient(option.WithAPIKey(cfg.APIKey))
	return NewWithMessages(&client.Messages, cfg, logger)
}

func NewWithMessages(messages MessagesAPI, cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &Client{
		messages:  messages,
		model:     model,
		maxTokens: maxTokens,
		logger:    logger,
	}
}

// Reply sends the history plus the new message and returns the answer with
// the conversation extended by both turns.
func (c *Client) Reply(ctx context.Context, req entity.ChatRequest) (*entity.ChatReply, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, errors.New("empty message")
	}
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages:  toMessageParams(req.History, req.Message),
	}
	if req.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.SystemPrompt}}
	}
	msg, err := c.messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("llm api call: %w", err)
	}
	text := replyText(msg)
	if text == "" {
		return nil, errors.New("empty response from llm")
	}
	c.logger.Debug("concierge replied",
		slog.String("user_id", req.UserID.String()),
		slog.Int("history", len(req.History)),
	)
	history := make([]entity.ChatMessage, 0, len(req.History)+2)
	history = append(history, req.History...)
	history = append(history,
		entity.ChatMessage{Role: entity.RoleUser, Content: req.Message},
		entity.ChatMessage{Role: entity.RoleAssistant, Content: text},
	)
	return &entity.ChatReply{Reply: text, History: history}, nil
}

// toMessageParams converts the history, dropping empty turns, and appends
// the new user message.
func toMessageParams(history []entity.ChatMessage, message string) []anthropic.MessageParam {
	params := make([]anthropic.MessageParam, 0, len(history)+1)
	for _, m := range history {
		if strings.TrimSpace(m.Content) == "" {
			continue
		}
		switch m.Role {
		case entity.RoleAssistant:
			params = append(params, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		default:
			params = append(params, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		}
	}
	return append(params, anthropic.NewUserMessage(anthropic.NewTextBlock(message)))
}

func replyText(msg *anthropic.Message) string {
	if msg == nil {
		return ""
	}
	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return strings.TrimSpace(sb.String())
}
