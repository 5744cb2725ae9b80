package core

import (
	"context"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"logisticsfuture.com/chatbot-service/internal/store"
)

const (
	remoteTimeout     = 15 * time.Second
	remoteMaxTokens   = 256
	remoteTemperature = 0.7

	// minPlausibleKeyLen rejects placeholder credentials before any
	// request is made.
	minPlausibleKeyLen = 20
)

// CompletionClient is the slice of the OpenAI client the remote tier
// needs; *openai.Client satisfies it.
type CompletionClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// RemoteTier answers general questions through an OpenAI-chat-style
// completion endpoint. It does not apply when the configured
// credential is missing or implausible, and any request failure,
// timeout or empty completion makes it step aside for the FAQ tier
// instead of surfacing an error.
type RemoteTier struct {
	client  CompletionClient
	apiKey  string
	model   string
	botName string
	siteURL string
	timeout time.Duration
	logger  *zap.Logger
}

func NewRemoteTier(client CompletionClient, apiKey, model, botName, siteURL string, logger *zap.Logger) *RemoteTier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RemoteTier{
		client:  client,
		apiKey:  apiKey,
		model:   model,
		botName: botName,
		siteURL: siteURL,
		timeout: remoteTimeout,
		logger:  logger,
	}
}

func (t *RemoteTier) Name() string { return "remote" }

func (t *RemoteTier) TryResolve(ctx context.Context, q Query) (string, bool) {
	if !t.credentialPlausible() {
		t.logger.Debug("remote tier skipped: no plausible API credential")
		return "", false
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       t.model,
		Messages:    t.buildMessages(q),
		MaxTokens:   remoteMaxTokens,
		Temperature: remoteTemperature,
	})
	if err != nil {
		t.logger.Warn("remote completion failed", zap.Error(err))
		return "", false
	}
	if len(resp.Choices) == 0 {
		t.logger.Warn("remote completion returned no choices")
		return "", false
	}

	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	if reply == "" {
		t.logger.Warn("remote completion returned empty content")
		return "", false
	}
	return reply, true
}

func (t *RemoteTier) credentialPlausible() bool {
	return len(strings.TrimSpace(t.apiKey)) >= minPlausibleKeyLen
}

// buildMessages composes [system, ...history, user], mapping the
// frontend's "bot" role to the API's "assistant".
func (t *RemoteTier) buildMessages(q Query) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, len(q.History)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt(t.botName, q.Company, t.siteURL),
	})
	for _, m := range q.History {
		role := openai.ChatMessageRoleUser
		if m.Role == store.RoleBot {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}
	return append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: q.Message,
	})
}
