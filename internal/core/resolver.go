package core

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"logisticsfuture.com/chatbot-service/internal/store"
)

// ErrEmptyMessage is returned when the message is empty after
// trimming. It is the only error Resolve can return; everything else
// is recovered into a reply string.
var ErrEmptyMessage = errors.New("message is empty")

// unavailableMessage is the terminal reply when every tier fails.
const unavailableMessage = "Sorry, the AI service is temporarily unavailable. Please try again later or contact support."

// Query is one resolution request. History is the prior transcript in
// insertion order; Company is the display name used in templated
// replies and the system prompt.
type Query struct {
	Message string
	History []store.Message
	Company string
}

// Tier is one resolution strategy in the fallback chain. TryResolve
// reports false when the tier does not apply to the query or failed
// internally; tiers must not panic or block beyond their own bounded
// timeouts.
type Tier interface {
	Name() string
	TryResolve(ctx context.Context, q Query) (string, bool)
}

// Resolver drives the ordered tier chain: discovery, then the remote
// model, then the local FAQ. It holds no mutable state and performs
// no side effects; callers own cache and history updates.
type Resolver struct {
	tiers  []Tier
	logger *zap.Logger
}

func NewResolver(tiers []Tier, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{tiers: tiers, logger: logger}
}

// Resolve produces a reply for message. The first applicable tier
// wins; if no tier resolves (possible only with a misconfigured
// chain), a fixed unavailable message is returned rather than an
// error.
func (r *Resolver) Resolve(ctx context.Context, message string, history []store.Message, company string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyMessage
	}

	q := Query{Message: message, History: history, Company: company}
	for _, tier := range r.tiers {
		reply, ok := tier.TryResolve(ctx, q)
		if !ok {
			continue
		}
		r.logger.Debug("query resolved", zap.String("tier", tier.Name()))
		return reply, nil
	}

	r.logger.Warn("no tier resolved the query")
	return unavailableMessage, nil
}
