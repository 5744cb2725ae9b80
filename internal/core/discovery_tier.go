package core

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"logisticsfuture.com/chatbot-service/internal/discovery"
)

// DiscoveryTier answers messages that ask where something lives in
// the application itself. It applies only when the trigger classifier
// matches; once it applies it always produces a reply, so a discovery
// query never reaches the remote model or the FAQ.
type DiscoveryTier struct {
	classifier *TriggerClassifier
	agent      *discovery.Agent
	siteURL    string
	logger     *zap.Logger
}

func NewDiscoveryTier(agent *discovery.Agent, siteURL string, logger *zap.Logger) *DiscoveryTier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DiscoveryTier{
		classifier: NewTriggerClassifier(),
		agent:      agent,
		siteURL:    strings.TrimSuffix(siteURL, "/"),
		logger:     logger,
	}
}

func (t *DiscoveryTier) Name() string { return "discovery" }

func (t *DiscoveryTier) TryResolve(ctx context.Context, q Query) (string, bool) {
	text, ok := t.classifier.Extract(q.Message)
	if !ok {
		return "", false
	}

	result := t.agent.Find(text)
	t.logger.Debug("discovery lookup",
		zap.String("query", text),
		zap.String("type", string(result.Type)))

	switch result.Type {
	case discovery.ResultRoute:
		return t.renderRoute(result.Route), true
	case discovery.ResultComponent:
		return renderFiles("components", result.Files), true
	case discovery.ResultAPI:
		return renderFiles("API endpoints", result.Files), true
	default:
		return fmt.Sprintf("Sorry, I couldn't find anything on our site matching %q. Please try rephrasing or contact support.", text), true
	}
}

func (t *DiscoveryTier) renderRoute(route *discovery.AppRoute) string {
	var b strings.Builder
	fmt.Fprintf(&b, `You can find that page at <a href="%s%s">%s</a> (served from %s).`,
		t.siteURL, route.URL, route.URL, route.FilePath)
	if route.Dynamic {
		fmt.Fprintf(&b, " It takes the following parameters: %s.", strings.Join(route.Params, ", "))
	}
	return b.String()
}

func renderFiles(kind string, files []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here are the %s I found:\n", kind)
	for _, f := range files {
		fmt.Fprintf(&b, "- %s\n", f)
	}
	return strings.TrimRight(b.String(), "\n")
}
