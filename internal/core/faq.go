package core

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"logisticsfuture.com/chatbot-service/internal/store"
	"logisticsfuture.com/chatbot-service/internal/utils"
)

const (
	// faqSimilarityThreshold is the minimum cosine similarity for a
	// confident semantic match.
	faqSimilarityThreshold = 0.7

	// substringScore saturates the keyword scorer when the user's
	// message contains a FAQ question verbatim.
	substringScore = 100

	// minKeywordLen excludes short filler tokens from overlap scoring.
	minKeywordLen = 3

	couldNotProcessMessage = "Sorry, I couldn't process your request. Please try again later or contact support."
	couldNotFindMessage    = "Sorry, I couldn't find an answer for that. Please try rephrasing or contact support."
)

// FaqEntry is one question/answer pair of the static dataset. When
// Embedding is present on the first entry the whole dataset is
// treated as semantically embedded.
type FaqEntry struct {
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Embedding []float32 `json:"embedding,omitempty"`
}

// Embedder turns text into a fixed-length vector for semantic
// matching. May be nil, in which case semantic mode degrades to a
// fixed "couldn't process" reply.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// FaqService is the last resolution tier: it matches the user's
// message against a FAQ dataset loaded once at construction, by
// embedding cosine similarity when embeddings are present and by
// keyword overlap otherwise. GetResponse never fails; every internal
// problem collapses into a fixed user-facing message.
type FaqService struct {
	faqs     []FaqEntry
	embedder Embedder
	logger   *zap.Logger
}

// NewFaqService loads the dataset from dataDir, preferring the
// embedded variant. A missing or unreadable dataset leaves the
// service empty, which makes it answer with the unavailable message.
func NewFaqService(dataDir string, embedder Embedder, logger *zap.Logger) *FaqService {
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &FaqService{embedder: embedder, logger: logger}

	for _, name := range []string{"company-faq-embeddings.json", "company-faq.json"} {
		path := filepath.Join(dataDir, name)
		raw, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := json.Unmarshal(raw, &svc.faqs); err != nil {
			logger.Warn("failed to parse FAQ dataset", zap.String("path", path), zap.Error(err))
			svc.faqs = nil
			continue
		}
		logger.Info("loaded FAQ dataset", zap.String("path", path), zap.Int("entries", len(svc.faqs)))
		break
	}
	if len(svc.faqs) == 0 {
		logger.Warn("FAQ service initialized with no entries", zap.String("dir", dataDir))
	}
	return svc
}

// NewFaqServiceFromEntries builds a service over an in-memory dataset.
func NewFaqServiceFromEntries(entries []FaqEntry, embedder Embedder, logger *zap.Logger) *FaqService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FaqService{faqs: entries, embedder: embedder, logger: logger}
}

func (s *FaqService) Name() string { return "faq" }

// TryResolve implements Tier; the FAQ tier always resolves.
func (s *FaqService) TryResolve(ctx context.Context, q Query) (string, bool) {
	return s.GetResponse(ctx, q.Message, q.History, q.Company), true
}

// GetResponse answers message from the FAQ dataset. It never panics
// or returns an error; the worst outcome is a templated apology.
func (s *FaqService) GetResponse(ctx context.Context, message string, history []store.Message, company string) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("FAQ matching panicked", zap.Any("panic", r))
			reply = unavailableMessage
		}
	}()

	if len(s.faqs) == 0 {
		return unavailableMessage
	}
	if len(s.faqs[0].Embedding) > 0 {
		return s.semanticMatch(ctx, message)
	}
	return s.keywordMatch(message)
}

func (s *FaqService) semanticMatch(ctx context.Context, message string) string {
	if s.embedder == nil {
		return couldNotProcessMessage
	}
	queryEmbedding, err := s.embedder.Embed(ctx, message)
	if err != nil || len(queryEmbedding) == 0 {
		s.logger.Warn("failed to embed query", zap.Error(err))
		return couldNotProcessMessage
	}

	var best *FaqEntry
	bestScore := float32(-1)
	for i := range s.faqs {
		faq := &s.faqs[i]
		if len(faq.Embedding) == 0 {
			continue
		}
		score, err := utils.CosineSimilarity(queryEmbedding, faq.Embedding)
		if err != nil {
			s.logger.Warn("skipping FAQ entry with incompatible embedding",
				zap.String("question", faq.Question), zap.Error(err))
			continue
		}
		if score > bestScore {
			bestScore = score
			best = faq
		}
	}

	if best != nil && bestScore > faqSimilarityThreshold {
		return best.Answer
	}
	return couldNotFindMessage
}

var wordSplitter = regexp.MustCompile(`\W+`)

// keywordMatch scores each entry by overlapping tokens of length >= 3
// between the message and the entry's question. A message containing
// the question verbatim wins immediately with a saturating score.
func (s *FaqService) keywordMatch(message string) string {
	lowered := strings.ToLower(message)
	messageWords := wordSplitter.Split(lowered, -1)

	var best *FaqEntry
	bestScore := 0
	for i := range s.faqs {
		faq := &s.faqs[i]
		questionWords := make(map[string]bool)
		for _, w := range wordSplitter.Split(strings.ToLower(faq.Question), -1) {
			questionWords[w] = true
		}

		overlap := 0
		for _, w := range messageWords {
			if len(w) >= minKeywordLen && questionWords[w] {
				overlap++
			}
		}
		if overlap > bestScore {
			bestScore = overlap
			best = faq
		}
		if strings.Contains(lowered, strings.ToLower(faq.Question)) {
			best = faq
			bestScore = substringScore
			break
		}
	}

	if best != nil && bestScore > 0 {
		return best.Answer
	}
	return couldNotFindMessage
}
