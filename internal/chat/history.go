package chat

import (
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"logisticsfuture.com/chatbot-service/internal/store"
)

const (
	// HistoryKey namespaces every persisted transcript. A session id,
	// when present, is appended as "<key>:<session>".
	HistoryKey = "tgf-chat-history"

	// HistoryTTL is the absolute lifetime of a saved transcript.
	HistoryTTL = 5 * time.Minute

	// MaxHistoryMessages caps the transcript at the most recent turns.
	MaxHistoryMessages = 20
)

// envelope wraps the transcript with its expiry, mirroring the shape
// the frontend keeps in localStorage. ExpiresAt is a millisecond
// Unix timestamp.
type envelope struct {
	History   []store.Message `json:"history"`
	ExpiresAt int64           `json:"expiresAt"`
}

// HistoryStore persists a bounded conversation transcript with an
// absolute expiry. All operations are no-ops when the backing store
// is unavailable (store.NullKV); storage errors are logged and
// treated as an absent transcript, never surfaced to the caller.
type HistoryStore struct {
	kv     store.KV
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger
}

func NewHistoryStore(kv store.KV, logger *zap.Logger) *HistoryStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HistoryStore{
		kv:     kv,
		ttl:    HistoryTTL,
		now:    time.Now,
		logger: logger,
	}
}

func (h *HistoryStore) key(session string) string {
	if session == "" {
		return HistoryKey
	}
	return HistoryKey + ":" + session
}

// GetHistory returns the saved transcript, or an empty one if it is
// absent, unparseable or past its expiry. An expired transcript is
// evicted on read.
func (h *HistoryStore) GetHistory(session string) []store.Message {
	raw, ok, err := h.kv.Get(h.key(session))
	if err != nil {
		h.logger.Warn("failed to read chat history", zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		h.logger.Warn("discarding corrupted chat history", zap.Error(err))
		return nil
	}
	if env.ExpiresAt == 0 || h.now().UnixMilli() > env.ExpiresAt {
		if err := h.kv.Delete(h.key(session)); err != nil {
			h.logger.Warn("failed to evict expired chat history", zap.Error(err))
		}
		return nil
	}
	return env.History
}

// SaveHistory overwrites the transcript with a fresh expiry, keeping
// only the most recent MaxHistoryMessages entries (oldest dropped,
// order preserved).
func (h *HistoryStore) SaveHistory(session string, messages []store.Message) {
	if len(messages) > MaxHistoryMessages {
		messages = messages[len(messages)-MaxHistoryMessages:]
	}

	raw, err := json.Marshal(envelope{
		History:   messages,
		ExpiresAt: h.now().Add(h.ttl).UnixMilli(),
	})
	if err != nil {
		h.logger.Warn("failed to encode chat history", zap.Error(err))
		return
	}
	if err := h.kv.Put(h.key(session), string(raw)); err != nil {
		h.logger.Warn("failed to save chat history", zap.Error(err))
	}
}

// Append adds messages to the saved transcript and persists it.
func (h *HistoryStore) Append(session string, messages ...store.Message) {
	h.SaveHistory(session, append(h.GetHistory(session), messages...))
}

// ClearHistory removes the transcript.
func (h *HistoryStore) ClearHistory(session string) {
	if err := h.kv.Delete(h.key(session)); err != nil {
		h.logger.Warn("failed to clear chat history", zap.Error(err))
	}
}
