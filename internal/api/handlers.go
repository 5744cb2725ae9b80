package api

import (
	"encoding/json"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"logisticsfuture.com/chatbot-service/internal/chat"
	"logisticsfuture.com/chatbot-service/internal/core"
	"logisticsfuture.com/chatbot-service/internal/store"
)

// sessionHeader carries the chat session id. A request without one is
// assigned a fresh id, echoed back so the client can stick to it.
const sessionHeader = "X-Chat-Session"

const timestampLayout = "15:04"

type APIHandler struct {
	resolver *core.Resolver
	cache    *chat.ResponseCache
	history  *chat.HistoryStore
	company  string
	debug    bool
	logger   *zap.Logger
}

func NewAPIHandler(resolver *core.Resolver, cache *chat.ResponseCache, history *chat.HistoryStore, company string, debug bool, logger *zap.Logger) *APIHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &APIHandler{
		resolver: resolver,
		cache:    cache,
		history:  history,
		company:  company,
		debug:    debug,
		logger:   logger,
	}
}

type ChatRequest struct {
	Message string          `json:"message"`
	History []store.Message `json:"history"`
	Company string          `json:"company"`
}

// ChatResponse duplicates the reply under two keys for backward
// compatibility with older frontend builds that read "reply".
type ChatResponse struct {
	Response string `json:"response"`
	Reply    string `json:"reply"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

func (h *APIHandler) ChatbotHandler(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		h.writeError(w, http.StatusBadRequest, "message is required", nil)
		return
	}

	company := req.Company
	if company == "" {
		company = h.company
	}

	session := r.Header.Get(sessionHeader)
	if session == "" {
		session = uuid.NewString()
	}
	w.Header().Set(sessionHeader, session)

	reply, cached := h.cache.Get(message)
	if !cached {
		var err error
		reply, err = h.resolver.Resolve(r.Context(), message, req.History, company)
		if err != nil {
			h.logger.Error("resolution failed", zap.Error(err))
			h.writeError(w, http.StatusInternalServerError, "failed to resolve message", err)
			return
		}
		h.cache.Put(message, reply)
	}

	now := time.Now().Format(timestampLayout)
	h.history.Append(session,
		store.Message{Role: store.RoleUser, Content: message, Timestamp: now},
		store.Message{Role: store.RoleBot, Content: reply, Timestamp: now},
	)

	h.writeJSON(w, http.StatusOK, ChatResponse{Response: reply, Reply: reply})
}

type HistoryResponse struct {
	History  []store.Message `json:"history"`
	Greeting string          `json:"greeting,omitempty"`
	Intro    string          `json:"intro,omitempty"`
}

func (h *APIHandler) GetHistoryHandler(w http.ResponseWriter, r *http.Request) {
	session := r.Header.Get(sessionHeader)

	messages := h.history.GetHistory(session)
	resp := HistoryResponse{History: messages}
	if len(messages) == 0 {
		resp.History = []store.Message{}
		resp.Greeting = core.Greeting(h.company, time.Now())
		resp.Intro = core.ServiceIntro(h.company)
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *APIHandler) ClearHistoryHandler(w http.ResponseWriter, r *http.Request) {
	h.history.ClearHistory(r.Header.Get(sessionHeader))
	w.WriteHeader(http.StatusNoContent)
}

func (h *APIHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *APIHandler) writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: http.StatusText(status), Message: message}
	if err != nil {
		resp.Message = message + ": " + err.Error()
	}
	if h.debug && status >= http.StatusInternalServerError {
		resp.Stack = string(debug.Stack())
	}
	h.writeJSON(w, status, resp)
}
