package main

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"logisticsfuture.com/chatbot-service/internal/api"
	"logisticsfuture.com/chatbot-service/internal/chat"
	"logisticsfuture.com/chatbot-service/internal/config"
	"logisticsfuture.com/chatbot-service/internal/core"
	"logisticsfuture.com/chatbot-service/internal/discovery"
	"logisticsfuture.com/chatbot-service/internal/store"
)

func main() {
	cfg := config.Load()

	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()

	// History persistence. A broken storage medium degrades the
	// history to no-ops rather than taking the service down.
	var kv store.KV
	switch {
	case cfg.UseInMemoryStore:
		logger.Info("using in-memory history store")
		kv = store.NewMemoryKV()
	default:
		sqliteKV, err := store.NewSQLiteKV(cfg.DatabaseURL)
		if err != nil {
			logger.Warn("history storage unavailable, continuing without persistence", zap.Error(err))
			kv = store.NullKV{}
		} else {
			logger.Info("using SQLite history store", zap.String("path", cfg.DatabaseURL))
			kv = sqliteKV
		}
	}
	defer kv.Close()

	historyStore := chat.NewHistoryStore(kv, logger)
	cache := chat.NewResponseCache(chat.DefaultCacheTTL)

	// Discovery over the web application tree. A missing tree leaves
	// the agent empty; discovery queries then resolve to "unknown".
	appTree := openAppTree(cfg.AppDir, logger)
	agent := discovery.NewAgent(
		discovery.NewRouteIndex(appTree, "app"),
		discovery.NewCodebaseIndex(appTree),
	)

	// Remote completion client (OpenRouter speaks the OpenAI chat
	// protocol). Constructed even without a credential; the remote
	// tier checks plausibility per request.
	clientConfig := openai.DefaultConfig(cfg.OpenRouterAPIKey)
	clientConfig.BaseURL = cfg.OpenRouterAPIURL
	completionClient := openai.NewClientWithConfig(clientConfig)
	if cfg.OpenRouterAPIKey == "" {
		logger.Warn("OPEN_ROUTER_API_KEY not set, chatbot will answer from the local FAQ dataset")
	}

	faqService := core.NewFaqService(
		filepath.Join(cfg.AppDir, cfg.FaqDataDir),
		newEmbedder(cfg, completionClient, logger),
		logger,
	)

	resolver := core.NewResolver([]core.Tier{
		core.NewDiscoveryTier(agent, cfg.SiteURL, logger),
		core.NewRemoteTier(completionClient, cfg.OpenRouterAPIKey, cfg.ChatModel, cfg.BotName, cfg.SiteURL, logger),
		faqService,
	}, logger)

	apiHandler := api.NewAPIHandler(resolver, cache, historyStore, cfg.SiteTitle, cfg.LogLevel == "DEBUG", logger)
	router := api.NewRouter(apiHandler)

	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)
	srv := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // LLM calls can take time
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("addr", serverAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}
	logger.Info("server exiting gracefully")
}

func newLogger(level string) *zap.Logger {
	var logger *zap.Logger
	var err error
	if level == "DEBUG" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return logger
}

// openAppTree returns the web application file tree, or nil when the
// configured directory is not accessible from this process.
func openAppTree(dir string, logger *zap.Logger) fs.FS {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		logger.Warn("app directory not accessible, discovery disabled", zap.String("dir", dir))
		return nil
	}
	return os.DirFS(dir)
}

func newEmbedder(cfg config.Config, client *openai.Client, logger *zap.Logger) core.Embedder {
	switch cfg.EmbeddingProvider {
	case "openai":
		return core.NewOpenAIEmbedder(client, cfg.EmbeddingModel)
	case "gemini":
		embedder, err := core.NewGeminiEmbedder(context.Background(), cfg.GeminiAPIKey, cfg.EmbeddingModel)
		if err != nil {
			logger.Warn("failed to initialize Gemini embedder, semantic FAQ matching disabled", zap.Error(err))
			return nil
		}
		return embedder
	default:
		return nil
	}
}
