package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/0xAnupam/Mental-Health-ChatBot/internal/ai"
	"github.com/0xAnupam/Mental-Health-ChatBot/internal/config"
	"github.com/0xAnupam/Mental-Health-ChatBot/internal/conversation"
	"github.com/0xAnupam/Mental-Health-ChatBot/internal/db"
	"github.com/0xAnupam/Mental-Health-ChatBot/internal/httpapi"
	"github.com/0xAnupam/Mental-Health-ChatBot/internal/store/redisstore"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	gdb, err := db.Connect(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	reg := ai.NewRegistry()
	reg.Register("huggingface", func(_ context.Context, model string) (ai.Provider, error) {
		m := strings.TrimSpace(model)
		if m == "" {
			m = cfg.HFModel
		}
		return ai.NewHuggingFaceProvider(cfg.HFBaseURL, cfg.HFToken, m), nil
	})
	reg.Register("ollama", func(_ context.Context, model string) (ai.Provider, error) {
		m := strings.TrimSpace(model)
		if m == "" {
			m = cfg.OllamaModel
		}
		return ai.NewOllamaProvider(cfg.OllamaBaseURL, m), nil
	})

	provider, err := reg.Get(context.Background(), cfg.AIProvider, "")
	if err != nil {
		log.Fatalf("ai provider: %v", err)
	}

	var cache conversation.Cache
	if cfg.RedisAddr != "" {
		rds := redisstore.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rds.Ping(pingCtx); err != nil {
			log.Printf("redis unavailable, context cache disabled: %v", err)
			_ = rds.Close()
		} else {
			cache = rds
			defer rds.Close()
		}
		cancel()
	}

	repo := conversation.NewRepo(gdb)
	svc := conversation.NewService(repo, provider, cache, cfg.ContextWindowSize)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: httpapi.NewRouter(cfg, svc),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("server started addr=%s provider=%s window=%d", srv.Addr, cfg.AIProvider, cfg.ContextWindowSize)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
