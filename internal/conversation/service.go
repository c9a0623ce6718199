package conversation

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/0xAnupam/Mental-Health-ChatBot/internal/ai"
)

type Service struct {
	store             Store
	cache             Cache // may be nil
	provider          ai.Provider
	params            ai.Params
	contextWindowSize int
}

func NewService(store Store, provider ai.Provider, cache Cache, contextWindowSize int) *Service {
	if contextWindowSize <= 0 || contextWindowSize > 100 {
		contextWindowSize = 3
	}
	return &Service{
		store:             store,
		cache:             cache,
		provider:          provider,
		params:            ai.DefaultParams(),
		contextWindowSize: contextWindowSize,
	}
}

// Chat runs one request through the pipeline: fetch context, build prompt,
// call the gateway, persist the user turn. The gateway call happens before
// the write, so a failed write discards an already generated reply; the two
// operations have no atomicity guarantee between them. turnID is optional
// and only matters for replay deduplication.
func (s *Service) Chat(ctx context.Context, userID, message, turnID string) (string, error) {
	recent, err := s.recentTurns(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	// store returns newest first; the prompt wants oldest -> newest
	history := make([]string, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		history = append(history, recent[i].Message)
	}

	prompt := BuildPrompt(history, message)

	reply, err := s.provider.Generate(ctx, prompt, s.params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if turnID == "" {
		turnID, err = NewTurnID()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrPersistence, err)
		}
	}

	turn := &Turn{
		TurnID:  turnID,
		UserID:  userID,
		Message: message,
	}
	if err := s.store.Append(ctx, turn); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, userID); err != nil {
			log.Printf("context cache invalidate failed user=%s err=%v", userID, err)
		}
	}

	return strings.TrimSpace(reply), nil
}

func (s *Service) recentTurns(ctx context.Context, userID string) ([]Turn, error) {
	if s.cache != nil {
		turns, hit, err := s.cache.GetRecent(ctx, userID)
		if err != nil {
			log.Printf("context cache read failed user=%s err=%v", userID, err)
		} else if hit {
			return turns, nil
		}
	}

	turns, err := s.store.ListRecent(ctx, userID, s.contextWindowSize)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetRecent(ctx, userID, turns); err != nil {
			log.Printf("context cache write failed user=%s err=%v", userID, err)
		}
	}
	return turns, nil
}
