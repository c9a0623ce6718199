package conversation

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/0xAnupam/Mental-Health-ChatBot/internal/ai"
)

type recordingProvider struct {
	lastPrompt string
	lastParams ai.Params
	calls      int
	reply      string
	err        error
}

func (p *recordingProvider) Generate(ctx context.Context, prompt string, params ai.Params) (string, error) {
	_ = ctx
	p.calls++
	p.lastPrompt = prompt
	p.lastParams = params
	if p.err != nil {
		return "", p.err
	}
	return p.reply, nil
}

type countingStore struct {
	listCalls   int
	appendCalls int
	turns       []Turn
	appendErr   error
}

func (s *countingStore) ListRecent(ctx context.Context, userID string, limit int) ([]Turn, error) {
	_ = ctx
	_ = userID
	s.listCalls++
	if limit > len(s.turns) {
		limit = len(s.turns)
	}
	return append([]Turn(nil), s.turns[:limit]...), nil
}

func (s *countingStore) Append(ctx context.Context, t *Turn) error {
	_ = ctx
	s.appendCalls++
	if s.appendErr != nil {
		return s.appendErr
	}
	s.turns = append([]Turn{*t}, s.turns...)
	return nil
}

type fakeCache struct {
	turns           []Turn
	hit             bool
	getCalls        int
	setCalls        int
	invalidateCalls int
}

func (c *fakeCache) GetRecent(ctx context.Context, userID string) ([]Turn, bool, error) {
	_ = ctx
	_ = userID
	c.getCalls++
	if !c.hit {
		return nil, false, nil
	}
	return append([]Turn(nil), c.turns...), true, nil
}

func (c *fakeCache) SetRecent(ctx context.Context, userID string, turns []Turn) error {
	_ = ctx
	_ = userID
	c.setCalls++
	c.turns = append([]Turn(nil), turns...)
	return nil
}

func (c *fakeCache) Invalidate(ctx context.Context, userID string) error {
	_ = ctx
	_ = userID
	c.invalidateCalls++
	return nil
}

func TestChat_EmptyHistorySucceeds(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepo(db)
	prov := &recordingProvider{reply: "That sounds hard. What's on your mind?"}
	svc := NewService(repo, prov, nil, 3)

	reply, err := svc.Chat(context.Background(), "u1", "I feel anxious", "")
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if reply != "That sounds hard. What's on your mind?" {
		t.Fatalf("unexpected reply: %q", reply)
	}

	want := BuildPrompt(nil, "I feel anxious")
	if prov.lastPrompt != want {
		t.Fatalf("unexpected prompt:\n%s\nwant:\n%s", prov.lastPrompt, want)
	}

	var count int64
	if err := db.Model(&Turn{}).Where("user_id = ?", "u1").Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 stored turn, got %d", count)
	}
}

func TestChat_FixedGenerationParams(t *testing.T) {
	db := openTestDB(t)
	prov := &recordingProvider{reply: "ok"}
	svc := NewService(NewRepo(db), prov, nil, 3)

	if _, err := svc.Chat(context.Background(), "u1", "hello", ""); err != nil {
		t.Fatalf("chat: %v", err)
	}

	if prov.lastParams.MaxNewTokens != 200 {
		t.Fatalf("max_new_tokens: got %d", prov.lastParams.MaxNewTokens)
	}
	if prov.lastParams.ReturnFullText {
		t.Fatalf("return_full_text must be false")
	}
	if prov.lastParams.Temperature != 0.7 {
		t.Fatalf("temperature: got %v", prov.lastParams.Temperature)
	}
}

func TestChat_ContextWindowSelectsMostRecentOldestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepo(db)
	prov := &recordingProvider{reply: "ok"}
	svc := NewService(repo, prov, nil, 3)

	for i := 1; i <= 5; i++ {
		id, err := NewTurnID()
		if err != nil {
			t.Fatalf("turn id: %v", err)
		}
		if err := repo.Append(context.Background(), &Turn{
			TurnID:  id,
			UserID:  "u2",
			Message: fmt.Sprintf("m%d", i),
		}); err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	if _, err := svc.Chat(context.Background(), "u2", "new", ""); err != nil {
		t.Fatalf("chat: %v", err)
	}

	// 3 most recent turns, rendered oldest to newest
	want := BuildPrompt([]string{"m3", "m4", "m5"}, "new")
	if prov.lastPrompt != want {
		t.Fatalf("unexpected prompt:\n%s\nwant:\n%s", prov.lastPrompt, want)
	}
}

func TestChat_GatewayFailureSkipsPersistence(t *testing.T) {
	store := &countingStore{}
	prov := &recordingProvider{err: errors.New("quota exceeded")}
	svc := NewService(store, prov, nil, 3)

	_, err := svc.Chat(context.Background(), "u3", "hello", "")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	if store.appendCalls != 0 {
		t.Fatalf("append must not be called on gateway failure, got %d calls", store.appendCalls)
	}
}

func TestChat_PersistenceFailureAfterReply(t *testing.T) {
	store := &countingStore{appendErr: errors.New("disk full")}
	prov := &recordingProvider{reply: "a perfectly good reply"}
	svc := NewService(store, prov, nil, 3)

	_, err := svc.Chat(context.Background(), "u4", "hello", "")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
	// the reply existed in memory and was discarded
	if prov.calls != 1 {
		t.Fatalf("expected exactly one gateway call, got %d", prov.calls)
	}
}

func TestChat_TrimsReply(t *testing.T) {
	db := openTestDB(t)
	prov := &recordingProvider{reply: "  steady breathing helps \n"}
	svc := NewService(NewRepo(db), prov, nil, 3)

	reply, err := svc.Chat(context.Background(), "u5", "hello", "")
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if reply != "steady breathing helps" {
		t.Fatalf("expected trimmed reply, got %q", reply)
	}
}

func TestChat_ReplayedTurnIDWritesOneRow(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepo(db)
	prov := &recordingProvider{reply: "ok"}
	svc := NewService(repo, prov, nil, 3)

	turnID, err := NewTurnID()
	if err != nil {
		t.Fatalf("turn id: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := svc.Chat(context.Background(), "u6", "hello", turnID); err != nil {
			t.Fatalf("chat %d: %v", i, err)
		}
	}

	var count int64
	if err := db.Model(&Turn{}).Where("user_id = ?", "u6").Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 row for replayed turn id, got %d", count)
	}
}

func TestChat_CacheHitSkipsStoreRead(t *testing.T) {
	store := &countingStore{}
	cache := &fakeCache{hit: true, turns: []Turn{{UserID: "u7", Message: "cached"}}}
	prov := &recordingProvider{reply: "ok"}
	svc := NewService(store, prov, cache, 3)

	if _, err := svc.Chat(context.Background(), "u7", "new", ""); err != nil {
		t.Fatalf("chat: %v", err)
	}

	if store.listCalls != 0 {
		t.Fatalf("cache hit must skip the store read, got %d list calls", store.listCalls)
	}
	want := BuildPrompt([]string{"cached"}, "new")
	if prov.lastPrompt != want {
		t.Fatalf("unexpected prompt:\n%s\nwant:\n%s", prov.lastPrompt, want)
	}
	if cache.invalidateCalls != 1 {
		t.Fatalf("append must invalidate the cache, got %d calls", cache.invalidateCalls)
	}
}

func TestChat_CacheMissPopulatesCache(t *testing.T) {
	store := &countingStore{turns: []Turn{{UserID: "u8", Message: "older"}}}
	cache := &fakeCache{}
	prov := &recordingProvider{reply: "ok"}
	svc := NewService(store, prov, cache, 3)

	if _, err := svc.Chat(context.Background(), "u8", "new", ""); err != nil {
		t.Fatalf("chat: %v", err)
	}

	if store.listCalls != 1 {
		t.Fatalf("expected one store read, got %d", store.listCalls)
	}
	if cache.setCalls != 1 {
		t.Fatalf("cache miss must populate the cache, got %d set calls", cache.setCalls)
	}
}
