package usecase

import (
	"context"
	"fmt"
	"iter"
	"sync"

	"dsa-tutor/internal/domain/model"
)

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}

type fakeScraper struct {
	platform model.Platform

	mu      sync.Mutex
	calls   map[string]int
	results map[string]model.Problem
	errs    map[string]error
}

func newFakeScraper(platform model.Platform) *fakeScraper {
	return &fakeScraper{
		platform: platform,
		calls:    map[string]int{},
		results:  map[string]model.Problem{},
		errs:     map[string]error{},
	}
}

func (f *fakeScraper) Platform() model.Platform { return f.platform }

func (f *fakeScraper) Fetch(_ context.Context, id string) (model.Problem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[id]++
	if err, ok := f.errs[id]; ok {
		return model.Problem{}, err
	}
	if p, ok := f.results[id]; ok {
		return p, nil
	}
	return model.Problem{
		Title:       "Problem " + id,
		Difficulty:  "Easy",
		Tags:        []string{"Array"},
		Description: "Solve " + id,
		Platform:    f.platform.String(),
	}, nil
}

func (f *fakeScraper) callCount(id string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[id]
}

func (f *fakeScraper) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

type fakeMetrics struct {
	hits, misses int
	outcomes     map[string]int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{outcomes: map[string]int{}}
}

func (m *fakeMetrics) CacheLookup(hit bool) {
	if hit {
		m.hits++
		return
	}
	m.misses++
}

func (m *fakeMetrics) ScrapeOutcome(platform model.Platform, outcome string) {
	m.outcomes[fmt.Sprintf("%s/%s", platform.Key(), outcome)]++
}

type fakeResolver struct {
	problems map[string]model.Problem
	err      error
}

func (f *fakeResolver) GetProblemData(_ context.Context, raw string) (model.Problem, error) {
	if f.err != nil {
		return model.Problem{}, f.err
	}
	p, ok := f.problems[raw]
	if !ok {
		return model.Problem{}, model.ErrNoDataFound
	}
	return p, nil
}

type fakeCompleter struct {
	chunks  []string
	err     error
	failAt  int
	prompts []string
}

func (f *fakeCompleter) Stream(_ context.Context, prompt string) iter.Seq2[string, error] {
	f.prompts = append(f.prompts, prompt)
	return func(yield func(string, error) bool) {
		for i, chunk := range f.chunks {
			if f.err != nil && i == f.failAt {
				yield("", f.err)
				return
			}
			if !yield(chunk, nil) {
				return
			}
		}
		if f.err != nil && f.failAt >= len(f.chunks) {
			yield("", f.err)
		}
	}
}

type fakeChatStore struct {
	mu         sync.Mutex
	messages   []model.ChatMessage
	historyErr error
	appendErr  error
	convos     []model.ConversationSummary
	renamed    map[string]string
	deleted    []string
	affected   int64
}

func (s *fakeChatStore) AppendMessage(_ context.Context, msg model.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.appendErr != nil {
		return s.appendErr
	}
	s.messages = append(s.messages, msg)
	return nil
}

func (s *fakeChatStore) History(_ context.Context, userID, conversationID string) ([]model.ChatTurn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.historyErr != nil {
		return nil, s.historyErr
	}
	var turns []model.ChatTurn
	for _, m := range s.messages {
		if m.UserID == userID && m.ConversationID == conversationID {
			turns = append(turns, model.ChatTurn{Question: m.Question, Response: m.Response})
		}
	}
	return turns, nil
}

func (s *fakeChatStore) ListConversations(context.Context, string) ([]model.ConversationSummary, error) {
	return s.convos, nil
}

func (s *fakeChatStore) RenameConversation(_ context.Context, _, conversationID, title string) (int64, error) {
	if s.renamed == nil {
		s.renamed = map[string]string{}
	}
	s.renamed[conversationID] = title
	return s.affected, nil
}

func (s *fakeChatStore) DeleteConversation(_ context.Context, _, conversationID string) (int64, error) {
	s.deleted = append(s.deleted, conversationID)
	return s.affected, nil
}
