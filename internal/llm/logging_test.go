package llm

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/abhisek/prepai/internal/store"
)

type fakeRecorder struct {
	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (f *fakeRecorder) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, data)
	return f.err
}

func TestLogging_RecordsSuccess(t *testing.T) {
	rec := &fakeRecorder{}
	mock := NewMockProvider(MockResponse{
		Text:  `[{"q":"A","a":"1"}]`,
		Usage: Usage{InputTokens: 12, OutputTokens: 7},
	})
	p := WithLogging(mock, "mock", rec, nil)

	ctx := WithPurpose(context.Background(), PurposeQuestions)
	_, err := p.Generate(ctx, Request{
		System:   "You are an interviewer.",
		Messages: []Message{{Role: RoleUser, Content: "Generate 1 question."}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rec.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(rec.events))
	}
	ev := rec.events[0]
	if !ev.Success || ev.Purpose != "question-gen" || ev.Provider != "mock" {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if ev.InputTokens != 12 || ev.OutputTokens != 7 {
		t.Fatalf("unexpected tokens: %d/%d", ev.InputTokens, ev.OutputTokens)
	}
	if ev.ResponseBody != `[{"q":"A","a":"1"}]` {
		t.Fatalf("unexpected response body: %q", ev.ResponseBody)
	}
	if !strings.Contains(ev.RequestBody, "[system]\nYou are an interviewer.") ||
		!strings.Contains(ev.RequestBody, "[user]\nGenerate 1 question.") {
		t.Fatalf("unexpected request body: %q", ev.RequestBody)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	rec := &fakeRecorder{}
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}})
	p := WithLogging(mock, "mock", rec, nil)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(rec.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(rec.events))
	}
	if rec.events[0].Success || rec.events[0].ErrorMessage == "" {
		t.Fatalf("expected failed event with message, got %+v", rec.events[0])
	}
	if rec.events[0].Purpose != "unknown" {
		t.Fatalf("expected purpose 'unknown', got %q", rec.events[0].Purpose)
	}
}

func TestLogging_RecorderErrorDoesNotFailRequest(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	p := WithLogging(NewMockProvider(MockResponse{Text: "ok"}), "mock", rec, nil)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "ok" {
		t.Fatalf("unexpected text: %q", resp.Text)
	}
}

func TestLogging_NilRecorder(t *testing.T) {
	p := WithLogging(NewMockProvider(MockResponse{Text: "ok"}), "mock", nil, nil)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
