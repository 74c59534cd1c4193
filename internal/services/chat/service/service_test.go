package service

import (
	"context"
	"sync"
	"testing"

	"golang.org/x/time/rate"

	perr "streamlate/internal/platform/errors"
	"streamlate/internal/platform/logger"
	"streamlate/internal/services/chat/domain"
	trdom "streamlate/internal/services/translator/domain"
)

type fakeTranslator struct {
	res trdom.Result
	err error
}

func (f *fakeTranslator) Translate(context.Context, string) (trdom.Result, error) {
	return f.res, f.err
}

type fakeReplier struct {
	mu      sync.Mutex
	replies []string
	err     error
}

func (f *fakeReplier) Reply(_ context.Context, _ domain.Event, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies = append(f.replies, text)
	return f.err
}

func (f *fakeReplier) sent() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.replies...)
}

func newChat(tr trdom.TranslatorPort, rep domain.Replier) *Service {
	return New(Config{BotName: "streamlate", ReplyRate: rate.Inf}, tr, rep, *logger.Get())
}

func TestHandle_RepliesWithTranslation(t *testing.T) {
	rep := &fakeReplier{}
	s := newChat(&fakeTranslator{res: trdom.Result{Language: "French", Translation: "hello everyone"}}, rep)

	ev := domain.Event{Sender: "pierre", Text: "bonjour tout le monde", ReplyTo: "msg-1"}
	if err := s.Handle(context.Background(), ev); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	got := rep.sent()
	if len(got) != 1 || got[0] != "(translation) pierre: hello everyone" {
		t.Fatalf("replies = %v", got)
	}
}

func TestHandle_SkipsOwnMessages(t *testing.T) {
	rep := &fakeReplier{}
	s := newChat(&fakeTranslator{res: trdom.Result{Language: "French", Translation: "x"}}, rep)

	ev := domain.Event{Sender: "Streamlate", Text: "bonjour"}
	if err := s.Handle(context.Background(), ev); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(rep.sent()) != 0 {
		t.Fatalf("bot replied to itself")
	}
}

func TestHandle_NoReplyForEnglish(t *testing.T) {
	rep := &fakeReplier{}
	s := newChat(&fakeTranslator{res: trdom.Result{Language: "English", Translation: "hi"}}, rep)

	if err := s.Handle(context.Background(), domain.Event{Sender: "sam", Text: "hi"}); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(rep.sent()) != 0 {
		t.Fatalf("replied to english")
	}
}

func TestHandle_NoReplyWhenTranslationEqualsInput(t *testing.T) {
	rep := &fakeReplier{}
	s := newChat(&fakeTranslator{res: trdom.Result{Language: "French", Translation: "mdr"}}, rep)

	if err := s.Handle(context.Background(), domain.Event{Sender: "sam", Text: "mdr"}); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(rep.sent()) != 0 {
		t.Fatalf("replied with an unchanged translation")
	}
}

func TestHandle_TranslationErrorsAreSwallowed(t *testing.T) {
	rep := &fakeReplier{}
	s := newChat(&fakeTranslator{err: perr.UnknownLanguagef("noise")}, rep)

	if err := s.Handle(context.Background(), domain.Event{Sender: "sam", Text: "???"}); err != nil {
		t.Fatalf("Handle must swallow pipeline errors: %v", err)
	}
	if len(rep.sent()) != 0 {
		t.Fatalf("replied after a pipeline error")
	}
}

func TestHandle_RateLimitDropsNotQueues(t *testing.T) {
	rep := &fakeReplier{}
	tr := &fakeTranslator{res: trdom.Result{Language: "French", Translation: "hello"}}
	s := New(Config{BotName: "bot", ReplyRate: rate.Limit(0.001), ReplyBurst: 1}, tr, rep, *logger.Get())

	for i := 0; i < 5; i++ {
		if err := s.Handle(context.Background(), domain.Event{Sender: "sam", Text: "salut"}); err != nil {
			t.Fatalf("Handle: %v", err)
		}
	}
	if got := len(rep.sent()); got != 1 {
		t.Fatalf("replies = %d, want 1 (burst only)", got)
	}
}

func TestRun_DrainsSourceAndHandlesEach(t *testing.T) {
	rep := &fakeReplier{}
	s := newChat(&fakeTranslator{res: trdom.Result{Language: "French", Translation: "hello"}}, rep)

	ch := make(chan domain.Event, 3)
	for i := 0; i < 3; i++ {
		ch <- domain.Event{Sender: "sam", Text: "salut"}
	}
	close(ch)

	src := sourceFunc(func(context.Context) (<-chan domain.Event, error) { return ch, nil })
	if err := s.Run(context.Background(), src); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := len(rep.sent()); got != 3 {
		t.Fatalf("replies = %d, want 3", got)
	}
}

type sourceFunc func(ctx context.Context) (<-chan domain.Event, error)

func (f sourceFunc) Events(ctx context.Context) (<-chan domain.Event, error) { return f(ctx) }
