package translate

import (
	"context"

	"golang.org/x/text/language"
)

// StubInvoker is a deterministic invoker for tests and for binaries built
// without a native seq2seq backend. Dictionary hits translate exactly;
// misses come back tagged with the target language
type StubInvoker struct {
	// Dictionary maps source text to its fixed translation
	Dictionary map[string]string

	// Err, when set, fails every call
	Err error

	// Empty, when set, returns a zero-length batch
	Empty bool

	// Calls counts Translate invocations
	Calls int
}

// Translate implements Invoker
func (s *StubInvoker) Translate(_ context.Context, texts []string, _, dst language.Tag) ([]string, error) {
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Empty {
		return nil, nil
	}
	out := make([]string, len(texts))
	for i, t := range texts {
		if tr, ok := s.Dictionary[t]; ok {
			out[i] = tr
			continue
		}
		out[i] = "[" + dst.String() + "] " + t
	}
	return out, nil
}
