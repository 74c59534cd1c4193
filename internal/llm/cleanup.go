package llm

import "strings"

// CleanOutput reduces a raw generated buffer to what may be shown to a
// viewer. The branches are deliberately conservative: anything the model
// did not clearly mark as a final answer is dropped rather than surfaced.
//
// An empty result is part of the contract. Callers decide its meaning:
// the translator keeps the literal translation, the chat service
// suppresses the reply.
func CleanOutput(raw string) string {
	// 1. The model asked us to ignore the message entirely
	if strings.Contains(raw, IgnoreMarker) {
		return ""
	}

	// 2. A closed reasoning block: the answer is whatever follows it
	if _, after, ok := strings.Cut(raw, thinkClose); ok {
		return strings.TrimSpace(after)
	}

	// 3. An unclosed reasoning block: the budget ran out mid-thought
	if strings.Contains(raw, thinkOpen) {
		return ReasoningTruncated
	}

	// 4. No tags at all: untagged output is not trusted
	return ""
}
