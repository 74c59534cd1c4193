package llm

import "fmt"

// Markers the refinement model is instructed to emit. IgnoreMarker means
// "this message has no refinable content"; the think tags delimit chain
// of thought that must never reach a viewer
const (
	IgnoreMarker = "<@>"
	thinkOpen    = "<think>"
	thinkClose   = "</think>"
)

// ReasoningTruncated is the fixed result for generations that opened a
// reasoning block and hit the token budget before closing it
const ReasoningTruncated = "[reasoning truncated]"

// refinePrompt interpolates the literal machine translation into the
// fixed instruction template. The template never changes per request, so
// prompt token counts stay predictable
func refinePrompt(sourceLang, literal string) string {
	return fmt.Sprintf(
		"You are localizing live-stream chat. The following is a literal machine "+
			"translation from %s to English. Rewrite it as the short, natural English "+
			"a chatter would type. Output only the rewritten message. If the message "+
			"is pure noise with nothing to rewrite, output %s instead.\n\n"+
			"Literal translation: %q\nNatural English: ",
		sourceLang, IgnoreMarker, literal)
}
