package conversation

import "strings"

const systemFraming = "You are CheerChat, a caring mental-health companion. " +
	"Keep every reply concise, at most three sentences. " +
	"Do not fabricate dialogue or answer on the user's behalf. " +
	"Ask open questions, validate the user's feelings, " +
	"and suggest one or two practical coping strategies."

// BuildPrompt renders the single opaque string sent to the gateway.
// History must be ordered oldest to newest; that ordering is a fixed
// contract of this package, not a presentation choice.
func BuildPrompt(history []string, message string) string {
	var b strings.Builder
	b.WriteString(systemFraming)
	b.WriteString("\n\nConversation so far:\n")
	if len(history) == 0 {
		b.WriteString("(none)\n")
	}
	for _, m := range history {
		b.WriteString("- ")
		b.WriteString(m)
		b.WriteString("\n")
	}
	b.WriteString("\nCurrent message: ")
	b.WriteString(message)
	b.WriteString("\nResponse:")
	return b.String()
}
