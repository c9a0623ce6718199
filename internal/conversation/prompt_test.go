package conversation

import (
	"strings"
	"testing"
)

func TestBuildPrompt_EmptyHistory(t *testing.T) {
	got := BuildPrompt(nil, "I feel anxious")

	if !strings.Contains(got, "(none)") {
		t.Fatalf("expected empty history marker, got:\n%s", got)
	}
	if !strings.Contains(got, "Current message: I feel anxious") {
		t.Fatalf("expected current message, got:\n%s", got)
	}
	if !strings.HasSuffix(got, "Response:") {
		t.Fatalf("expected prompt to end with completion cue, got:\n%s", got)
	}
}

func TestBuildPrompt_HistoryOrderIsPreserved(t *testing.T) {
	got := BuildPrompt([]string{"first", "second", "third"}, "now")

	iFirst := strings.Index(got, "- first")
	iSecond := strings.Index(got, "- second")
	iThird := strings.Index(got, "- third")
	if iFirst < 0 || iSecond < 0 || iThird < 0 {
		t.Fatalf("missing history lines:\n%s", got)
	}
	if !(iFirst < iSecond && iSecond < iThird) {
		t.Fatalf("history must render oldest to newest, got:\n%s", got)
	}
	if strings.Contains(got, "(none)") {
		t.Fatalf("non-empty history must not render the empty marker:\n%s", got)
	}
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	a := BuildPrompt([]string{"x", "y"}, "z")
	b := BuildPrompt([]string{"x", "y"}, "z")
	if a != b {
		t.Fatalf("prompt must be deterministic:\n%s\n---\n%s", a, b)
	}
}
