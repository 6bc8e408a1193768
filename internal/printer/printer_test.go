package printer

import (
	"strings"
	"testing"
)

func TestSetNoColor(t *testing.T) {
	SetNoColor(true)
	t.Cleanup(func() { SetNoColor(false) })

	for name, fn := range map[string]func(string) string{
		"Faint":   Faint,
		"Bold":    Bold,
		"Success": Success,
		"Error":   Error,
		"Warning": Warning,
		"Info":    Info,
	} {
		if got := fn("text"); got != "text" {
			t.Errorf("%s with colors disabled = %q, want plain text", name, got)
		}
	}
}

func TestStyledOutputContainsText(t *testing.T) {
	SetNoColor(false)
	t.Cleanup(func() { SetNoColor(false) })

	// Styled or not (depending on the terminal profile), the message text
	// must always survive.
	if got := Success("done"); !strings.Contains(got, "done") {
		t.Errorf("Success(%q) = %q", "done", got)
	}
}
