package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"script tag", "<script>", "&lt;script&gt;"},
		{"quotes", `say "hi" & 'bye'`, "say &quot;hi&quot; &amp; &#x27;bye&#x27;"},
		{"trims whitespace", "  Gjallarhorn  ", "Gjallarhorn"},
		{"plain text untouched", "Fatebringer", "Fatebringer"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeString(tt.input))
		})
	}
}

// Re-sanitizing already-escaped text double-escapes the ampersands of the
// entities. That is the documented behavior, not a defect: callers sanitize
// exactly once, on the write path.
func TestSanitizeString_NotIdempotent(t *testing.T) {
	once := SanitizeString("<script>")
	twice := SanitizeString(once)

	assert.Equal(t, "&lt;script&gt;", once)
	assert.Equal(t, "&amp;lt;script&amp;gt;", twice)
}

func TestGenerateID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"strips punctuation", "Wish-Keeper!!", "wish-keeper"},
		{"collapses spaces", "  Multiple   Spaces  ", "multiple-spaces"},
		{"collapses hyphens", "Twin--Tailed---Fox", "twin-tailed-fox"},
		{"lowercases", "GJALLARHORN", "gjallarhorn"},
		{"mixed", "Season of the Wish (S23)", "season-of-the-wish-s23"},
		{"nothing usable", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateID(tt.input))
		})
	}
}
