package database

import "testing"

func TestNormalizeEmoji(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"🎓", "🎓"},
		{" 🎓 ", "🎓"},
		{"<:grad:999>", "<:grad:999>"},
		{"<a:party:123>", "<:party:123>"},
		{"grad:999", "<:grad:999>"}, // gateway API name
		{"❌", "❌"},
	}
	for _, tt := range tests {
		if got := NormalizeEmoji(tt.in); got != tt.want {
			t.Errorf("NormalizeEmoji(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeEmojiIsCanonical(t *testing.T) {
	// Every accepted form of the same emoji maps to one key.
	forms := []string{"<:grad:999>", "grad:999", "<a:grad:999>"}
	want := NormalizeEmoji(forms[0])
	for _, f := range forms {
		if got := NormalizeEmoji(f); got != want {
			t.Errorf("NormalizeEmoji(%q) = %q, want %q", f, got, want)
		}
	}
	if NormalizeEmoji(want) != want {
		t.Errorf("normalisation is not idempotent for %q", want)
	}
}

func TestEmojiAPIName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"<:grad:999>", "grad:999"},
		{"🎓", "🎓"},
	}
	for _, tt := range tests {
		if got := EmojiAPIName(tt.in); got != tt.want {
			t.Errorf("EmojiAPIName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
