package database

import "strings"

// NormalizeEmoji derives the canonical emoji key used by reaction-role
// bindings: the literal rune for unicode emojis, "<:name:id>" for custom
// ones. It accepts the raw message form ("<:grad:999>", "<a:grad:999>"),
// the gateway API name ("grad:999") and plain unicode.
func NormalizeEmoji(raw string) string {
	e := strings.TrimSpace(raw)
	if strings.HasPrefix(e, "<") && strings.HasSuffix(e, ">") {
		e = strings.Trim(e, "<>")
	}
	e = strings.TrimPrefix(e, "a:")
	e = strings.TrimPrefix(e, ":")
	if strings.Contains(e, ":") {
		return "<:" + e + ">"
	}
	return e
}

// EmojiAPIName converts a normalised key back to the "name:id" form the
// Discord reaction endpoints expect.
func EmojiAPIName(key string) string {
	if strings.HasPrefix(key, "<") && strings.HasSuffix(key, ">") {
		return strings.TrimPrefix(strings.Trim(key, "<>"), ":")
	}
	return key
}
