package domain

// Text is a bilingual message pair. Every human-readable string produced by
// the matching core carries both languages; clients pick one at render time.
type Text struct {
	EN string `json:"en"`
	BG string `json:"bg"`
}
