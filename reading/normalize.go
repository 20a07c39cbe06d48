package reading

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var lowerCaser = cases.Lower(language.Und)

// Normalize puts s through the exact pipeline the target reading and
// every per-token match variant must share for byte-prefix comparison to
// be correct: NFKC, then full (cascading) Unicode lowercase, then a
// hiragana-to-katakana codepoint shift.
func Normalize(s string) string {
	nfkc := norm.NFKC.String(s)
	lower := lowerCaser.String(nfkc)
	return hiraganaToKatakana(lower)
}

// hiraganaToKatakana shifts codepoints in [U+3041, U+3096] and
// [U+309D, U+309F] by +0x60, mapping hiragana onto their katakana
// counterparts. Everything else passes through unchanged.
func hiraganaToKatakana(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 0x3041 && r <= 0x3096) || (r >= 0x309D && r <= 0x309F) {
			r += 0x60
		}
		b.WriteRune(r)
	}
	return b.String()
}
