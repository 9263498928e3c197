package report

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// ---------------------------------------------------------------------------
// Sanitizer
// ---------------------------------------------------------------------------

// fancyReplacer maps punctuation outside the core fonts' range to plain
// equivalents.
var fancyReplacer = strings.NewReplacer(
	"→", "->",
	"⇒", "=>",
	"←", "<-",
	"⇐", "<=",
	"↔", "<->",
	"•", "-",
	"◦", "-",
	"▪", "-",
	"·", "-",
	"‣", "-",
	"“", `"`,
	"”", `"`,
	"„", `"`,
	"«", `"`,
	"»", `"`,
	"‘", "'",
	"’", "'",
	"‚", "'",
	"′", "'",
	"″", `"`,
	"–", "-",
	"—", "-",
	"‒", "-",
	"―", "-",
	"−", "-",
	"…", "...",
	"\u00a0", " ",
	"\u2007", " ",
	"\u202f", " ",
	"\t", " ",
)

// cp1252Extra are the runes above Latin-1 that Windows-1252 still encodes.
var cp1252Extra = map[rune]bool{
	'€': true, 'ƒ': true, '†': true, '‡': true, 'ˆ': true, '‰': true,
	'Š': true, '‹': true, 'Œ': true, 'Ž': true, '˜': true, '™': true,
	'š': true, '›': true, 'œ': true, 'ž': true, 'Ÿ': true,
}

// Sanitize returns s with every rune representable by the single-byte
// encoding of the output fonts. Composed accents survive (á, ñ, ü), fancy
// punctuation is transliterated, control characters are dropped and any
// other rune becomes '?'.
func Sanitize(s string) string {
	if s == "" {
		return s
	}
	s = fancyReplacer.Replace(norm.NFC.String(s))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n' || r == '\r':
			b.WriteByte(' ')
		case unicode.IsControl(r):
		case r <= 0xff || cp1252Extra[r]:
			b.WriteRune(r)
		case unicode.Is(unicode.Mn, r):
		default:
			b.WriteByte('?')
		}
	}
	return b.String()
}
