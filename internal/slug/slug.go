// Package slug derives URL-safe identifiers from human-readable names.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxLength matches the size of the slug columns.
const MaxLength = 100

var validPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Letters that NFKD does not decompose into an ASCII base.
var transliterations = strings.NewReplacer(
	"ß", "ss",
	"ẞ", "ss",
	"æ", "ae",
	"Æ", "ae",
	"ø", "o",
	"Ø", "o",
	"œ", "oe",
	"Œ", "oe",
	"ł", "l",
	"Ł", "l",
	"đ", "d",
	"Đ", "d",
	"þ", "th",
	"Þ", "th",
)

// Make returns the lowercase, hyphen-separated ASCII form of s.
// Diacritics are stripped, every run of characters outside [a-z0-9] becomes a single
// hyphen, and leading/trailing hyphens are trimmed. The result may be empty.
func Make(s string) string {
	folded := fold(transliterations.Replace(s))

	var b strings.Builder
	b.Grow(len(folded))
	separator := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if separator && b.Len() > 0 {
				b.WriteByte('-')
			}
			separator = false
			b.WriteRune(r)
			continue
		}
		separator = true
	}

	out := b.String()
	if len(out) > MaxLength {
		out = strings.TrimRight(out[:MaxLength], "-")
	}
	return out
}

// Ptr is Make for nullable slug columns: an empty result yields nil.
func Ptr(s string) *string {
	v := Make(s)
	if v == "" {
		return nil
	}
	return &v
}

// Valid reports whether s is already in canonical slug form.
func Valid(s string) bool {
	return len(s) <= MaxLength && validPattern.MatchString(s)
}

// fold decomposes s and drops combining marks, e.g. "María" -> "Maria".
func fold(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
