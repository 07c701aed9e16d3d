package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Letters that do not decompose into a base letter plus marks
var ligatures = strings.NewReplacer(
	"Æ", "AE", "æ", "ae",
	"Œ", "OE", "œ", "oe",
	"ẞ", "SS", "ß", "ss",
	"Ø", "O", "ø", "o",
	"Đ", "D", "đ", "d",
	"Ł", "L", "ł", "l",
	"Þ", "TH", "þ", "th",
)

// Normalize folds a card name to the key used by the name index:
// compatibility forms and accents stripped, ligatures expanded, non-letters
// dropped, lower case. Normalize(Normalize(s)) == Normalize(s).
func Normalize(name string) string {
	folded := name

	// Accented ligatures such as Ǽ must lose their marks before the replacer sees them
	stripMarks := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if s, _, err := transform.String(stripMarks, folded); err == nil {
		folded = s
	}
	folded = ligatures.Replace(folded)

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
