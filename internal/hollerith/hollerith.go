// Package hollerith reproduces the character filter and 6-bit BCD (Binary
// Coded Decimal) encoding of the IBM 7094, the host machine Weizenbaum's
// original 1966 ELIZA ran on. The response engine uses it for exactly one
// thing: picking which of a MEMORY rule's four transformations fires, via
// the mid-square hash of the last word of a matched sentence.
package hollerith

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/width"
)

// alphabet is the set of characters the 1966 BCD character set can
// represent. Anything else collapses to a dash.
const alphabet = "0123456789=' +-ABCDEFGHIJKLMNOPQRSTUVWXYZ.)$*/,("

// quoteMarks are the Unicode quotation marks that fold to a plain
// apostrophe rather than a dash, so that smart-quoted pasted text ("I'm",
// “I'm”, 'I'm') reads the same as the ASCII original.
var quoteMarks = map[rune]bool{
	'‘': true, '’': true, '"': true, '`': true,
	'«': true, '»': true,
	'‚': true, '‛': true, '“': true, '”': true,
	'„': true, '‟': true,
	'‹': true, '›': true,
}

var upper = cases.Upper(language.Und)

// Filter folds arbitrary input text down to the 48-character Hollerith
// alphabet, one code point at a time, per §4.1:
//
//   - any of the 14 Unicode quotation marks become an apostrophe
//   - any code point above 127 becomes a dash
//   - '?' and '!' become '.'
//   - otherwise the upper-cased rune is kept if it is in the alphabet,
//     else it becomes a dash
//
// Before that fixed per-code-point pass runs, the text is folded through
// Unicode width normalization and Unicode upper-casing (golang.org/x/text)
// so that e.g. fullwidth Latin letters or non-ASCII uppercase mappings land
// in plain ASCII first; this never changes the output for already-ASCII
// input, so the documented LastChunkAsBCD and Hash laws are unaffected.
func Filter(s string) string {
	s = width.Fold.String(s)
	s = upper.String(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case quoteMarks[r]:
			b.WriteByte('\'')
		case r > 127:
			b.WriteByte('-')
		case r == '?' || r == '!':
			b.WriteByte('.')
		default:
			r = unicode.ToUpper(r)
			if strings.ContainsRune(alphabet, r) {
				b.WriteRune(r)
			} else {
				b.WriteByte('-')
			}
		}
	}
	return b.String()
}
