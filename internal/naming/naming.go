// Package naming derives the lexical variants of human-supplied names that
// generated projects use for directories, modules, classes, and display text.
package naming

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrEmptyName reports input that yields no usable identifier characters,
// either because it is blank or because transliteration dropped everything.
var ErrEmptyName = errors.New("name must contain at least one letter or digit")

// Variants holds every derived form of one human-supplied name.
//
// All forms come from the same word segmentation of Raw, so resolving the
// same input again always produces identical variants.
type Variants struct {
	// Raw is the input string, unmodified.
	Raw string
	// Slug joins lowercase words with hyphens (package identifiers).
	Slug string
	// Snake joins lowercase words with underscores (module and directory names).
	Snake string
	// Pascal concatenates capitalized words (generated class names).
	Pascal string
	// Title joins capitalized words with single spaces (display strings).
	Title string
}

// stripMarks decomposes to NFD and removes combining marks, so accented
// Latin letters reduce to their ASCII base character.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Resolve derives the canonical variants of raw. It is deterministic and
// fails only with ErrEmptyName.
func Resolve(raw string) (Variants, error) {
	if strings.TrimSpace(raw) == "" {
		return Variants{}, ErrEmptyName
	}

	words := segment(transliterate(raw))
	if len(words) == 0 {
		return Variants{}, ErrEmptyName
	}

	lower := make([]string, len(words))
	caps := make([]string, len(words))
	for i, w := range words {
		lower[i] = strings.ToLower(w)
		caps[i] = capitalize(w)
	}

	v := Variants{
		Raw:    raw,
		Slug:   strings.Join(lower, "-"),
		Snake:  strings.Join(lower, "_"),
		Pascal: strings.Join(caps, ""),
		Title:  strings.Join(caps, " "),
	}

	// Leading digits are illegal identifiers in the target ecosystem.
	if v.Snake[0] >= '0' && v.Snake[0] <= '9' {
		v.Slug = "x" + v.Slug
		v.Snake = "x" + v.Snake
	}
	return v, nil
}

// transliterate reduces raw to ASCII letters, digits, and word boundaries.
// Accents are folded onto their base letters first; any remaining rune with
// no ASCII equivalent is dropped, and every other non-alphanumeric rune
// becomes a boundary.
func transliterate(raw string) string {
	stripped, _, err := transform.String(stripMarks, raw)
	if err != nil {
		stripped = raw
	}

	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			// Non-Latin script with no ASCII form.
		default:
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// segment splits on boundaries and on lower-to-upper case transitions, so
// camelCase and PascalCase inputs segment into their constituent words.
func segment(s string) []string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	var prev rune
	for _, r := range s {
		if r == ' ' {
			flush()
			prev = r
			continue
		}
		if unicode.IsLower(prev) && unicode.IsUpper(r) {
			flush()
		}
		cur = append(cur, r)
		prev = r
	}
	flush()
	return words
}

// capitalize uppercases the first rune and lowercases the remainder.
func capitalize(w string) string {
	r := []rune(strings.ToLower(w))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
