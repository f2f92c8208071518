// Package extract pulls the profile fields out of a resume's text.
package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"cv-parser/internal/nlp"
)

var (
	// optional trunk zero, optional +91, then 10-digit, (xxx) xxx-xxxx or 7-digit groups
	phonePattern = regexp.MustCompile(`(0)?(\+91)?[-\s]?(\d{3}[-.\s]??\d{3}[-.\s]??\d{4}|\(\d{3}\) [-.\s]*\d{3}[-.\s]??\d{4}|\d{3}[-.\s]??\d{4})`)

	emailPattern = regexp.MustCompile(`[^@|\s]+@[^@]+\.[^@|\s]+`)
)

// Name returns the first pair of adjacent proper nouns whose text does not mention "name",
// with each word capitalised.
func Name(doc *nlp.Document) (string, bool) {
	tokens := doc.Tokens
	for i := 0; i+1 < len(tokens); i++ {
		first, second := tokens[i], tokens[i+1]
		if !nlp.IsProperNoun(first.Tag) || !nlp.IsProperNoun(second.Tag) {
			continue
		}
		span := first.Text + " " + second.Text
		if strings.Contains(strings.ToLower(span), "name") {
			continue
		}
		return capitalize(first.Text) + " " + capitalize(second.Text), true
	}
	return "", false
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(word[size:])
}

// Phone returns the first phone number in text as a digit string.
// Numbers longer than ten digits carry a country code and get a leading "+".
func Phone(text string) (string, bool) {
	groups := phonePattern.FindStringSubmatch(foldSpaces(text))
	if groups == nil {
		return "", false
	}
	number := digitsOnly(strings.Join(groups[1:], ""))
	if number == "" {
		return "", false
	}
	if len(number) > 10 {
		return "+" + number, true
	}
	return number, true
}

// foldSpaces turns non-ASCII whitespace such as U+00A0 into a plain space.
// RE2's \s only matches ASCII whitespace.
func foldSpaces(text string) string {
	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII && unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, text)
}

func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Email returns the first address-like token in text, without trailing semicolons.
func Email(text string) (string, bool) {
	match := emailPattern.FindString(foldSpaces(text))
	if match == "" {
		return "", false
	}
	fields := strings.Fields(match)
	if len(fields) == 0 {
		return "", false
	}
	email := strings.TrimRight(fields[0], ";")
	if email == "" {
		return "", false
	}
	return email, true
}
