package nlp

import (
	"context"
	"strings"
)

// Document is the tagged form of one resume text.
type Document struct {
	Tokens     []Token
	NounChunks []string
}

// Analyzer holds the tagger for the lifetime of the process and is passed to every extractor.
// It has no mutable state and is safe for concurrent use when the tagger is.
type Analyzer struct {
	tagger Tagger
}

// NewAnalyzer wraps tagger.
func NewAnalyzer(tagger Tagger) *Analyzer {
	return &Analyzer{tagger: tagger}
}

// Analyze tags text line by line. A SpaceTag token separates consecutive lines so
// that no token pair ever spans a line break.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	groups, err := a.tagLines(ctx, lines)
	if err != nil {
		return nil, err
	}

	var tokens []Token
	for _, lineTokens := range groups {
		if len(lineTokens) == 0 {
			continue
		}
		if len(tokens) > 0 {
			tokens = append(tokens, Token{Tag: SpaceTag, Text: "\n"})
		}
		tokens = append(tokens, lineTokens...)
	}

	return &Document{
		Tokens:     tokens,
		NounChunks: NounChunks(tokens),
	}, nil
}

func (a *Analyzer) tagLines(ctx context.Context, lines []string) ([][]Token, error) {
	if len(lines) == 0 {
		return nil, nil
	}
	if lt, ok := a.tagger.(LineTagger); ok {
		return lt.TagLines(ctx, lines)
	}

	groups := make([][]Token, 0, len(lines))
	for _, line := range lines {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lineTokens, err := a.tagger.Tag(ctx, line)
		if err != nil {
			return nil, err
		}
		groups = append(groups, lineTokens)
	}
	return groups, nil
}

// Words returns the text of every real token, skipping line separators.
func (d *Document) Words() []string {
	words := make([]string, 0, len(d.Tokens))
	for _, tok := range d.Tokens {
		if tok.Tag == SpaceTag {
			continue
		}
		words = append(words, tok.Text)
	}
	return words
}

// NounChunks groups tokens into base noun phrases: an optional determiner followed by
// adjectives and nouns, ending on a noun.
func NounChunks(tokens []Token) []string {
	var chunks []string
	var current []string
	lastNoun := -1

	flush := func() {
		if lastNoun >= 0 {
			chunks = append(chunks, strings.Join(current[:lastNoun+1], " "))
		}
		current = current[:0]
		lastNoun = -1
	}

	for _, tok := range tokens {
		switch {
		case IsNoun(tok.Tag):
			current = append(current, tok.Text)
			lastNoun = len(current) - 1
		case isAdjective(tok.Tag):
			if lastNoun >= 0 && lastNoun == len(current)-1 {
				// an adjective after a noun starts a new phrase
				flush()
			}
			current = append(current, tok.Text)
		case isDeterminer(tok.Tag):
			flush()
			current = append(current, tok.Text)
		default:
			flush()
		}
	}
	flush()
	return chunks
}
