package nlp

import (
	"context"
	"fmt"

	"github.com/jdkato/prose/v2"
)

// ProseTagger tags text in-process with prose's averaged perceptron model.
type ProseTagger struct{}

// NewProseTagger returns a tagger backed by github.com/jdkato/prose/v2.
func NewProseTagger() *ProseTagger {
	return &ProseTagger{}
}

// Tag implements Tagger.
func (p *ProseTagger) Tag(ctx context.Context, text string) ([]Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("prose tagging failed: %w", err)
	}

	tokens := make([]Token, 0, len(doc.Tokens()))
	for _, tok := range doc.Tokens() {
		tokens = append(tokens, Token{Tag: tok.Tag, Text: tok.Text})
	}
	return tokens, nil
}
