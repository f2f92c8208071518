package extract

import (
	"context"
	"errors"
	"fmt"

	"cv-parser/internal/nlp"
	"cv-parser/internal/skills"
	"cv-parser/internal/types"
)

var (
	// ErrAnalyze wraps failures of the part-of-speech tagger.
	ErrAnalyze = errors.New("文本词性分析失败")
	// ErrMatchSkills wraps failures of the skill matcher.
	ErrMatchSkills = errors.New("技能匹配失败")
)

// Skills returns the catalog skills named by the document's noun chunks or content words.
func Skills(ctx context.Context, doc *nlp.Document, matcher *skills.Matcher) ([]string, error) {
	candidates := make([]string, 0, len(doc.NounChunks)+len(doc.Tokens))
	candidates = append(candidates, doc.NounChunks...)
	candidates = append(candidates, doc.ContentWords()...)
	return matcher.Match(ctx, candidates)
}

// Extractor builds profiles from raw text. It holds the process-wide analyzer
// and matcher and is safe for concurrent use.
type Extractor struct {
	analyzer *nlp.Analyzer
	matcher  *skills.Matcher
}

// NewExtractor 创建字段抽取器
func NewExtractor(analyzer *nlp.Analyzer, matcher *skills.Matcher) *Extractor {
	return &Extractor{analyzer: analyzer, matcher: matcher}
}

// Extract runs every field extractor over text. Fields that do not match are left nil.
func (e *Extractor) Extract(ctx context.Context, text string) (*types.ExtractedProfile, error) {
	doc, err := e.analyzer.Analyze(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAnalyze, err)
	}

	name, nameOK := Name(doc)
	phone, phoneOK := Phone(text)
	email, emailOK := Email(text)

	found, err := Skills(ctx, doc, e.matcher)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMatchSkills, err)
	}

	return types.NewExtractedProfile(name, nameOK, phone, phoneOK, email, emailOK, found), nil
}
