package nlp

import (
	"context"
	"fmt"
	"time"

	"cv-parser/internal/config"
	"cv-parser/internal/constants"
	"cv-parser/internal/httpclient"

	"github.com/rs/zerolog"
)

// SpaceTag marks the synthetic token inserted between lines of a document.
const SpaceTag = "_SP"

// Token is a single word with its part-of-speech tag.
// Tags are Penn Treebank (NNP, JJ, ...) or universal (PROPN, ADJ, ...) depending on the tagger.
type Token struct {
	Tag  string `json:"tag"`
	Text string `json:"text"`
}

// Tagger splits text into tagged tokens.
type Tagger interface {
	Tag(ctx context.Context, text string) ([]Token, error)
}

// LineTagger tags a whole document in one call and returns its tokens grouped by line.
// Remote taggers implement it to avoid a round-trip per line.
type LineTagger interface {
	TagLines(ctx context.Context, lines []string) ([][]Token, error)
}

// BuildTagger 根据配置构建词性标注器
func BuildTagger(cfg config.NLPConfig, logger zerolog.Logger) (Tagger, error) {
	switch cfg.Provider {
	case constants.NLPDisplacy:
		if cfg.Displacy.ServerURL == "" {
			return nil, fmt.Errorf("displacy tagger requires a server url")
		}
		hc, err := httpclient.New(time.Duration(cfg.Displacy.Timeout) * time.Second)
		if err != nil {
			return nil, err
		}
		logger.Info().Str("server_url", cfg.Displacy.ServerURL).Str("model", cfg.Displacy.Model).Msg("使用displaCy词性标注")
		return NewDisplacyTagger(cfg.Displacy.ServerURL, cfg.Displacy.Model, hc), nil
	case constants.NLPProse, "":
		logger.Info().Msg("使用prose词性标注")
		return NewProseTagger(), nil
	default:
		return nil, fmt.Errorf("unknown nlp provider %q", cfg.Provider)
	}
}

// IsProperNoun reports whether tag marks a proper noun.
func IsProperNoun(tag string) bool {
	switch tag {
	case "NNP", "NNPS", "PROPN":
		return true
	}
	return false
}

// IsNoun reports whether tag marks any noun, proper nouns included.
func IsNoun(tag string) bool {
	switch tag {
	case "NN", "NNS", "NNP", "NNPS", "NOUN", "PROPN":
		return true
	}
	return false
}

func isAdjective(tag string) bool {
	switch tag {
	case "JJ", "JJR", "JJS", "ADJ":
		return true
	}
	return false
}

func isDeterminer(tag string) bool {
	switch tag {
	case "DT", "PRP$", "DET":
		return true
	}
	return false
}
