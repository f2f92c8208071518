package nlp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"cv-parser/internal/httpclient"
	"cv-parser/internal/tracing"

	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"go.opentelemetry.io/otel/trace"
)

// DisplacyTagger calls the /dep endpoint of a spaCy displaCy service.
type DisplacyTagger struct {
	BaseURL string
	Model   string
	client  *httpclient.Client
}

type depRequest struct {
	Text                string `json:"text"`
	Model               string `json:"model"`
	CollapsePunctuation int    `json:"collapse_punctuation"`
	CollapsePhrases     int    `json:"collapse_phrases"`
}

type depResponse struct {
	Arcs  []depArc `json:"arcs"`
	Words []Token  `json:"words"`
}

type depArc struct {
	Dir   string `json:"dir"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Label string `json:"label"`
}

// NewDisplacyTagger creates a tagger for the service at baseURL.
func NewDisplacyTagger(baseURL, model string, client *httpclient.Client) *DisplacyTagger {
	if model == "" {
		model = "en"
	}
	return &DisplacyTagger{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Model:   model,
		client:  client,
	}
}

var _ LineTagger = (*DisplacyTagger)(nil)

// TagLines sends all lines in a single /dep request. spaCy emits the newline between
// two lines as a whitespace token, which is where the result is split.
func (d *DisplacyTagger) TagLines(ctx context.Context, lines []string) ([][]Token, error) {
	tokens, err := d.Tag(ctx, strings.Join(lines, "\n"))
	if err != nil {
		return nil, err
	}

	groups := make([][]Token, 0, len(lines))
	var current []Token
	for _, tok := range tokens {
		if strings.TrimSpace(tok.Text) == "" {
			if len(current) > 0 {
				groups = append(groups, current)
				current = nil
			}
			continue
		}
		current = append(current, tok)
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups, nil
}

// Tag sends text to the /dep endpoint and returns POS tags
func (d *DisplacyTagger) Tag(ctx context.Context, text string) ([]Token, error) {
	data, err := json.Marshal(depRequest{Text: text, Model: d.Model})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := d.client.Do(ctx, consts.MethodPost, d.BaseURL+"/dep", data, map[string]string{
		"Content-Type": "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if resp.StatusCode != consts.StatusOK {
		err := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		tracing.RecordHTTPError(trace.SpanFromContext(ctx), err, resp.StatusCode)
		return nil, err
	}

	var parsed depResponse
	if err := json.Unmarshal(resp.Body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return parsed.Words, nil
}
