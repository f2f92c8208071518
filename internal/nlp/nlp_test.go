package nlp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cv-parser/internal/config"
	"cv-parser/internal/constants"
	"cv-parser/internal/httpclient"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// fixedTagger 按行返回预设的标注结果
type fixedTagger struct {
	lines map[string][]Token
	err   error
	calls int
}

func (f *fixedTagger) Tag(_ context.Context, text string) ([]Token, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.lines[text], nil
}

func TestAnalyzeSeparatesLines(t *testing.T) {
	tagger := &fixedTagger{lines: map[string][]Token{
		"Curriculum Vitae": {{Tag: "NNP", Text: "Curriculum"}, {Tag: "NNP", Text: "Vitae"}},
		"John Smith":       {{Tag: "NNP", Text: "John"}, {Tag: "NNP", Text: "Smith"}},
	}}

	doc, err := NewAnalyzer(tagger).Analyze(context.Background(), "Curriculum Vitae\r\n\n   \nJohn Smith\n")
	require.NoError(t, err)
	assert.Equal(t, 2, tagger.calls, "空行不应调用标注器")
	assert.Equal(t, []Token{
		{Tag: "NNP", Text: "Curriculum"},
		{Tag: "NNP", Text: "Vitae"},
		{Tag: SpaceTag, Text: "\n"},
		{Tag: "NNP", Text: "John"},
		{Tag: "NNP", Text: "Smith"},
	}, doc.Tokens)
	assert.Equal(t, []string{"Curriculum", "Vitae", "John", "Smith"}, doc.Words())
	assert.Equal(t, []string{"Curriculum Vitae", "John Smith"}, doc.NounChunks)
}

// batchTagger 一次调用标注所有行
type batchTagger struct {
	fixedTagger
	batches [][]string
}

func (b *batchTagger) TagLines(ctx context.Context, lines []string) ([][]Token, error) {
	b.batches = append(b.batches, lines)
	groups := make([][]Token, 0, len(lines))
	for _, line := range lines {
		groups = append(groups, b.lines[line])
	}
	return groups, nil
}

func TestAnalyzeUsesLineTaggerOnce(t *testing.T) {
	tagger := &batchTagger{fixedTagger: fixedTagger{lines: map[string][]Token{
		"John Smith":   {{Tag: "NNP", Text: "John"}, {Tag: "NNP", Text: "Smith"}},
		"Go developer": {{Tag: "NNP", Text: "Go"}, {Tag: "NN", Text: "developer"}},
	}}}

	doc, err := NewAnalyzer(tagger).Analyze(context.Background(), "  John Smith  \n\nGo developer\n")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"John Smith", "Go developer"}}, tagger.batches)
	assert.Zero(t, tagger.calls, "不应逐行调用 Tag")
	assert.Equal(t, []Token{
		{Tag: "NNP", Text: "John"},
		{Tag: "NNP", Text: "Smith"},
		{Tag: SpaceTag, Text: "\n"},
		{Tag: "NNP", Text: "Go"},
		{Tag: "NN", Text: "developer"},
	}, doc.Tokens)
}

func TestAnalyzeEmptyText(t *testing.T) {
	tagger := &batchTagger{}
	doc, err := NewAnalyzer(tagger).Analyze(context.Background(), "\n  \r\n")
	require.NoError(t, err)
	assert.Empty(t, doc.Tokens)
	assert.Empty(t, tagger.batches)
}

func TestAnalyzeTaggerError(t *testing.T) {
	_, err := NewAnalyzer(&fixedTagger{err: errors.New("offline")}).Analyze(context.Background(), "text")
	assert.EqualError(t, err, "offline")
}

func TestAnalyzeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewAnalyzer(&fixedTagger{}).Analyze(ctx, "text")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNounChunks(t *testing.T) {
	tokens := []Token{
		{Tag: "VBD", Text: "Built"},
		{Tag: "DT", Text: "a"},
		{Tag: "JJ", Text: "scalable"},
		{Tag: "NN", Text: "data"},
		{Tag: "NN", Text: "pipeline"},
		{Tag: "IN", Text: "with"},
		{Tag: "NN", Text: "machine"},
		{Tag: "NN", Text: "learning"},
		{Tag: "JJ", Text: "new"},
		{Tag: "NNS", Text: "models"},
		{Tag: "CC", Text: "and"},
		{Tag: "JJ", Text: "dangling"},
	}
	assert.Equal(t, []string{
		"a scalable data pipeline",
		"machine learning",
		"new models",
	}, NounChunks(tokens))
}

func TestNounChunksUniversalTags(t *testing.T) {
	tokens := []Token{
		{Tag: "PROPN", Text: "Deep"},
		{Tag: "PROPN", Text: "Learning"},
		{Tag: "PUNCT", Text: ","},
		{Tag: "NOUN", Text: "SQL"},
	}
	assert.Equal(t, []string{"Deep Learning", "SQL"}, NounChunks(tokens))
}

func TestIsStopWord(t *testing.T) {
	assert.True(t, IsStopWord("the"))
	assert.True(t, IsStopWord("With"))
	assert.False(t, IsStopWord("Python"))
	assert.False(t, IsStopWord("SQL"))

	doc := &Document{Tokens: []Token{
		{Tag: "IN", Text: "with"}, {Tag: "NNP", Text: "Python"}, {Tag: SpaceTag, Text: "\n"}, {Tag: "CC", Text: "and"}, {Tag: "NN", Text: "SQL"},
	}}
	assert.Equal(t, []string{"Python", "SQL"}, doc.ContentWords())
}

func TestTagPredicates(t *testing.T) {
	assert.True(t, IsProperNoun("NNP"))
	assert.True(t, IsProperNoun("PROPN"))
	assert.False(t, IsProperNoun("NN"))
	assert.True(t, IsNoun("NNS"))
	assert.False(t, IsNoun(SpaceTag))
}

func TestDisplacyTagger(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/dep", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		var req depRequest
		assert.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "John Smith", req.Text)
		assert.Equal(t, "en_core_web_sm", req.Model)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"arcs":[{"dir":"left","start":0,"end":1,"label":"compound"}],` +
			`"words":[{"tag":"PROPN","text":"John"},{"tag":"PROPN","text":"Smith"}]}`))
	}))
	defer srv.Close()

	hc, err := httpclient.New(5 * time.Second)
	require.NoError(t, err)
	tagger := NewDisplacyTagger(srv.URL+"/", "en_core_web_sm", hc)

	tokens, err := tagger.Tag(context.Background(), "John Smith")
	require.NoError(t, err)
	assert.Equal(t, []Token{{Tag: "PROPN", Text: "John"}, {Tag: "PROPN", Text: "Smith"}}, tokens)
}

func TestDisplacyTaggerTagLinesSingleRequest(t *testing.T) {
	var requests []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req depRequest
		assert.NoError(t, json.Unmarshal(body, &req))
		requests = append(requests, req.Text)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"arcs":[],"words":[` +
			`{"tag":"NNP","text":"John"},{"tag":"NNP","text":"Smith"},{"tag":"_SP","text":"\n"},` +
			`{"tag":"NNP","text":"Python"},{"tag":"NN","text":"developer"}]}`))
	}))
	defer srv.Close()

	hc, err := httpclient.New(5 * time.Second)
	require.NoError(t, err)
	tagger := NewDisplacyTagger(srv.URL, "en", hc)

	doc, err := NewAnalyzer(tagger).Analyze(context.Background(), "John Smith\nPython developer")
	require.NoError(t, err)
	assert.Equal(t, []string{"John Smith\nPython developer"}, requests)
	assert.Equal(t, []Token{
		{Tag: "NNP", Text: "John"},
		{Tag: "NNP", Text: "Smith"},
		{Tag: SpaceTag, Text: "\n"},
		{Tag: "NNP", Text: "Python"},
		{Tag: "NN", Text: "developer"},
	}, doc.Tokens)
}

func TestDisplacyTaggerServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	hc, err := httpclient.New(5 * time.Second)
	require.NoError(t, err)

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	ctx, span := tp.Tracer("test").Start(context.Background(), "analyze")

	_, err = NewDisplacyTagger(srv.URL, "", hc).Tag(ctx, "text")
	span.End()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Contains(t, spans[0].Attributes(), attribute.String("error.type", "http"))
	assert.Contains(t, spans[0].Attributes(), attribute.String("error.category", "server_error"))
}

func TestProseTagger(t *testing.T) {
	tokens, err := NewProseTagger().Tag(context.Background(), "She writes Python and SQL daily.")
	require.NoError(t, err)

	var words []string
	for _, tok := range tokens {
		assert.NotEmpty(t, tok.Tag)
		words = append(words, tok.Text)
	}
	assert.Contains(t, words, "Python")
	assert.Contains(t, words, "SQL")
	assert.True(t, strings.HasPrefix(strings.Join(words, " "), "She writes"))
}

func TestBuildTagger(t *testing.T) {
	tagger, err := BuildTagger(config.NLPConfig{Provider: constants.NLPProse}, zerolog.Nop())
	require.NoError(t, err)
	assert.IsType(t, &ProseTagger{}, tagger)

	tagger, err = BuildTagger(config.NLPConfig{
		Provider: constants.NLPDisplacy,
		Displacy: config.DisplacyConfig{ServerURL: "http://localhost:8000", Model: "en", Timeout: 5},
	}, zerolog.Nop())
	require.NoError(t, err)
	assert.IsType(t, &DisplacyTagger{}, tagger)

	_, err = BuildTagger(config.NLPConfig{Provider: constants.NLPDisplacy}, zerolog.Nop())
	assert.Error(t, err)

	_, err = BuildTagger(config.NLPConfig{Provider: "nltk"}, zerolog.Nop())
	assert.Error(t, err)
}
