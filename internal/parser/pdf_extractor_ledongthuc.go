package parser

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog"
)

// LedongthucExtractor implements TextExtractor using github.com/ledongthuc/pdf.
type LedongthucExtractor struct {
	logger zerolog.Logger
}

// LedongthucOption configures a LedongthucExtractor.
type LedongthucOption func(*LedongthucExtractor)

// WithLedongthucLogger 配置日志记录器
func WithLedongthucLogger(logger zerolog.Logger) LedongthucOption {
	return func(e *LedongthucExtractor) {
		e.logger = logger.With().Str("component", "ledongthuc_pdf").Logger()
	}
}

var _ TextExtractor = (*LedongthucExtractor)(nil)

// NewLedongthucExtractor creates a new instance of LedongthucExtractor
func NewLedongthucExtractor(options ...LedongthucOption) *LedongthucExtractor {
	e := &LedongthucExtractor{logger: zerolog.Nop()}
	for _, option := range options {
		option(e)
	}
	return e
}

// ExtractFromFile extracts text from a PDF file path
func (e *LedongthucExtractor) ExtractFromFile(ctx context.Context, filePath string) (string, map[string]interface{}, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}
	startTime := time.Now()

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", nil, fmt.Errorf("failed to open PDF file %s: %w", filePath, err)
	}
	defer f.Close()

	text, err := e.extractText(r)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", filePath, err)
	}

	metadata := baseMetadata(filePath)
	metadata["page_count"] = r.NumPage()
	metadata["text_length"] = len(text)
	metadata["processing_duration_ms"] = time.Since(startTime).Milliseconds()

	e.logger.Debug().Str("file", filePath).Int("pages", r.NumPage()).Int("chars", len(text)).Msg("PDF处理完成")
	return text, metadata, nil
}

// extractText extracts text from a PDF reader
func (e *LedongthucExtractor) extractText(r *pdf.Reader) (text string, err error) {
	// the reader panics on some malformed content streams
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("malformed PDF content: %v", rec)
		}
	}()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract plain text: %w", err)
	}

	content, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read plain text: %w", err)
	}
	return string(content), nil
}
