package parser

import (
	"context"
	"fmt"
	"time"

	"cv-parser/internal/config"
	"cv-parser/internal/constants"
	"cv-parser/internal/httpclient"

	"github.com/rs/zerolog"
)

// TextExtractor 文本提取器接口: the PDF-to-text collaborator.
type TextExtractor interface {
	// ExtractFromFile 从PDF文件提取文本和元数据
	ExtractFromFile(ctx context.Context, filePath string) (string, map[string]interface{}, error)
}

// BuildTextExtractor 统一构建PDF解析器的逻辑, 根据配置返回合适的实现
func BuildTextExtractor(ctx context.Context, cfg config.ExtractorConfig, logger zerolog.Logger) (TextExtractor, error) {
	switch cfg.Type {
	case constants.ExtractorTika:
		if cfg.Tika.ServerURL == "" {
			return nil, fmt.Errorf("tika extractor requires a server url")
		}
		hc, err := httpclient.New(time.Duration(cfg.Tika.Timeout) * time.Second)
		if err != nil {
			return nil, err
		}
		logger.Info().Str("server_url", cfg.Tika.ServerURL).Msg("使用Tika PDF解析器")
		return NewTikaPDFExtractor(cfg.Tika.ServerURL, hc, WithTikaLogger(logger)), nil
	case constants.ExtractorLedongthuc:
		logger.Info().Msg("使用ledongthuc/pdf解析器")
		return NewLedongthucExtractor(WithLedongthucLogger(logger)), nil
	case constants.ExtractorEino, "":
		logger.Info().Msg("使用Eino PDF解析器")
		return NewEinoPDFTextExtractor(ctx, WithEinoLogger(logger))
	default:
		return nil, fmt.Errorf("unknown extractor type %q", cfg.Type)
	}
}

func baseMetadata(filePath string) map[string]interface{} {
	return map[string]interface{}{
		"source_file_path": filePath,
		"extraction_time":  time.Now().Format(time.RFC3339),
	}
}
