package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"cv-parser/internal/httpclient"
	"cv-parser/internal/tracing"

	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

// TikaPDFExtractor 是基于Apache Tika的PDF解析器
type TikaPDFExtractor struct {
	// Tika服务器地址，例如 http://localhost:9998
	ServerURL string
	client    *httpclient.Client
	// 是否提取精简元数据
	extractMetadata bool
	logger          zerolog.Logger
}

// TikaOption 定义配置选项函数
type TikaOption func(*TikaPDFExtractor)

// WithMetadata 配置是否额外请求 /meta 获取精简元数据
func WithMetadata(extract bool) TikaOption {
	return func(e *TikaPDFExtractor) {
		e.extractMetadata = extract
	}
}

// WithTikaLogger 配置自定义日志记录器
func WithTikaLogger(logger zerolog.Logger) TikaOption {
	return func(e *TikaPDFExtractor) {
		e.logger = logger.With().Str("component", "tika_pdf").Logger()
	}
}

var _ TextExtractor = (*TikaPDFExtractor)(nil)

// NewTikaPDFExtractor 创建一个新的Tika PDF解析器
func NewTikaPDFExtractor(serverURL string, client *httpclient.Client, options ...TikaOption) *TikaPDFExtractor {
	extractor := &TikaPDFExtractor{
		ServerURL:       serverURL,
		client:          client,
		extractMetadata: true,
		logger:          zerolog.Nop(),
	}
	for _, option := range options {
		option(extractor)
	}
	return extractor
}

// ExtractFromFile 从PDF文件提取文本内容
func (e *TikaPDFExtractor) ExtractFromFile(ctx context.Context, filePath string) (string, map[string]interface{}, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", nil, fmt.Errorf("打开PDF文件 %s 失败: %w", filePath, err)
	}
	return e.ExtractTextFromBytes(ctx, data, filePath)
}

// ExtractTextFromBytes 从字节数组提取文本内容
func (e *TikaPDFExtractor) ExtractTextFromBytes(ctx context.Context, data []byte, uri string) (string, map[string]interface{}, error) {
	startTime := time.Now()
	metadata := baseMetadata(uri)

	resp, err := e.client.Do(ctx, consts.MethodPut, e.ServerURL+"/tika", data, e.headers(uri, "text/plain"))
	if err != nil {
		return "", metadata, fmt.Errorf("发送请求到Tika服务器失败: %w", err)
	}
	if resp.StatusCode != consts.StatusOK {
		err := fmt.Errorf("tika服务器返回错误状态码: %d", resp.StatusCode)
		tracing.RecordHTTPError(trace.SpanFromContext(ctx), err, resp.StatusCode)
		return "", metadata, err
	}

	text := string(resp.Body)
	metadata["text_length"] = len(text)
	metadata["processing_duration_ms"] = time.Since(startTime).Milliseconds()

	if e.extractMetadata {
		raw, err := e.fetchMetadata(ctx, data, uri)
		if err != nil {
			e.logger.Warn().Err(err).Str("file", uri).Msg("元数据提取失败, 继续使用基本元数据")
		} else {
			for k, v := range raw {
				if isImportantMetadata(k) {
					metadata[k] = v
				}
			}
		}
	}

	e.logger.Debug().Str("file", uri).Int("chars", len(text)).Dur("elapsed", time.Since(startTime)).Msg("PDF文本提取完成")
	return text, metadata, nil
}

func (e *TikaPDFExtractor) headers(uri, accept string) map[string]string {
	h := map[string]string{
		"Content-Type": "application/pdf",
		"Accept":       accept,
	}
	if uri != "" {
		h["X-Tika-Resource-Name"] = uri
	}
	return h
}

// fetchMetadata 提取文档元数据
func (e *TikaPDFExtractor) fetchMetadata(ctx context.Context, data []byte, uri string) (map[string]interface{}, error) {
	resp, err := e.client.Do(ctx, consts.MethodPut, e.ServerURL+"/meta", data, e.headers(uri, "application/json"))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != consts.StatusOK {
		err := fmt.Errorf("tika服务器返回错误状态码: %d", resp.StatusCode)
		tracing.RecordHTTPError(trace.SpanFromContext(ctx), err, resp.StatusCode)
		return nil, err
	}

	var metadata map[string]interface{}
	if err := json.Unmarshal(resp.Body, &metadata); err != nil {
		return nil, fmt.Errorf("解析元数据JSON失败: %w", err)
	}
	return metadata, nil
}

// 判断元数据字段是否重要
func isImportantMetadata(key string) bool {
	switch key {
	case "pdf:PDFVersion", "xmpTPg:NPages", "dcterms:created", "language",
		"dc:title", "Content-Type", "pdf:docinfo:title", "pdf:docinfo:created":
		return true
	}
	return false
}
