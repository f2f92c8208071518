package tracing

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrorType 定义错误类型，便于分类和过滤
type ErrorType string

const (
	// ErrorTypeIO 文件系统错误
	ErrorTypeIO ErrorType = "io"
	// ErrorTypeExtraction PDF文本提取错误
	ErrorTypeExtraction ErrorType = "text_extraction"
	// ErrorTypeNLP 词性标注/分块错误
	ErrorTypeNLP ErrorType = "nlp"
	// ErrorTypeMatch 技能匹配错误
	ErrorTypeMatch ErrorType = "skill_match"
	// ErrorTypeRender 报告渲染错误
	ErrorTypeRender ErrorType = "render"
	// ErrorTypeHTTP 外部HTTP服务错误 (Tika, displaCy)
	ErrorTypeHTTP ErrorType = "http"
	// ErrorTypePanic recovered panic inside one document's pipeline
	ErrorTypePanic ErrorType = "panic"
)

// RecordError 记录错误，添加统一的错误类型和详情
func RecordError(span trace.Span, err error, errorType ErrorType) {
	RecordErrorWithInfo(span, err, errorType)
}

// RecordErrorWithInfo 记录错误并添加额外信息
func RecordErrorWithInfo(span trace.Span, err error, errorType ErrorType, attributes ...attribute.KeyValue) {
	if span == nil || err == nil {
		return
	}

	span.RecordError(err)
	span.SetAttributes(
		attribute.String("error.type", string(errorType)),
		attribute.String("error.message", TruncateString(err.Error(), DefaultMaxLength)),
	)
	if len(attributes) > 0 {
		span.SetAttributes(attributes...)
	}
	span.SetStatus(codes.Error, err.Error())
}

// RecordHTTPError 专门记录HTTP错误
func RecordHTTPError(span trace.Span, err error, statusCode int) {
	if span == nil || err == nil {
		return
	}

	var errorCategory string
	switch {
	case statusCode >= 400 && statusCode < 500:
		errorCategory = "client_error"
	case statusCode >= 500:
		errorCategory = "server_error"
	default:
		errorCategory = "unknown"
	}

	RecordErrorWithInfo(span, err, ErrorTypeHTTP,
		attribute.Int("http.status_code", statusCode),
		attribute.String("error.category", errorCategory),
	)
}
