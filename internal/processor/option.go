package processor

import (
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

// ProcessorOption 处理器选项函数类型
type ProcessorOption func(*ResumeProcessor)

// WithLogger 设置日志记录器
func WithLogger(logger zerolog.Logger) ProcessorOption {
	return func(p *ResumeProcessor) {
		p.logger = logger
	}
}

// WithOutputSuffix 设置输出文件名后缀, e.g. "_information.pdf"
func WithOutputSuffix(suffix string) ProcessorOption {
	return func(p *ResumeProcessor) {
		if suffix != "" {
			p.outputSuffix = suffix
		}
	}
}

// WithTracer 设置链路追踪器
func WithTracer(tracer trace.Tracer) ProcessorOption {
	return func(p *ResumeProcessor) {
		if tracer != nil {
			p.tracer = tracer
		}
	}
}

// BatchOption 批处理选项函数类型
type BatchOption func(*BatchRunner)

// WithBatchLogger 设置批处理日志记录器
func WithBatchLogger(logger zerolog.Logger) BatchOption {
	return func(b *BatchRunner) {
		b.logger = logger
	}
}
