package processor // 简历字段抽取流水线: PDF -> 文本 -> 字段 -> PDF报告

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"cv-parser/internal/constants"
	"cv-parser/internal/extract"
	"cv-parser/internal/tracing"
	"cv-parser/internal/types"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ResumeProcessor 单个简历的处理流程
type ResumeProcessor struct {
	PDFExtractor PDFExtractor     // PDF文本提取接口
	Extractor    ProfileExtractor // 字段抽取接口
	Renderer     ReportRenderer   // 报告渲染接口

	outputSuffix string
	logger       zerolog.Logger
	tracer       trace.Tracer
}

var _ FileProcessor = (*ResumeProcessor)(nil)

// NewResumeProcessor 创建简历处理器
func NewResumeProcessor(pdfExtractor PDFExtractor, extractor ProfileExtractor, renderer ReportRenderer, options ...ProcessorOption) *ResumeProcessor {
	p := &ResumeProcessor{
		PDFExtractor: pdfExtractor,
		Extractor:    extractor,
		Renderer:     renderer,
		outputSuffix: constants.DefaultOutputSuffix,
		logger:       zerolog.Nop(),
		tracer:       tracing.Tracer(),
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// OutputFilename 根据输入文件名生成报告文件名: "<stem><suffix>"
func OutputFilename(inputPath, suffix string) string {
	base := filepath.Base(inputPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + suffix
}

// ProcessFile 提取一个PDF简历的字段并把报告写入 outputDir.
// A panic anywhere in the pipeline is returned as an ErrPipelinePanic error.
func (p *ResumeProcessor) ProcessFile(ctx context.Context, filePath, outputDir string) (result *ProcessResult, err error) {
	startTime := time.Now()
	log := p.logger.With().Str("file", filePath).Logger()

	ctx, span := p.tracer.Start(ctx, "ResumeProcessor.ProcessFile",
		trace.WithAttributes(
			attribute.String("file.path", tracing.SafePath(filePath)),
			attribute.String("output.dir", tracing.SafePath(outputDir)),
		))
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Bytes("stack", debug.Stack()).Msg("处理简历时发生panic")
			result = nil
			err = NewPanicError(filePath, fmt.Sprint(r))
			tracing.RecordError(span, err, tracing.ErrorTypePanic)
		}
	}()

	// 1. 提取文本
	text, metadata, err := p.PDFExtractor.ExtractFromFile(ctx, filePath)
	if err != nil {
		errType := tracing.ErrorTypeExtraction
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			errType = tracing.ErrorTypeIO
		}
		tracing.RecordError(span, err, errType)
		log.Warn().Err(err).Msg("提取PDF文本失败")
		return nil, NewExtractTextError(filePath, err.Error())
	}
	doc := &types.ResumeDocument{SourcePath: filePath, Text: text, Metadata: metadata}
	span.SetAttributes(attribute.Int("resume.text_length", len(doc.Text)))
	log.Debug().Int("chars", len(doc.Text)).Str("preview", tracing.SafeResumeContent(doc.Text)).Msg("文本提取完成")

	// 2. 抽取字段
	profile, err := p.Extractor.Extract(ctx, doc.Text)
	if err != nil {
		if errors.Is(err, extract.ErrAnalyze) {
			tracing.RecordError(span, err, tracing.ErrorTypeNLP)
			return nil, NewAnalyzeError(filePath, err.Error())
		}
		tracing.RecordError(span, err, tracing.ErrorTypeMatch)
		return nil, NewMatchSkillsError(filePath, err.Error())
	}
	span.SetAttributes(
		attribute.Bool("profile.name_found", profile.Name != nil),
		attribute.Bool("profile.phone_found", profile.Phone != nil),
		attribute.Bool("profile.email_found", profile.Email != nil),
		attribute.Int("profile.skill_count", len(profile.Skills)),
		attribute.String("profile.skills", tracing.SafeAttributeValue("profile.skills", strings.Join(profile.Skills, ","), tracing.DefaultMaxLength)),
	)
	// 敏感字段只写掩码值
	for key, value := range map[string]*string{
		"profile.name":  profile.Name,
		"profile.phone": profile.Phone,
		"profile.email": profile.Email,
	} {
		if value != nil {
			span.SetAttributes(attribute.String(key, tracing.SafeAttributeValue(key, *value, tracing.DefaultMaxLength)))
		}
	}

	// 3. 渲染报告
	outputPath, err := p.Renderer.Render(profile, outputDir, OutputFilename(filePath, p.outputSuffix))
	if err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeRender)
		return nil, NewRenderError(filePath, err.Error())
	}

	elapsed := time.Since(startTime)
	span.SetStatus(codes.Ok, "")
	log.Info().
		Str("output", outputPath).
		Str("name", tracing.MaskOptional(profile.Name)).
		Str("phone", tracing.MaskOptional(profile.Phone)).
		Str("email", tracing.MaskOptional(profile.Email)).
		Int("skills", len(profile.Skills)).
		Dur("elapsed", elapsed).
		Msg("简历处理完成")

	return &ProcessResult{
		File:       filePath,
		OutputPath: outputPath,
		Profile:    profile,
		Metadata:   doc.Metadata,
		Duration:   elapsed,
	}, nil
}
