package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"cv-parser/internal/constants"
	"cv-parser/internal/types"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// BatchRunner 遍历输入目录, 逐个处理简历. One document's failure never stops the run.
type BatchRunner struct {
	processor FileProcessor
	logger    zerolog.Logger
}

// NewBatchRunner 创建批处理驱动
func NewBatchRunner(processor FileProcessor, options ...BatchOption) *BatchRunner {
	b := &BatchRunner{
		processor: processor,
		logger:    zerolog.Nop(),
	}
	for _, option := range options {
		option(b)
	}
	return b
}

// ListInputs returns the files directly inside dir whose names end in ext, sorted by name.
func ListInputs(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListInputDirFailed, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ext) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// Run 处理 inputDir 下所有PDF, 报告写入 outputDir.
// An error is returned only when the run cannot start; per-file failures land in the report.
// When ctx is cancelled the remaining files are counted as skipped.
func (b *BatchRunner) Run(ctx context.Context, inputDir, outputDir string) (*types.BatchReport, error) {
	files, err := ListInputs(inputDir, constants.InputExtension)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("创建输出目录 %s 失败: %w", outputDir, err)
	}

	report := &types.BatchReport{
		RunID:     uuid.New().String(),
		InputDir:  inputDir,
		OutputDir: outputDir,
		StartedAt: time.Now(),
		Total:     len(files),
		Outputs:   []string{},
		Failures:  []types.FileFailure{},
	}
	log := b.logger.With().Str("run_id", report.RunID).Logger()
	log.Info().Str("input_dir", inputDir).Str("output_dir", outputDir).Int("files", len(files)).Msg("开始批量处理简历")

	for i, file := range files {
		if ctx.Err() != nil {
			report.Skipped = len(files) - i
			log.Warn().Int("skipped", report.Skipped).Msg("批处理被取消")
			break
		}

		result, err := b.processor.ProcessFile(ctx, file, outputDir)
		if err != nil {
			if ctx.Err() != nil {
				// interrupted mid-document, not a document fault
				report.Skipped = len(files) - i
				log.Warn().Err(err).Int("skipped", report.Skipped).Msg("批处理被取消")
				break
			}
			stage := Stage(err)
			if stage == "" {
				stage = "unknown"
			}
			report.Failures = append(report.Failures, types.FileFailure{
				File:  file,
				Stage: stage,
				Error: err.Error(),
			})
			log.Error().Err(err).Str("file", file).Str("stage", stage).Msg("简历处理失败，跳过")
			continue
		}
		report.Succeeded++
		report.Outputs = append(report.Outputs, result.OutputPath)
	}

	report.FinishedAt = time.Now()
	log.Info().
		Int("total", report.Total).
		Int("succeeded", report.Succeeded).
		Int("failed", report.Failed()).
		Int("skipped", report.Skipped).
		Dur("elapsed", report.FinishedAt.Sub(report.StartedAt)).
		Msg("批量处理结束")
	return report, nil
}

// WriteReport 将批处理结果以JSON格式写入 path
func WriteReport(report *types.BatchReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化批处理报告失败: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("创建报告目录失败: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("写入批处理报告失败: %w", err)
	}
	return nil
}
