package processor

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"cv-parser/internal/types"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFileProcessor 按文件名返回预设结果
type stubFileProcessor struct {
	mu       sync.Mutex
	failures map[string]error
	onCall   func(file string)
	calls    []string
}

func (s *stubFileProcessor) ProcessFile(ctx context.Context, filePath, outputDir string) (*ProcessResult, error) {
	s.mu.Lock()
	s.calls = append(s.calls, filepath.Base(filePath))
	s.mu.Unlock()
	if s.onCall != nil {
		s.onCall(filePath)
	}
	if err, ok := s.failures[filepath.Base(filePath)]; ok {
		return nil, err
	}
	return &ProcessResult{
		File:       filePath,
		OutputPath: filepath.Join(outputDir, OutputFilename(filePath, "_information.pdf")),
		Profile:    &types.ExtractedProfile{Skills: []string{}},
	}, nil
}

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("%PDF-1.3"), 0644))
	}
}

func TestListInputs(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "b.pdf", "a.pdf", "notes.txt", "SCAN.PDF", "c.pdf.bak")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.pdf"), 0755))
	touch(t, filepath.Join(dir, "nested.pdf"), "deep.pdf")

	files, err := ListInputs(dir, ".pdf")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.pdf"), filepath.Join(dir, "b.pdf")}, files)
}

func TestListInputsMissingDir(t *testing.T) {
	_, err := ListInputs(filepath.Join(t.TempDir(), "missing"), ".pdf")
	assert.ErrorIs(t, err, ErrListInputDirFailed)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBatchRunnerIsolatesFailures(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")
	touch(t, inputDir, "c.pdf", "a.pdf", "b.pdf")

	stub := &stubFileProcessor{failures: map[string]error{
		"b.pdf": NewExtractTextError("b.pdf", "malformed"),
	}}
	report, err := NewBatchRunner(stub).Run(context.Background(), inputDir, outputDir)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.pdf", "b.pdf", "c.pdf"}, stub.calls, "按文件名顺序处理, 失败不影响后续文件")
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Succeeded)
	assert.Equal(t, 1, report.Failed())
	assert.Equal(t, 0, report.Skipped)
	assert.Equal(t, filepath.Join(inputDir, "b.pdf"), report.Failures[0].File)
	assert.Equal(t, "extract_text", report.Failures[0].Stage)
	assert.Equal(t, []string{
		filepath.Join(outputDir, "a_information.pdf"),
		filepath.Join(outputDir, "c_information.pdf"),
	}, report.Outputs)

	_, err = uuid.Parse(report.RunID)
	assert.NoError(t, err)
	assert.False(t, report.FinishedAt.Before(report.StartedAt))

	info, err := os.Stat(outputDir)
	require.NoError(t, err, "输出目录应被创建")
	assert.True(t, info.IsDir())
}

func TestBatchRunnerUnknownErrorStage(t *testing.T) {
	inputDir := t.TempDir()
	touch(t, inputDir, "a.pdf")

	stub := &stubFileProcessor{failures: map[string]error{"a.pdf": errors.New("plain error")}}
	report, err := NewBatchRunner(stub).Run(context.Background(), inputDir, t.TempDir())
	require.NoError(t, err)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "unknown", report.Failures[0].Stage)
}

func TestBatchRunnerCancellation(t *testing.T) {
	inputDir := t.TempDir()
	touch(t, inputDir, "a.pdf", "b.pdf", "c.pdf")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stub := &stubFileProcessor{onCall: func(string) { cancel() }}

	report, err := NewBatchRunner(stub).Run(ctx, inputDir, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, []string{"a.pdf"}, stub.calls)
	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, 2, report.Skipped)
	assert.Empty(t, report.Failures)
}

func TestBatchRunnerCancelledMidDocument(t *testing.T) {
	inputDir := t.TempDir()
	touch(t, inputDir, "a.pdf", "b.pdf")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stub := &stubFileProcessor{
		failures: map[string]error{"a.pdf": context.Canceled},
		onCall:   func(string) { cancel() },
	}

	report, err := NewBatchRunner(stub).Run(ctx, inputDir, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 0, report.Succeeded)
	assert.Equal(t, 2, report.Skipped)
	assert.Empty(t, report.Failures)
}

func TestBatchRunnerMissingInputDir(t *testing.T) {
	_, err := NewBatchRunner(&stubFileProcessor{}).Run(context.Background(), filepath.Join(t.TempDir(), "nope"), t.TempDir())
	assert.ErrorIs(t, err, ErrListInputDirFailed)
}

func TestBatchRunnerEmptyDir(t *testing.T) {
	report, err := NewBatchRunner(&stubFileProcessor{}).Run(context.Background(), t.TempDir(), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 0, report.Total)
	assert.NotNil(t, report.Failures)
	assert.NotNil(t, report.Outputs)
}

func TestWriteReport(t *testing.T) {
	report := &types.BatchReport{
		RunID:     "run-1",
		Total:     2,
		Succeeded: 1,
		Outputs:   []string{"out/a_information.pdf"},
		Failures:  []types.FileFailure{{File: "in/b.pdf", Stage: "render", Error: "disk full"}},
	}
	path := filepath.Join(t.TempDir(), "reports", "run.json")
	require.NoError(t, WriteReport(report, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "run-1", decoded["run_id"])
	failures := decoded["failures"].([]interface{})
	require.Len(t, failures, 1)
	assert.Equal(t, "render", failures[0].(map[string]interface{})["stage"])
}
