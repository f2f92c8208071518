package render

import (
	"fmt"
	"os"
	"path/filepath"

	"cv-parser/internal/constants"
	"cv-parser/internal/types"

	"github.com/go-pdf/fpdf"
)

const (
	// letterHeight US-letter page height in points
	letterHeight = 792.0
	reportTitle  = "Resume information"
)

// Renderer draws profiles into single-page US-letter PDFs.
type Renderer struct {
	compress bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithCompression toggles content stream compression. On by default.
func WithCompression(on bool) Option {
	return func(r *Renderer) {
		r.compress = on
	}
}

// NewRenderer 创建PDF报告渲染器
func NewRenderer(options ...Option) *Renderer {
	r := &Renderer{compress: true}
	for _, option := range options {
		option(r)
	}
	return r
}

// Render writes profile to outputDir/filename, creating outputDir when missing and
// replacing any existing file. It returns the written path.
func (r *Renderer) Render(profile *types.ExtractedProfile, outputDir, filename string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("创建输出目录 %s 失败: %w", outputDir, err)
	}
	outputPath := filepath.Join(outputDir, filename)

	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetCompression(r.compress)
	pdf.SetTitle(reportTitle, true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetFont(constants.ReportFontFamily, "", constants.ReportFontSize)

	// core fonts are cp1252; map UTF-8 input onto it
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, line := range Layout(profile) {
		pdf.Text(line.X, letterHeight-line.Y, tr(line.Text))
	}

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return "", fmt.Errorf("写入PDF %s 失败: %w", outputPath, err)
	}
	return outputPath, nil
}
