package processor

import (
	"context"
	"time"

	"cv-parser/internal/types"
)

//
// 处理流水线依赖的组件接口
//

// PDFExtractor PDF提取器接口
type PDFExtractor interface {
	// ExtractFromFile 从PDF文件提取文本和元数据
	ExtractFromFile(ctx context.Context, filePath string) (string, map[string]interface{}, error)
}

// ProfileExtractor 从纯文本中抽取结构化字段
type ProfileExtractor interface {
	Extract(ctx context.Context, text string) (*types.ExtractedProfile, error)
}

// ReportRenderer 将抽取结果写成PDF报告, returning the written path
type ReportRenderer interface {
	Render(profile *types.ExtractedProfile, outputDir, filename string) (string, error)
}

// FileProcessor 处理单个简历文件, used by the batch driver
type FileProcessor interface {
	ProcessFile(ctx context.Context, filePath, outputDir string) (*ProcessResult, error)
}

// ProcessResult 单个文件的处理结果
type ProcessResult struct {
	// 源文件路径
	File string
	// 生成的报告路径
	OutputPath string
	// 抽取出的字段
	Profile *types.ExtractedProfile
	// 提取器返回的元数据
	Metadata map[string]interface{}
	// 处理耗时
	Duration time.Duration
}
