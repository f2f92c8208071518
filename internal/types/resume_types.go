package types

import "time"

// ResumeDocument is one input PDF and the raw text extracted from it.
// It only lives for a single pass through the pipeline.
type ResumeDocument struct {
	// SourcePath 源PDF文件路径
	SourcePath string
	// Text 提取出的原始文本
	Text string
	// Metadata extractor-provided metadata (page count, timings ...)
	Metadata map[string]interface{}
}

// ExtractedProfile 从一份简历中抽取出的结构化字段.
// A nil field means no extraction pattern matched; an empty string never stands in for "not found".
type ExtractedProfile struct {
	Name   *string  `json:"name,omitempty"`
	Phone  *string  `json:"phone,omitempty"`
	Email  *string  `json:"email,omitempty"`
	Skills []string `json:"skills"` // canonical catalog spelling, catalog order, no duplicates
}

// NewExtractedProfile builds a profile from extractor results. Values with ok=false stay nil.
func NewExtractedProfile(name string, nameOK bool, phone string, phoneOK bool, email string, emailOK bool, skills []string) *ExtractedProfile {
	p := &ExtractedProfile{Skills: skills}
	if nameOK {
		p.Name = &name
	}
	if phoneOK {
		p.Phone = &phone
	}
	if emailOK {
		p.Email = &email
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	return p
}

// ValueOr returns *v or def when v is nil.
func ValueOr(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}

// FileFailure 单个文件处理失败的记录
type FileFailure struct {
	File  string `json:"file"`
	Stage string `json:"stage"`
	Error string `json:"error"`
}

// BatchReport 批处理运行结果汇总
type BatchReport struct {
	RunID      string        `json:"run_id"`
	InputDir   string        `json:"input_dir"`
	OutputDir  string        `json:"output_dir"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Total      int           `json:"total"`
	Succeeded  int           `json:"succeeded"`
	Skipped    int           `json:"skipped"` // not attempted because the run was cancelled
	Outputs    []string      `json:"outputs"`
	Failures   []FileFailure `json:"failures"`
}

// Failed returns the number of documents that failed.
func (r *BatchReport) Failed() int {
	return len(r.Failures)
}
