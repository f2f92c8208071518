package processor

import (
	"errors"
	"fmt"
)

// 定义基础错误类型
var (
	ErrExtractTextFailed  = errors.New("提取简历文本失败")
	ErrAnalyzeFailed      = errors.New("简历文本分析失败")
	ErrMatchSkillsFailed  = errors.New("技能匹配失败")
	ErrRenderFailed       = errors.New("生成报告失败")
	ErrPipelinePanic      = errors.New("处理流程异常中断")
	ErrListInputDirFailed = errors.New("读取输入目录失败")
)

// ResumeProcessError 包含详细错误信息的自定义错误
type ResumeProcessError struct {
	File    string
	Op      string
	BaseErr error
	Detail  string
}

func (e *ResumeProcessError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (操作:%s, 文件:%s): %s", e.BaseErr, e.Op, e.File, e.Detail)
	}
	return fmt.Sprintf("%s (操作:%s, 文件:%s)", e.BaseErr, e.Op, e.File)
}

func (e *ResumeProcessError) Unwrap() error {
	return e.BaseErr
}

// Is 实现 errors.Is 接口以支持错误比较
func (e *ResumeProcessError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// Stage returns the pipeline stage that failed, "" for foreign errors.
func Stage(err error) string {
	var perr *ResumeProcessError
	if errors.As(err, &perr) {
		return perr.Op
	}
	return ""
}

// 错误构造函数
func NewExtractTextError(file, detail string) error {
	return &ResumeProcessError{
		File:    file,
		Op:      "extract_text",
		BaseErr: ErrExtractTextFailed,
		Detail:  detail,
	}
}

func NewAnalyzeError(file, detail string) error {
	return &ResumeProcessError{
		File:    file,
		Op:      "analyze",
		BaseErr: ErrAnalyzeFailed,
		Detail:  detail,
	}
}

func NewMatchSkillsError(file, detail string) error {
	return &ResumeProcessError{
		File:    file,
		Op:      "match_skills",
		BaseErr: ErrMatchSkillsFailed,
		Detail:  detail,
	}
}

func NewRenderError(file, detail string) error {
	return &ResumeProcessError{
		File:    file,
		Op:      "render",
		BaseErr: ErrRenderFailed,
		Detail:  detail,
	}
}

func NewPanicError(file, detail string) error {
	return &ResumeProcessError{
		File:    file,
		Op:      "panic",
		BaseErr: ErrPipelinePanic,
		Detail:  detail,
	}
}
