// Command resumeprocessor inspects a single resume: the raw extracted text or the extracted profile.
package main

import (
	"fmt"
	"os"

	"cv-parser/internal/logger"

	"github.com/spf13/pflag"
)

// 命令行参数定义
var (
	pdfFilePath   = pflag.String("pdf", "", "PDF简历文件路径 (必填)")
	maxLen        = pflag.Int("maxlen", 1000, "显示的文本最大长度，设为-1显示全部")
	command       = pflag.String("cmd", "extract", "执行的命令: extract=仅提取文本, profile=抽取字段")
	extractorType = pflag.String("extractor", "ledongthuc", "PDF文本提取器: eino, ledongthuc, tika")
	tikaURL       = pflag.String("tika-url", "http://localhost:9998", "Tika服务器地址 (extractor=tika 时使用)")
)

func main() {
	// 解析命令行参数
	pflag.Parse()
	logger.Init(logger.Config{Level: "warn", Format: "pretty"})

	if *pdfFilePath == "" {
		fmt.Println("错误: 必须提供PDF文件路径。使用 --pdf 参数。")
		pflag.Usage()
		os.Exit(1)
	}

	// 根据命令执行不同的功能
	switch *command {
	case "extract":
		handleExtractCommand()
	case "profile":
		handleProfileCommand()
	default:
		fmt.Printf("错误: 未知命令 '%s'。支持的命令: extract, profile\n", *command)
		pflag.Usage()
		os.Exit(1)
	}
}
