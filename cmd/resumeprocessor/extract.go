package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cv-parser/internal/config"
	"cv-parser/internal/logger"
	"cv-parser/internal/parser"

	"github.com/spf13/pflag"
)

// 定义提取命令的命令行参数
var (
	extractSaveFile = pflag.String("extract-save", "", "保存提取内容到文件")
)

// resolveInput 获取文件的绝对路径并检查文件是否存在
func resolveInput() string {
	absPath, err := filepath.Abs(*pdfFilePath)
	if err != nil {
		fmt.Printf("无法获取文件的绝对路径: %v\n", err)
		os.Exit(1)
	}
	if _, err := os.Stat(absPath); err != nil {
		fmt.Printf("无法访问文件 %s: %v\n", absPath, err)
		os.Exit(1)
	}
	return absPath
}

func buildExtractor(ctx context.Context) parser.TextExtractor {
	extractor, err := parser.BuildTextExtractor(ctx, config.ExtractorConfig{
		Type: *extractorType,
		Tika: config.TikaConfig{ServerURL: *tikaURL, Timeout: 60},
	}, logger.Logger)
	if err != nil {
		fmt.Printf("创建PDF提取器失败: %v\n", err)
		os.Exit(1)
	}
	return extractor
}

// 处理提取文本命令
func handleExtractCommand() {
	absPath := resolveInput()
	fmt.Printf("准备处理PDF文件: %s\n", absPath)

	// 创建上下文，添加超时以防止无限等待
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	extractor := buildExtractor(ctx)

	fmt.Println("开始从PDF提取文本...")
	startTime := time.Now()

	text, metadata, err := extractor.ExtractFromFile(ctx, absPath)
	if err != nil {
		fmt.Printf("提取PDF文本失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("提取完成! 耗时: %v\n", time.Since(startTime))

	// 显示提取结果
	fmt.Printf("\n===== 提取的文本 (总计 %d 字符) =====\n", len(text))
	displayText := text
	if *maxLen >= 0 && len(text) > *maxLen {
		displayText = text[:*maxLen] + "...(已截断，使用 --maxlen 参数显示更多)"
	}
	fmt.Println(displayText)

	fmt.Println("\n===== 元数据 =====")
	for k, v := range metadata {
		fmt.Printf("  %s: %v\n", k, v)
	}

	if *extractSaveFile != "" {
		if err := os.WriteFile(*extractSaveFile, []byte(text), 0644); err != nil {
			fmt.Printf("保存到文件失败: %v\n", err)
		} else {
			fmt.Printf("文本已保存到: %s\n", *extractSaveFile)
		}
	}
}
