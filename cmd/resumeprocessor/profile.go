package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"cv-parser/internal/config"
	"cv-parser/internal/constants"
	"cv-parser/internal/extract"
	"cv-parser/internal/logger"
	"cv-parser/internal/nlp"
	"cv-parser/internal/skills"

	"github.com/spf13/pflag"
)

var (
	profileSkills = pflag.String("skills", constants.DefaultSkillsCatalog, "技能库文件")
	nlpProvider   = pflag.String("nlp", constants.NLPProse, "词性标注: prose, displacy")
	displacyURL   = pflag.String("displacy-url", "http://localhost:8000", "displaCy服务地址 (nlp=displacy 时使用)")
	displacyModel = pflag.String("displacy-model", "en", "displaCy模型名称")
)

func buildTagger() nlp.Tagger {
	tagger, err := nlp.BuildTagger(config.NLPConfig{
		Provider: *nlpProvider,
		Displacy: config.DisplacyConfig{ServerURL: *displacyURL, Model: *displacyModel, Timeout: 30},
	}, logger.Logger)
	if err != nil {
		fmt.Printf("创建词性标注器失败: %v\n", err)
		os.Exit(1)
	}
	return tagger
}

// 处理字段抽取命令: 输出JSON格式的抽取结果, no PDF report is written
func handleProfileCommand() {
	absPath := resolveInput()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	catalog, err := skills.LoadCatalog(*profileSkills)
	if err != nil {
		fmt.Printf("加载技能库失败: %v\n", err)
		os.Exit(1)
	}
	matcher := skills.NewMatcher(catalog, 0)
	defer matcher.Close()

	text, _, err := buildExtractor(ctx).ExtractFromFile(ctx, absPath)
	if err != nil {
		fmt.Printf("提取PDF文本失败: %v\n", err)
		os.Exit(1)
	}

	profile, err := extract.NewExtractor(nlp.NewAnalyzer(buildTagger()), matcher).Extract(ctx, text)
	if err != nil {
		fmt.Printf("抽取字段失败: %v\n", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		fmt.Printf("序列化结果失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
