package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cv-parser/internal/config"
	"cv-parser/internal/extract"
	appLogger "cv-parser/internal/logger"
	"cv-parser/internal/nlp"
	"cv-parser/internal/parser"
	"cv-parser/internal/processor"
	"cv-parser/internal/render"
	"cv-parser/internal/skills"
	"cv-parser/internal/tracing"

	"github.com/spf13/pflag"
)

const (
	exitOK          = 0
	exitHadFailures = 1
	exitStartup     = 2
)

// 命令行参数, override config file and environment
var (
	configPath    = pflag.StringP("config", "c", "", "配置文件路径 (可选)")
	inputDir      = pflag.StringP("input", "i", "", "简历PDF所在目录")
	outputDir     = pflag.StringP("output", "o", "", "报告输出目录")
	skillsCatalog = pflag.StringP("skills", "s", "", "技能库文件 (每行一个技能)")
	workers       = pflag.IntP("workers", "w", 0, "技能匹配工作协程数, 0 表示CPU核数")
	extractorType = pflag.String("extractor", "", "PDF文本提取器: eino, ledongthuc, tika")
	nlpProvider   = pflag.String("nlp", "", "词性标注: prose, displacy")
	reportPath    = pflag.String("report", "", "将批处理结果以JSON写入该文件")
)

func main() {
	os.Exit(run())
}

func run() int {
	pflag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		return exitStartup
	}
	applyFlags(cfg)

	appLogger.Init(appLogger.Config{
		Level:        cfg.Logger.Level,
		Format:       cfg.Logger.Format,
		TimeFormat:   cfg.Logger.TimeFormat,
		ReportCaller: cfg.Logger.ReportCaller,
	})

	if err := cfg.Validate(); err != nil {
		appLogger.Error().Err(err).Msg("配置校验失败")
		return exitStartup
	}

	appLogger.Debug().
		Str("input_dir", cfg.InputDir).
		Str("output_dir", cfg.OutputDir).
		Str("extractor", cfg.Extractor.Type).
		Str("nlp", cfg.NLP.Provider).
		Msg("配置加载完成")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.InitProvider(ctx, cfg.Tracing)
	if err != nil {
		appLogger.Error().Err(err).Msg("初始化链路追踪失败")
		return exitStartup
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			appLogger.Warn().Err(err).Msg("关闭链路追踪失败")
		}
	}()

	// 技能库与匹配工作池整个进程只创建一次
	catalog, err := skills.LoadCatalog(cfg.SkillsCatalog)
	if err != nil {
		appLogger.Error().Err(err).Str("path", cfg.SkillsCatalog).Msg("加载技能库失败")
		return exitStartup
	}
	matcher := skills.NewMatcher(catalog, cfg.Workers)
	defer matcher.Close()
	appLogger.Info().Int("skills", catalog.Len()).Int("workers", matcher.Workers()).Msg("技能库加载成功")

	pdfExtractor, err := parser.BuildTextExtractor(ctx, cfg.Extractor, appLogger.Logger)
	if err != nil {
		appLogger.Error().Err(err).Msg("初始化PDF提取器失败")
		return exitStartup
	}

	tagger, err := nlp.BuildTagger(cfg.NLP, appLogger.Logger)
	if err != nil {
		appLogger.Error().Err(err).Msg("初始化词性标注器失败")
		return exitStartup
	}

	resumeProcessor := processor.NewResumeProcessor(
		pdfExtractor,
		extract.NewExtractor(nlp.NewAnalyzer(tagger), matcher),
		render.NewRenderer(),
		processor.WithLogger(appLogger.With().Str("component", "processor").Logger()),
		processor.WithOutputSuffix(cfg.OutputSuffix),
	)
	runner := processor.NewBatchRunner(resumeProcessor,
		processor.WithBatchLogger(appLogger.With().Str("component", "batch").Logger()))

	report, err := runner.Run(ctx, cfg.InputDir, cfg.OutputDir)
	if err != nil {
		appLogger.Error().Err(err).Msg("批处理无法启动")
		return exitStartup
	}

	if *reportPath != "" {
		if err := processor.WriteReport(report, *reportPath); err != nil {
			appLogger.Error().Err(err).Msg("写入批处理报告失败")
		}
	}

	fmt.Printf("处理完成: 共 %d 个文件, 成功 %d, 失败 %d, 跳过 %d\n",
		report.Total, report.Succeeded, report.Failed(), report.Skipped)
	for _, f := range report.Failures {
		fmt.Printf("  失败 [%s] %s: %s\n", f.Stage, f.File, f.Error)
	}

	if report.Failed() > 0 || report.Skipped > 0 {
		return exitHadFailures
	}
	return exitOK
}

// applyFlags 命令行参数优先于配置文件和环境变量
func applyFlags(cfg *config.Config) {
	if *inputDir != "" {
		cfg.InputDir = *inputDir
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	if *skillsCatalog != "" {
		cfg.SkillsCatalog = *skillsCatalog
	}
	if pflag.CommandLine.Changed("workers") {
		cfg.Workers = *workers
	}
	if *extractorType != "" {
		cfg.Extractor.Type = *extractorType
	}
	if *nlpProvider != "" {
		cfg.NLP.Provider = *nlpProvider
	}
}
