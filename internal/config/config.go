package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"cv-parser/internal/constants"

	"gopkg.in/yaml.v3"
)

// Config 应用程序配置
type Config struct {
	InputDir      string `yaml:"input_dir"`
	OutputDir     string `yaml:"output_dir"`
	SkillsCatalog string `yaml:"skills_catalog"`
	OutputSuffix  string `yaml:"output_suffix"`
	// Workers 技能匹配工作池大小，0 表示使用CPU核数
	Workers int `yaml:"workers"`

	Extractor ExtractorConfig `yaml:"extractor"`
	NLP       NLPConfig       `yaml:"nlp"`
	Logger    LoggerConfig    `yaml:"logger"`
	Tracing   TracingConfig   `yaml:"tracing"`
}

// ExtractorConfig selects the PDF-to-text backend.
type ExtractorConfig struct {
	Type string     `yaml:"type"` // eino, ledongthuc, tika
	Tika TikaConfig `yaml:"tika"`
}

// TikaConfig Tika服务器配置结构
type TikaConfig struct {
	ServerURL string `yaml:"server_url"`      // Tika服务器URL
	Timeout   int    `yaml:"timeout_seconds"` // 超时时间(秒)
}

// NLPConfig selects the part-of-speech tagger.
type NLPConfig struct {
	Provider string         `yaml:"provider"` // prose, displacy
	Displacy DisplacyConfig `yaml:"displacy"`
}

// DisplacyConfig spaCy displaCy 服务配置
type DisplacyConfig struct {
	ServerURL string `yaml:"server_url"`
	Model     string `yaml:"model"`
	Timeout   int    `yaml:"timeout_seconds"`
}

// LoggerConfig 日志配置
type LoggerConfig struct {
	Level        string `yaml:"level"`         // debug, info, warn, error
	Format       string `yaml:"format"`        // json, pretty
	TimeFormat   string `yaml:"time_format"`   // 时间格式
	ReportCaller bool   `yaml:"report_caller"` // 是否报告调用位置
}

// TracingConfig OpenTelemetry 配置
type TracingConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Endpoint    string `yaml:"endpoint"` // OTLP gRPC endpoint, e.g. localhost:4317
	Insecure    bool   `yaml:"insecure"`
	ServiceName string `yaml:"service_name"`
}

// LoadConfig 从文件加载配置. An empty path returns the defaults with environment overrides applied.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("解析配置文件失败: %w", err)
		}
	}

	applyEnv(cfg)
	cfg.applyDefaults()
	return cfg, nil
}

// DefaultConfig returns a config that processes ./resumes into ./output with the eino extractor.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.InputDir == "" {
		c.InputDir = constants.DefaultInputDir
	}
	if c.OutputDir == "" {
		c.OutputDir = constants.DefaultOutputDir
	}
	if c.SkillsCatalog == "" {
		c.SkillsCatalog = constants.DefaultSkillsCatalog
	}
	if c.OutputSuffix == "" {
		c.OutputSuffix = constants.DefaultOutputSuffix
	}
	if c.Extractor.Type == "" {
		c.Extractor.Type = constants.ExtractorEino
	}
	if c.Extractor.Tika.Timeout == 0 {
		c.Extractor.Tika.Timeout = 60
	}
	if c.NLP.Provider == "" {
		c.NLP.Provider = constants.NLPProse
	}
	if c.NLP.Displacy.Model == "" {
		c.NLP.Displacy.Model = "en"
	}
	if c.NLP.Displacy.Timeout == 0 {
		c.NLP.Displacy.Timeout = 30
	}
	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}
	if c.Logger.Format == "" {
		c.Logger.Format = "json"
	}
	if c.Tracing.ServiceName == "" {
		c.Tracing.ServiceName = "cv-parser"
	}
}

// 从环境变量覆盖配置（如果存在）
func applyEnv(c *Config) {
	if v := os.Getenv("CVPARSER_INPUT_DIR"); v != "" {
		c.InputDir = v
	}
	if v := os.Getenv("CVPARSER_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("CVPARSER_SKILLS_CATALOG"); v != "" {
		c.SkillsCatalog = v
	}
	if v := os.Getenv("CVPARSER_LOG_LEVEL"); v != "" {
		c.Logger.Level = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		c.Tracing.Endpoint = v
	}
}

// Validate 校验配置
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.InputDir) == "" {
		errs = append(errs, errors.New("input_dir is required"))
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		errs = append(errs, errors.New("output_dir is required"))
	}
	if strings.TrimSpace(c.SkillsCatalog) == "" {
		errs = append(errs, errors.New("skills_catalog is required"))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must be >= 0, got %d", c.Workers))
	}

	switch c.Extractor.Type {
	case constants.ExtractorEino, constants.ExtractorLedongthuc:
	case constants.ExtractorTika:
		if c.Extractor.Tika.ServerURL == "" {
			errs = append(errs, errors.New("extractor.tika.server_url is required for the tika extractor"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown extractor type %q", c.Extractor.Type))
	}

	switch c.NLP.Provider {
	case constants.NLPProse:
	case constants.NLPDisplacy:
		if c.NLP.Displacy.ServerURL == "" {
			errs = append(errs, errors.New("nlp.displacy.server_url is required for the displacy provider"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown nlp provider %q", c.NLP.Provider))
	}

	if c.Tracing.Enabled && c.Tracing.Endpoint == "" {
		errs = append(errs, errors.New("tracing.endpoint is required when tracing is enabled"))
	}

	return errors.Join(errs...)
}
