package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by viper.
const EnvPrefix = "MICROBENCH"

// Config is the full set of options shared by all benchmark commands.
type Config struct {
	Verbose         bool   `mapstructure:"verbose"`
	LogFile         string `mapstructure:"log_file"`
	Format          string `mapstructure:"format" validate:"oneof=text json yaml markdown"`
	Warmup          int    `mapstructure:"warmup" validate:"gte=0"`
	GCBetweenTrials bool   `mapstructure:"gc_between_trials"`

	Call    CallConfig    `mapstructure:"call"`
	Alloc   AllocConfig   `mapstructure:"alloc"`
	PDF     PDFConfig     `mapstructure:"pdf"`
	History HistoryConfig `mapstructure:"history"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

type CallConfig struct {
	Loops    int    `mapstructure:"loops" validate:"gt=0"`
	Baseline string `mapstructure:"baseline" validate:"required"`
}

type AllocConfig struct {
	Count    int    `mapstructure:"count" validate:"gt=0"`
	NextSize int    `mapstructure:"next_size" validate:"gt=0"`
	MaxSize  int    `mapstructure:"max_size" validate:"gtefield=NextSize"`
	Baseline string `mapstructure:"baseline" validate:"required"`
}

type PDFConfig struct {
	File     string `mapstructure:"file"`
	Page     int    `mapstructure:"page" validate:"gte=0"`
	Echo     bool   `mapstructure:"echo"`
	Baseline string `mapstructure:"baseline" validate:"required"`
}

// HistoryConfig controls saving runs and comparing against the last one.
type HistoryConfig struct {
	Type          string  `mapstructure:"type" validate:"oneof=json sqlite postgres"`
	Path          string  `mapstructure:"path"`
	Save          bool    `mapstructure:"save"`
	Compare       bool    `mapstructure:"compare"`
	Threshold     float64 `mapstructure:"threshold" validate:"gte=0"`
	FailThreshold float64 `mapstructure:"fail_threshold" validate:"gte=0"`
}

type MetricsConfig struct {
	Textfile string `mapstructure:"textfile"`
	PushURL  string `mapstructure:"push_url" validate:"omitempty,url"`
	Job      string `mapstructure:"job" validate:"required"`
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("verbose", false)
	v.SetDefault("log_file", "")
	v.SetDefault("format", "text")
	v.SetDefault("warmup", 0)
	v.SetDefault("gc_between_trials", true)

	v.SetDefault("call.loops", 100_000_000)
	v.SetDefault("call.baseline", "direct_call")

	v.SetDefault("alloc.count", 10_000_000)
	v.SetDefault("alloc.next_size", 64)
	v.SetDefault("alloc.max_size", 128)
	v.SetDefault("alloc.baseline", "fast_pool_allocator")

	v.SetDefault("pdf.file", "")
	v.SetDefault("pdf.page", 0)
	v.SetDefault("pdf.echo", false)
	v.SetDefault("pdf.baseline", "ledongthuc_pdf")

	v.SetDefault("history.type", "json")
	v.SetDefault("history.path", "")
	v.SetDefault("history.save", false)
	v.SetDefault("history.compare", false)
	v.SetDefault("history.threshold", 10.0)
	v.SetDefault("history.fail_threshold", 0.0)

	v.SetDefault("metrics.textfile", "")
	v.SetDefault("metrics.push_url", "")
	v.SetDefault("metrics.job", "microbench")
}

// Load reads .env, the optional config file and the environment into v.
// A missing config file is not an error unless cfgFile names it explicitly.
func Load(v *viper.Viper, cfgFile string) error {
	// .env is optional
	_ = godotenv.Load()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		fmt.Fprintln(os.Stderr, "Using config file:", v.ConfigFileUsed())
	}
	return nil
}

// Decode unmarshals v into a Config and validates it.
func Decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
