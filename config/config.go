package config

import (
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/nzai/finstat/constants"
)

// EnvPrefix environment variable prefix of overrides, eg FINSTAT_MOPS_ENDPOINT
const EnvPrefix = "finstat"

// Duration toml and env friendly duration, eg "5s"
type Duration struct {
	time.Duration
}

// UnmarshalText parse duration text
func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}

	d.Duration = duration
	return nil
}

// MarshalText format duration text
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config global config
type Config struct {
	Mops struct {
		Endpoint  string   `toml:"endpoint" envconfig:"endpoint" validate:"required,url"`
		ReportID  string   `toml:"report_id" envconfig:"report_id" validate:"required"`
		UserAgent string   `toml:"user_agent" envconfig:"user_agent"`
		Timeout   Duration `toml:"timeout" envconfig:"timeout"`
	} `toml:"mops" envconfig:"mops"`
	Crawl struct {
		Pacing   string   `toml:"pacing" envconfig:"pacing" validate:"oneof=fixed rate none"`
		Interval Duration `toml:"interval" envconfig:"interval"`
		Burst    int      `toml:"burst" envconfig:"burst" validate:"min=1"`
		Parallel int      `toml:"parallel" envconfig:"parallel" validate:"min=1,max=16"`
	} `toml:"crawl" envconfig:"crawl"`
	Yahoo struct {
		Endpoint string   `toml:"endpoint" envconfig:"endpoint" validate:"required,url"`
		Timeout  Duration `toml:"timeout" envconfig:"timeout"`
	} `toml:"yahoo" envconfig:"yahoo"`
	Log struct {
		Level      string `toml:"level" envconfig:"level" validate:"oneof=debug info warn error"`
		File       string `toml:"file" envconfig:"file"`
		MaxSize    int    `toml:"max_size" envconfig:"max_size" validate:"min=1"`
		MaxBackups int    `toml:"max_backups" envconfig:"max_backups" validate:"min=0"`
		MaxAge     int    `toml:"max_age" envconfig:"max_age" validate:"min=0"`
	} `toml:"log" envconfig:"log"`
}

// Default config used when no file given
func Default() *Config {
	c := new(Config)
	c.Mops.Endpoint = constants.MopsEndpoint
	c.Mops.ReportID = constants.MopsReportID
	c.Mops.Timeout = Duration{time.Second * 30}
	c.Crawl.Pacing = "fixed"
	c.Crawl.Interval = Duration{constants.RequestInterval}
	c.Crawl.Burst = 1
	c.Crawl.Parallel = constants.DefaultParallel
	c.Yahoo.Endpoint = constants.YahooEndpoint
	c.Yahoo.Timeout = Duration{time.Second * 30}
	c.Log.Level = "info"
	c.Log.MaxSize = 100
	c.Log.MaxBackups = 3
	c.Log.MaxAge = 28
	return c
}

// Valid validate config
func (s Config) Valid() error {
	return validator.New().Struct(s)
}

var (
	currentConfig = Default()
)

// Get get current config
func Get() *Config {
	return currentConfig
}

// Parse parse config from file over defaults, then apply environment overrides
func Parse(filePath string) (*Config, error) {
	c := Default()
	if filePath != "" {
		_, err := toml.DecodeFile(filePath, c)
		if err != nil {
			return nil, err
		}
	}

	err := envconfig.Process(EnvPrefix, c)
	if err != nil {
		return nil, err
	}

	err = c.Valid()
	if err != nil {
		return nil, err
	}

	currentConfig = c
	return c, nil
}
