package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

const (
	configFilePathENV = "CONFIG_FILE"
	defaultConfigFile = "configs/values_local.yaml"

	ModeLongOnly = "long_only"
	ModeDual     = "dual"
)

var (
	ErrMissingCredentials = errors.New("config: BYBIT_API_KEY / BYBIT_API_SECRET are required")
	ErrInvalidLeverage    = errors.New("config: leverage must be > 0")
)

// Config собирается один раз при старте и дальше только читается.
type Config struct {
	Service struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"service"`

	Exchange struct {
		BaseURL      string        `yaml:"base_url"`
		APIKey       string        `yaml:"api_key"`
		APISecret    string        `yaml:"api_secret"`
		RecvWindowMs int64         `yaml:"recv_window_ms"`
		Timeout      time.Duration `yaml:"timeout"`
		Category     string        `yaml:"category"`
		AccountType  string        `yaml:"account_type"`
		SettleCoin   string        `yaml:"settle_coin"`
	} `yaml:"exchange"`

	Trading struct {
		// long_only: принимаем только buy/exit; dual: ещё и sell (шорт).
		Mode          string  `yaml:"mode"`
		LongLeverage  float64 `yaml:"long_leverage"`
		ShortLeverage float64 `yaml:"short_leverage"`
	} `yaml:"trading"`

	Telegram struct {
		Token    string `yaml:"token"`
		ChatID   int64  `yaml:"chat_id"`
		Commands bool   `yaml:"commands"`
	} `yaml:"telegram"`

	Webhook struct {
		Path   string `yaml:"path"`
		Secret string `yaml:"secret"`
	} `yaml:"webhook"`

	DB string `yaml:"db_dsn"`

	Log struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"log"`

	Tracing struct {
		Enabled bool   `yaml:"enabled"`
		Host    string `yaml:"host"`
		Port    int    `yaml:"port"`
	} `yaml:"tracing"`
}

// RecvWindow в виде Duration.
func (c *Config) RecvWindow() time.Duration {
	return time.Duration(c.Exchange.RecvWindowMs) * time.Millisecond
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Service.Host, c.Service.Port)
}

func NewConfig() (*Config, error) {
	configFileName := os.Getenv(configFilePathENV)
	if configFileName == "" {
		configFileName = defaultConfigFile
	}
	return Load(configFileName)
}

// Load: дефолты → yaml-файл (если есть) → .env → переменные окружения.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	if path != "" {
		file, err := os.Open(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// конфиг целиком из окружения
		case err != nil:
			return nil, fmt.Errorf("open config file: %w", err)
		default:
			defer func() {
				_ = file.Close()
			}()
			if err := yaml.NewDecoder(file).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("decode config file %s: %w", path, err)
			}
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Service.Host = "0.0.0.0"
	cfg.Service.Port = 10000

	cfg.Exchange.BaseURL = "https://api.bybit.com"
	cfg.Exchange.RecvWindowMs = 5000
	cfg.Exchange.Timeout = 10 * time.Second
	cfg.Exchange.Category = "linear"
	cfg.Exchange.AccountType = "UNIFIED"
	cfg.Exchange.SettleCoin = "USDT"

	cfg.Trading.Mode = ModeDual
	cfg.Trading.LongLeverage = 3
	cfg.Trading.ShortLeverage = 1

	cfg.Telegram.Commands = true
	cfg.Webhook.Path = "/webhook"
	cfg.Log.Level = "info"
	cfg.Tracing.Host = "localhost"
	cfg.Tracing.Port = 6831
	return cfg
}

func applyEnv(cfg *Config) {
	v := viper.New()
	bind := func(key string, envs ...string) bool {
		_ = v.BindEnv(append([]string{key}, envs...)...)
		return v.IsSet(key)
	}

	if bind("exchange.api_key", "BYBIT_API_KEY") {
		cfg.Exchange.APIKey = v.GetString("exchange.api_key")
	}
	if bind("exchange.api_secret", "BYBIT_API_SECRET") {
		cfg.Exchange.APISecret = v.GetString("exchange.api_secret")
	}
	if bind("exchange.base_url", "BYBIT_BASE_URL") {
		cfg.Exchange.BaseURL = strings.TrimRight(v.GetString("exchange.base_url"), "/")
	}
	if bind("exchange.recv_window_ms", "BYBIT_RECV_WINDOW") {
		cfg.Exchange.RecvWindowMs = v.GetInt64("exchange.recv_window_ms")
	}
	if bind("telegram.token", "TELEGRAM_BOT_TOKEN", "TELEGRAM_TOKEN") {
		cfg.Telegram.Token = v.GetString("telegram.token")
	}
	if bind("telegram.chat_id", "TELEGRAM_CHAT_ID", "CHAT_ID") {
		cfg.Telegram.ChatID = v.GetInt64("telegram.chat_id")
	}
	if bind("service.port", "PORT") {
		cfg.Service.Port = v.GetInt("service.port")
	}
	if bind("trading.mode", "TRADE_MODE") {
		cfg.Trading.Mode = strings.ToLower(v.GetString("trading.mode"))
	}
	if bind("trading.long_leverage", "LONG_LEVERAGE") {
		cfg.Trading.LongLeverage = v.GetFloat64("trading.long_leverage")
	}
	if bind("trading.short_leverage", "SHORT_LEVERAGE") {
		cfg.Trading.ShortLeverage = v.GetFloat64("trading.short_leverage")
	}
	if bind("webhook.secret", "WEBHOOK_SECRET") {
		cfg.Webhook.Secret = v.GetString("webhook.secret")
	}
	if bind("db", "DATABASE_DSN") {
		cfg.DB = v.GetString("db")
	}
	if bind("log.level", "LOG_LEVEL") {
		cfg.Log.Level = v.GetString("log.level")
	}
	if bind("log.file", "LOG_FILE") {
		cfg.Log.File = v.GetString("log.file")
	}
	if bind("tracing.host", "JAEGER_HOST") {
		cfg.Tracing.Enabled = true
		cfg.Tracing.Host = v.GetString("tracing.host")
	}
	if bind("tracing.port", "JAEGER_PORT") {
		cfg.Tracing.Port = v.GetInt("tracing.port")
	}
}

// Validate: ошибки конфигурации фатальны на старте.
func (c *Config) Validate() error {
	if c.Exchange.APIKey == "" || c.Exchange.APISecret == "" {
		return ErrMissingCredentials
	}
	if c.Exchange.RecvWindowMs <= 0 {
		return fmt.Errorf("config: recv_window_ms must be > 0, got %d", c.Exchange.RecvWindowMs)
	}
	if c.Trading.LongLeverage <= 0 {
		return fmt.Errorf("long_leverage=%v: %w", c.Trading.LongLeverage, ErrInvalidLeverage)
	}
	switch c.Trading.Mode {
	case ModeLongOnly:
	case ModeDual:
		if c.Trading.ShortLeverage <= 0 {
			return fmt.Errorf("short_leverage=%v: %w", c.Trading.ShortLeverage, ErrInvalidLeverage)
		}
	default:
		return fmt.Errorf("config: unknown trading mode %q (long_only|dual)", c.Trading.Mode)
	}
	if !strings.HasPrefix(c.Webhook.Path, "/") {
		return fmt.Errorf("config: webhook path must start with /, got %q", c.Webhook.Path)
	}
	return nil
}
