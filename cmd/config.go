package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"purchasing/internal/core/application/usecases/commands"
	"purchasing/internal/core/domain/services"
	"purchasing/internal/pkg/errs"
	"purchasing/internal/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	LogLevel  string
	LogFormat string

	// VATRate is applied to subtotal minus discount.
	VATRate decimal.Decimal
	// Location is the business time zone deciding the day of an order number.
	Location *time.Location

	NumberMaxAttempts   int
	NumberRetryInterval time.Duration

	// UserFallback is "first" or "none", see commands.NewUserResolver.
	UserFallback    string
	DeleteDraftOnly bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "purchasing")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("PO_VAT_RATE", "0.07")
	v.SetDefault("PO_TIMEZONE", "Asia/Bangkok")
	v.SetDefault("PO_NUMBER_MAX_ATTEMPTS", 5)
	v.SetDefault("PO_NUMBER_RETRY_INTERVAL", "20ms")
	v.SetDefault("PO_USER_FALLBACK", commands.UserFallbackFirst)
	v.SetDefault("PO_DELETE_DRAFT_ONLY", false)
}

// LoadConfig reads envFile when it exists, then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	vatRate, err := decimal.NewFromString(strings.TrimSpace(v.GetString("PO_VAT_RATE")))
	if err != nil {
		return Config{}, errs.NewValueIsInvalidErrorWithCause("PO_VAT_RATE", err)
	}

	location, err := time.LoadLocation(strings.TrimSpace(v.GetString("PO_TIMEZONE")))
	if err != nil {
		return Config{}, errs.NewValueIsInvalidErrorWithCause("PO_TIMEZONE", err)
	}

	cfg := Config{
		HTTPPort:            v.GetString("HTTP_PORT"),
		DBHost:              v.GetString("DB_HOST"),
		DBPort:              v.GetString("DB_PORT"),
		DBUser:              v.GetString("DB_USER"),
		DBPassword:          v.GetString("DB_PASSWORD"),
		DBName:              v.GetString("DB_NAME"),
		DBSslMode:           v.GetString("DB_SSLMODE"),
		LogLevel:            v.GetString("LOG_LEVEL"),
		LogFormat:           v.GetString("LOG_FORMAT"),
		VATRate:             vatRate,
		Location:            location,
		NumberMaxAttempts:   v.GetInt("PO_NUMBER_MAX_ATTEMPTS"),
		NumberRetryInterval: v.GetDuration("PO_NUMBER_RETRY_INTERVAL"),
		UserFallback:        v.GetString("PO_USER_FALLBACK"),
		DeleteDraftOnly:     v.GetBool("PO_DELETE_DRAFT_ONLY"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var portErr error
	if strings.TrimSpace(c.HTTPPort) == "" {
		portErr = errs.NewValueIsRequiredError("HTTP_PORT")
	}

	_, vatErr := services.NewTotalsCalculator(c.VATRate)

	var locationErr error
	if c.Location == nil {
		locationErr = errs.NewValueIsRequiredError("PO_TIMEZONE")
	}

	var attemptsErr error
	if c.NumberMaxAttempts < 1 {
		attemptsErr = errs.NewValueIsOutOfRangeError("PO_NUMBER_MAX_ATTEMPTS", c.NumberMaxAttempts, 1, "unbounded")
	}

	var intervalErr error
	if c.NumberRetryInterval < 0 {
		intervalErr = errs.NewValueIsInvalidErrorWithCause(
			"PO_NUMBER_RETRY_INTERVAL", fmt.Errorf("%s is negative", c.NumberRetryInterval),
		)
	}

	_, userErr := commands.NewUserResolver(c.UserFallback)

	return errors.Join(
		portErr,
		vatErr,
		locationErr,
		attemptsErr,
		intervalErr,
		userErr,
		c.Logger().Validate(),
	)
}

func (c Config) Logger() logger.Config {
	cfg := logger.DefaultConfig()
	cfg.Level = c.LogLevel
	cfg.Format = c.LogFormat
	return cfg
}

func (c Config) Numbering() commands.NumberingSettings {
	return commands.NumberingSettings{
		Location:      c.Location,
		MaxAttempts:   c.NumberMaxAttempts,
		RetryInterval: c.NumberRetryInterval,
	}
}

// PostgresDSN is the keyword/value connection string for gorm's postgres driver.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
