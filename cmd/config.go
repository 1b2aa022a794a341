package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"adventure/internal/jobs"
	"adventure/internal/pkg/errs"
)

const (
	DefaultHTTPPort   = "8080"
	DefaultDBPort     = "5432"
	DefaultDBUser     = "postgres"
	DefaultDBName     = "adventure"
	DefaultDBSslMode  = "disable"
	DefaultSurpriseAt = "2024-08-02T12:00:00+07:00"
)

type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	SurpriseAt        string
	SongURL           string
	NormalizeSchedule string
	LogLevel          string
}

// WithDefaults fills every optional setting left empty.
func (c Config) WithDefaults() Config {
	c.HTTPPort = orDefault(c.HTTPPort, DefaultHTTPPort)
	c.DBPort = orDefault(c.DBPort, DefaultDBPort)
	c.DBUser = orDefault(c.DBUser, DefaultDBUser)
	c.DBName = orDefault(c.DBName, DefaultDBName)
	c.DBSslMode = orDefault(c.DBSslMode, DefaultDBSslMode)
	c.SurpriseAt = orDefault(c.SurpriseAt, DefaultSurpriseAt)
	c.NormalizeSchedule = orDefault(c.NormalizeSchedule, jobs.DefaultNormalizeSchedule)
	c.LogLevel = orDefault(c.LogLevel, "info")
	return c
}

// Validate reports every missing or malformed setting at once.
func (c Config) Validate() error {
	var problems []error
	if strings.TrimSpace(c.DBHost) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("DB_HOST"))
	}
	if strings.TrimSpace(c.DBPassword) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("DB_PASSWORD"))
	}
	if _, err := c.SurpriseTime(); err != nil {
		problems = append(problems, err)
	}
	if _, err := c.SlogLevel(); err != nil {
		problems = append(problems, err)
	}
	return errors.Join(problems...)
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%v port=%v user=%v password=%v dbname=%v sslmode=%v",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) SurpriseTime() (time.Time, error) {
	t, err := time.Parse(time.RFC3339, orDefault(c.SurpriseAt, DefaultSurpriseAt))
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause("SURPRISE_AT", err)
	}
	return t, nil
}

func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(orDefault(c.LogLevel, "info"))); err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err)
	}
	return level, nil
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
