// Package config holds the environment helpers every service's LoadConfig uses.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/nickdelicto/ai-resume-builder-sub008/common/salary"

	"github.com/joho/godotenv"
)

// LoadDotEnv reads ./.env into the environment when the file exists. Variables
// already set in the environment win.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func GetEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func GetEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetEnvFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func GetEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// GetEnvList splits a comma separated value, dropping empty items.
func GetEnvList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// SalaryBounds reads the salary sanity bounds, defaulting to salary.DefaultBounds.
func SalaryBounds() salary.Bounds {
	d := salary.DefaultBounds()
	return salary.Bounds{
		HoursPerYear:          GetEnvFloat("SALARY_HOURS_PER_YEAR", d.HoursPerYear),
		MinHourlyRate:         GetEnvFloat("SALARY_HOURLY_MIN", d.MinHourlyRate),
		MaxHourlyRate:         GetEnvFloat("SALARY_HOURLY_MAX", d.MaxHourlyRate),
		MinAnnualSalary:       GetEnvFloat("SALARY_ANNUAL_MIN", d.MinAnnualSalary),
		FallbackHourlyCeiling: GetEnvFloat("SALARY_FALLBACK_HOURLY_CEILING", d.FallbackHourlyCeiling),
	}
}
