package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// GenerationSettings tune the schedule generator.
type GenerationSettings struct {
	// Weights override the built-in scoring weights by factor name
	Weights map[string]float64 `yaml:"weights,omitempty" validate:"omitempty,dive,gte=0"`

	// LookbackDays is how far before the window existing shifts are fetched
	// for rest-period and weekly-hours continuity
	LookbackDays int `yaml:"lookbackDays,omitempty" validate:"omitempty,min=1,max=31"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL string `yaml:"databaseURL" validate:"required"`

	// HolidayRules are RRULE strings describing the holiday calendar,
	// e.g. "FREQ=YEARLY;BYMONTH=12;BYMONTHDAY=25"
	HolidayRules []string `yaml:"holidayRules,omitempty"`

	Generation GenerationSettings `yaml:"generation,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from shifterino_config.yaml,
// looking in the current directory first, then the user's home directory.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	if cfg.Generation.LookbackDays == 0 {
		cfg.Generation.LookbackDays = 7
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks holiday rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, rule := range cfg.HolidayRules {
		if _, err := rrule.StrToRRule(rule); err != nil {
			return fmt.Errorf("invalid rrule in holidayRules[%d]: %w", i, err)
		}
	}

	return nil
}

// HolidayDates expands the holiday rules into the set of holiday dates within
// [start, end], keyed by YYYY-MM-DD.
func (c *Config) HolidayDates(start, end time.Time) (map[string]bool, error) {
	holidays := make(map[string]bool)

	for i, rule := range c.HolidayRules {
		r, err := rrule.StrToRRule(rule)
		if err != nil {
			return nil, fmt.Errorf("invalid rrule in holidayRules[%d]: %w", i, err)
		}

		// rrules without an anchor start from "now"; anchor them well before
		// the window so past-looking windows still expand
		r.DTStart(start.AddDate(-1, 0, 0))

		for _, occurrence := range r.Between(start, end, true) {
			holidays[occurrence.Format("2006-01-02")] = true
		}
	}

	return holidays, nil
}

// findConfigFile searches for shifterino_config.yaml in the current directory
// and the home directory
func findConfigFile() (string, error) {
	configFileName := "shifterino_config.yaml"

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
