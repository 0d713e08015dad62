package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oguzk/degreeplanner/internal/app/models"
)

// Config structure represents the application configuration
type Config struct {
	Catalog struct {
		Path string `yaml:"path" env:"CATALOG_PATH"`
	} `yaml:"catalog"`

	Planner struct {
		// Terms is the repeating term cycle semester indices map onto.
		Terms []string `yaml:"terms"`
		// SolverBudget is the wall-clock budget for one solve, as a
		// time.ParseDuration string.
		SolverBudget        string `yaml:"solver_budget" env:"PLANNER_SOLVER_BUDGET"`
		DefaultMaxCourses   int    `yaml:"default_max_courses" env:"PLANNER_DEFAULT_MAX_COURSES"`
		DefaultMaxSemesters int    `yaml:"default_max_semesters" env:"PLANNER_DEFAULT_MAX_SEMESTERS"`
	} `yaml:"planner"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		// Read file
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		// Parse YAML into Config structure
		err = yaml.Unmarshal(file, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	err := loadFromEnv(config)
	if err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	// Validate config
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Catalog defaults
	config.Catalog.Path = "courses.json"

	// Planner defaults
	config.Planner.Terms = []string{string(models.TermFall), string(models.TermWinter)}
	config.Planner.SolverBudget = "10s"
	config.Planner.DefaultMaxCourses = 5
	config.Planner.DefaultMaxSemesters = 8

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	// Ensure required fields are set
	if config.Catalog.Path == "" {
		return fmt.Errorf("catalog path is required")
	}

	if len(config.Planner.Terms) == 0 {
		return fmt.Errorf("planner term cycle is required")
	}

	if _, err := config.TermCycle(); err != nil {
		return err
	}

	if _, err := time.ParseDuration(config.Planner.SolverBudget); err != nil {
		return fmt.Errorf("invalid solver budget format: %w", err)
	}

	if config.Planner.DefaultMaxCourses <= 0 {
		return fmt.Errorf("default max courses must be positive")
	}

	if config.Planner.DefaultMaxSemesters <= 0 {
		return fmt.Errorf("default max semesters must be positive")
	}

	return nil
}

// TermCycle returns the configured term cycle as model terms
func (c *Config) TermCycle() ([]models.Term, error) {
	cycle := make([]models.Term, 0, len(c.Planner.Terms))
	for _, s := range c.Planner.Terms {
		term, err := models.ParseTerm(s)
		if err != nil {
			return nil, fmt.Errorf("invalid planner term cycle: %w", err)
		}
		cycle = append(cycle, term)
	}
	return cycle, nil
}

// SolverBudget returns the configured solver budget as a duration
func (c *Config) SolverBudget() time.Duration {
	budget, err := time.ParseDuration(c.Planner.SolverBudget)
	if err != nil {
		return 10 * time.Second
	}
	return budget
}
