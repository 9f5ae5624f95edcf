package config

import (
	"os"
	"strconv"
	"time"

	"measlesmon/domain/epi"
	"measlesmon/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Dataset  DatasetConfig
	Database DatabaseConfig
	Model    ModelConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DatasetConfig holds coverage-dataset source settings. A local file
// takes precedence over the remote URL when both are set.
type DatasetConfig struct {
	CoverageFile string
	CoverageURL  string
	FetchTimeout time.Duration
}

// DatabaseConfig holds optional Postgres settings. An empty URL means
// the app runs file-only, serving the dataset from memory.
type DatabaseConfig struct {
	URL string
}

// ModelConfig holds the simulation defaults exposed to operators.
// Each defaults to the cited reference value.
type ModelConfig struct {
	R0                  float64
	HospitalizationRate float64
	DeathRate           float64
	IsolationDays       int
	QuarantineDays      int
	SimDays             int
	SolverIterations    int
	Kernel              string // "polynomial" or "gamma"
}

// DefaultCoverageURL is the published 2024–25 ADHS kindergarten MMR
// coverage dataset.
const DefaultCoverageURL = "https://raw.githubusercontent.com/mmcalend/USMeaslesData/refs/heads/main/24-25ADHSMMRKCoverage.csv"

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		Dataset: DatasetConfig{
			CoverageFile: getEnvOrDefault("COVERAGE_FILE", ""),
			CoverageURL:  getEnvOrDefault("COVERAGE_URL", DefaultCoverageURL),
			FetchTimeout: getEnvDurationOrDefault("COVERAGE_FETCH_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			URL: getEnvOrDefault("DATABASE_URL", ""),
		},
		Model: ModelConfig{
			R0:                  getEnvFloatOrDefault("MODEL_R0", epi.DefaultR0),
			HospitalizationRate: getEnvFloatOrDefault("MODEL_HOSP_RATE", epi.DefaultHospitalizationRate),
			DeathRate:           getEnvFloatOrDefault("MODEL_DEATH_RATE", epi.DefaultDeathRate),
			IsolationDays:       getEnvIntOrDefault("MODEL_ISOLATION_DAYS", epi.DefaultIsolationDays),
			QuarantineDays:      getEnvIntOrDefault("MODEL_QUARANTINE_DAYS", epi.DefaultQuarantineDays),
			SimDays:             getEnvIntOrDefault("MODEL_SIM_DAYS", epi.DefaultSimDays),
			SolverIterations:    getEnvIntOrDefault("MODEL_SOLVER_ITERATIONS", epi.DefaultSolverIterations),
			Kernel:              getEnvOrDefault("MODEL_KERNEL", "polynomial"),
		},
	}

	if err := validateConfig(cfg); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Dataset.CoverageFile == "" && cfg.Dataset.CoverageURL == "" {
		return errors.ConfigInvalid("one of COVERAGE_FILE or COVERAGE_URL is required")
	}
	if cfg.Model.R0 <= 0 {
		return errors.ConfigInvalid("MODEL_R0 must be positive")
	}
	if cfg.Model.SimDays <= 0 {
		return errors.ConfigInvalid("MODEL_SIM_DAYS must be positive")
	}
	if cfg.Model.SolverIterations <= 0 {
		return errors.ConfigInvalid("MODEL_SOLVER_ITERATIONS must be positive")
	}
	if cfg.Model.Kernel != "polynomial" && cfg.Model.Kernel != "gamma" {
		return errors.ConfigInvalid("MODEL_KERNEL must be polynomial or gamma")
	}
	return nil
}

// Projector builds the projector matching the configured solver
// iteration count and incidence kernel.
func (c *Config) Projector() *epi.Projector {
	kernel := epi.KernelPolynomialExp
	if c.Model.Kernel == "gamma" {
		kernel = epi.KernelGamma
	}
	return &epi.Projector{
		Iterations: c.Model.SolverIterations,
		Kernel:     kernel,
	}
}

// ScenarioDefaults builds a ScenarioInput template from the configured
// model parameters; callers fill in enrollment and immunization rate.
func (c *Config) ScenarioDefaults() epi.ScenarioInput {
	return epi.ScenarioInput{
		R0:                  c.Model.R0,
		HospitalizationRate: c.Model.HospitalizationRate,
		DeathRate:           c.Model.DeathRate,
		IsolationDays:       c.Model.IsolationDays,
		QuarantineDays:      c.Model.QuarantineDays,
		SimDays:             c.Model.SimDays,
	}
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
