package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v8"
	"github.com/patrikhermansson/pairdist/core"
	"github.com/patrikhermansson/pairdist/pairwise"
	"gopkg.in/yaml.v3"
)

// ---------------------------

// ConfigFileEnv names the environment variable holding the optional config file path.
const ConfigFileEnv = "PAIRDIST_CONFIG"

type ConfigMap struct {
	// Global debug flag
	Debug bool `yaml:"debug"`
	// Pretty log output
	PrettyLogOutput bool `yaml:"prettyLogOutput"`
	// Strategy checked against the naive reference in every trial
	Strategy string `yaml:"strategy"`
	// Point metric name, see core.Distances
	Metric string `yaml:"metric"`
	// Number of points per random trial
	Points int `yaml:"points"`
	// Number of random trials, zero runs only the sample check
	Trials int `yaml:"trials"`
	// Number of concurrent trial workers
	Workers int `yaml:"workers"`
	// Seed for random point generation, zero picks one from core.GetSeed
	Seed int64 `yaml:"seed"`
	// Optional CSV file of x,y rows to check as well
	PointsFile string `yaml:"pointsFile"`
	// Report format: yaml or text
	Format string `yaml:"format"`
}

// Default returns the configuration used when neither a file nor the
// environment overrides anything.
func Default() ConfigMap {
	return ConfigMap{
		Strategy: pairwise.StrategyOptimized.String(),
		Metric:   "euclidean",
		Points:   256,
		Trials:   100,
		Workers:  1,
		Format:   "text",
	}
}

// Load builds the configuration from defaults, the YAML file named by
// PAIRDIST_CONFIG (if set) and PAIRDIST_* environment variables, in that order.
func Load() (ConfigMap, error) {
	configMap := Default()
	if cFilePath, ok := os.LookupEnv(ConfigFileEnv); ok && cFilePath != "" {
		if err := decodeFile(cFilePath, &configMap); err != nil {
			return configMap, err
		}
	}
	opts := env.Options{Prefix: "PAIRDIST_", UseFieldNameByDefault: true}
	if err := env.ParseWithOptions(&configMap, opts); err != nil {
		return configMap, fmt.Errorf("failed to parse env: %w", err)
	}
	return configMap, configMap.Validate()
}

func decodeFile(cFilePath string, configMap *ConfigMap) error {
	cFile, err := os.Open(cFilePath)
	if err != nil {
		return fmt.Errorf("failed to open config file %s: %w", cFilePath, err)
	}
	defer cFile.Close()
	decoder := yaml.NewDecoder(cFile)
	decoder.KnownFields(true)
	if err := decoder.Decode(configMap); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", cFilePath, err)
	}
	return nil
}

// Validate checks that every field holds a usable value.
func (c ConfigMap) Validate() error {
	var errs []error
	if _, err := pairwise.ParseStrategy(c.Strategy); err != nil {
		errs = append(errs, err)
	}
	if _, err := core.GetDistanceFunc(c.Metric); err != nil {
		errs = append(errs, err)
	}
	if c.Points < 1 {
		errs = append(errs, fmt.Errorf("points must be at least 1, got %d", c.Points))
	}
	if c.Trials < 0 {
		errs = append(errs, fmt.Errorf("trials cannot be negative, got %d", c.Trials))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be at least 1, got %d", c.Workers))
	}
	if c.Format != "yaml" && c.Format != "text" {
		errs = append(errs, fmt.Errorf("unknown report format: %q", c.Format))
	}
	return errors.Join(errs...)
}
