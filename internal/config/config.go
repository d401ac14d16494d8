// Package config resolves where the input files live and how the map is
// styled. Defaults match the conventional data/ layout; an optional
// refmap.yaml overrides them, and REFMAP_* environment variables (possibly
// from a .env file) win over both.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DataConfig locates the four read-only inputs.
type DataConfig struct {
	Referendum  string `yaml:"referendum"`
	Regions     string `yaml:"regions"`
	Departments string `yaml:"departments"`
	Boundaries  string `yaml:"boundaries"`
}

// MapConfig styles the rendered choropleth.
type MapConfig struct {
	Title        string  `yaml:"title"`
	LegendTitle  string  `yaml:"legend_title"`
	Output       string  `yaml:"output"`
	WidthInches  float64 `yaml:"width_inches"`
	HeightInches float64 `yaml:"height_inches"`
	CodeField    string  `yaml:"code_field"`
	NameField    string  `yaml:"name_field"`
}

// Config is the full run configuration.
type Config struct {
	Data DataConfig `yaml:"data"`
	Map  MapConfig  `yaml:"map"`
}

// Default returns the configuration used when no refmap.yaml exists.
func Default() Config {
	var cfg Config
	cfg.Data.Referendum = filepath.Join("data", "referendum.csv")
	cfg.Data.Regions = filepath.Join("data", "regions.csv")
	cfg.Data.Departments = filepath.Join("data", "departments.csv")
	cfg.Data.Boundaries = filepath.Join("data", "regions.shp")
	cfg.Map.Title = "Referendum Results - Choice A Ratio"
	cfg.Map.LegendTitle = "Choice A Ratio"
	cfg.Map.Output = "referendum_map.png"
	cfg.Map.WidthInches = 12
	cfg.Map.HeightInches = 8
	cfg.Map.CodeField = "code"
	cfg.Map.NameField = "nom"
	return cfg
}

// Load builds the configuration from defaults, the yaml file at path (if it
// exists), the .env file, and the environment, in that order of precedence.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// No config file is fine; defaults apply.
	default:
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	loadEnvFile(".env")
	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	c.Data.Referendum = getEnvOrDefault("REFMAP_REFERENDUM", c.Data.Referendum)
	c.Data.Regions = getEnvOrDefault("REFMAP_REGIONS", c.Data.Regions)
	c.Data.Departments = getEnvOrDefault("REFMAP_DEPARTMENTS", c.Data.Departments)
	c.Data.Boundaries = getEnvOrDefault("REFMAP_BOUNDARIES", c.Data.Boundaries)
	c.Map.Output = getEnvOrDefault("REFMAP_OUTPUT", c.Map.Output)
}

// loadEnvFile reads key=value pairs into the environment. A missing file is
// not an error; variables already set keep their values.
func loadEnvFile(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if idx := strings.Index(line, "="); idx > 0 {
			key := strings.TrimSpace(line[:idx])
			value := strings.TrimSpace(line[idx+1:])

			if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
				value = value[1 : len(value)-1]
			}

			if os.Getenv(key) == "" {
				os.Setenv(key, value)
			}
		}
	}

	return scanner.Err()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
