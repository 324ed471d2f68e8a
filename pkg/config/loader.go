package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/setoferry/setoferry/pkg/util"
	"gopkg.in/yaml.v3"
)

const DefaultConfigPath = "config.yaml"

// Load builds the application configuration. Defaults are overlaid by the
// YAML file at path, then by SETOFERRY_* environment variables, and the result
// is validated. A missing file at DefaultConfigPath is not an error; a missing
// file anywhere else is.
func Load(path string) (AppConfig, error) {
	cfg := Default()

	if path == "" {
		path = DefaultConfigPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return AppConfig{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && path == DefaultConfigPath:
	default:
		return AppConfig{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	applyEnvironment(&cfg, util.GetEnvironmentVariables())

	if err := validator.New().Struct(cfg); err != nil {
		return AppConfig{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func applyEnvironment(cfg *AppConfig, env map[string]string) {
	if env["SETOFERRY_LISTEN"] != "" {
		cfg.Server.Listen = env["SETOFERRY_LISTEN"]
	}

	if env["SETOFERRY_DATA_DIRECTORY"] != "" {
		cfg.Data.Directory = env["SETOFERRY_DATA_DIRECTORY"]
	}

	if env["SETOFERRY_ALLOWED_ORIGINS"] != "" {
		origins := []string{}
		for _, origin := range strings.Split(env["SETOFERRY_ALLOWED_ORIGINS"], ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
		cfg.Server.AllowedOrigins = origins
	}
}
