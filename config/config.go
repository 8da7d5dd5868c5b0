// Package config binds the data location settings to command line flags with
// environment variable fallbacks.
package config

import (
	"os"

	"github.com/spf13/pflag"

	"bidscope/services"
)

const (
	EnvDataDir = "BIDSCOPE_DATA_DIR"
	EnvDataURL = "BIDSCOPE_DATA_URL"

	DefaultDataDir = "."
)

// Config says where the data files live. DataURL wins over DataDir when set.
type Config struct {
	DataDir string
	DataURL string
}

// Bind registers the flags on fs. Environment variables supply the defaults.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&c.DataDir, "data", envOr(EnvDataDir, DefaultDataDir),
		"directory holding data.json, the GRPS files and Data/ (env "+EnvDataDir+")")
	fs.StringVar(&c.DataURL, "data-url", os.Getenv(EnvDataURL),
		"base URL to fetch the data files from instead of --data (env "+EnvDataURL+")")
}

// Source returns the data source the settings describe.
func (c *Config) Source() services.Source {
	if c.DataURL != "" {
		return services.HTTPSource{BaseURL: c.DataURL}
	}
	return services.FSSource{FS: os.DirFS(c.DataDir)}
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
