package main

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// configFile is the optional per-directory configuration file with
// CLASSYFD_* keys; environment variables take precedence over it.
const configFile = ".classyfd.conf"

type genericConfigProvider interface {
	Read(filenames ...string) (map[string]string, error)
}

// GodotenvProvider is an implementation wrapping the Godotenv framework.
type GodotenvProvider struct{}

// Read reads generic Unix-type configuration files into a map (map[key]value).
func (*GodotenvProvider) Read(filenames ...string) (map[string]string, error) {
	return godotenv.Read(filenames...)
}

// Config holds the CLI defaults; each can still be overridden per command
// with flags.
type Config struct {
	Overwrite bool
	NoUI      bool
	LogLevel  slog.Level
}

func loadConfig() *Config {
	return loadConfigFrom(&GodotenvProvider{}, configFile)
}

func loadConfigFrom(provider genericConfigProvider, filenames ...string) *Config {
	config := &Config{
		LogLevel: slog.LevelInfo,
	}

	values := map[string]string{}
	if fileValues, err := provider.Read(filenames...); err == nil {
		values = fileValues
	}

	lookup := func(key string) string {
		if env, exists := os.LookupEnv(key); exists {
			return env
		}

		return values[key]
	}

	if v, err := strconv.ParseBool(lookup("CLASSYFD_OVERWRITE")); err == nil {
		config.Overwrite = v
	}
	if v, err := strconv.ParseBool(lookup("CLASSYFD_NO_UI")); err == nil {
		config.NoUI = v
	}

	switch lookup("CLASSYFD_LOG_LEVEL") {
	case "debug":
		config.LogLevel = slog.LevelDebug
	case "warn":
		config.LogLevel = slog.LevelWarn
	case "error":
		config.LogLevel = slog.LevelError
	}

	return config
}
