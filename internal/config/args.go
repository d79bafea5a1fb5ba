// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

const (
	// DefaultConfigFile is used when neither INFERNO_CONFIG_FILE nor
	// -c/--config-file is given.
	DefaultConfigFile = "inferno.toml"
	// DefaultLogDir is used when neither INFERNO_LOG_DIR nor --log-dir is given.
	DefaultLogDir = "logs"

	envPrefix = "INFERNO_"
)

// Args holds the bootstrap parameters of the server process. They are
// resolved once, before any file is read, and never persisted.
//
// Struct tags:
//   - env — variable name below the INFERNO_ prefix (caarlos0/env).
type Args struct {
	// ConfigFile is the path of the TOML configuration file.
	// Env: INFERNO_CONFIG_FILE
	ConfigFile string `env:"CONFIG_FILE"`

	// LogLevel is the requested minimum log level. Unset lets the entry point
	// choose a build-dependent default. --verbose forces debug.
	// Env: INFERNO_LOG_LEVEL
	LogLevel LogLevel `env:"LOG_LEVEL"`

	// LogDir is the directory receiving the daily log files.
	// Env: INFERNO_LOG_DIR
	LogDir string `env:"LOG_DIR"`
}

// DefaultArgs returns the built-in bootstrap parameters.
func DefaultArgs() *Args {
	return &Args{
		ConfigFile: DefaultConfigFile,
		LogDir:     DefaultLogDir,
	}
}
