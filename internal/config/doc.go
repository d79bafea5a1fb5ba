// Package config resolves the bootstrap parameters and the persisted server
// configuration.
//
// Two documents are produced, each from its own set of layers (later layers
// override earlier non-zero fields):
//
//	Args:   1. built-in defaults  2. INFERNO_* environment  3. command-line flags
//	Config: 1. built-in defaults  2. the TOML file named by Args.ConfigFile
//
// The file layer replaces the defaults wholesale: keys missing from the file
// keep their default value, unknown keys are ignored. When the file does not
// exist it is created from the defaults.
//
// The main entry points are [ResolveArgs] for the command line and [Store]
// for the configuration file.
package config
