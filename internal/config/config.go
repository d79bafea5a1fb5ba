// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/inferno/models"
	"github.com/pelletier/go-toml/v2"
)

// DefaultPort is the port the server listens on when the configuration file
// does not name one.
const DefaultPort uint16 = 3000

// Config is the resolved server configuration. It is built from defaults,
// replaced by the contents of the configuration file and then frozen for
// the lifetime of the process.
//
// Struct tags:
//   - toml — key in the configuration file; "-" keeps a field out of the file.
type Config struct {
	// Port is the port the server listens on.
	Port uint16 `toml:"port"`

	// ServerVersion is the version string of the running binary. It is
	// always derived from the build metadata and never read from or written
	// to the configuration file.
	ServerVersion string `toml:"-"`
}

// Default returns the built-in configuration for the binary described by info.
func Default(info models.BuildInfo) Config {
	return Config{
		Port:          DefaultPort,
		ServerVersion: info.Version(models.ProductServer),
	}
}

// encodeConfig serializes cfg into the configuration file format.
func encodeConfig(cfg Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("error encoding config: %w", err)
	}
	return data, nil
}

// decodeConfig parses the configuration file contents on top of
// [Default], so that omitted keys keep their default value. Invalid UTF-8
// sequences are replaced before parsing.
func decodeConfig(data []byte, info models.BuildInfo) (Config, error) {
	cfg := Default(info)
	text := strings.ToValidUTF8(string(data), "\uFFFD")
	if err := toml.Unmarshal([]byte(text), &cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}

	cfg.ServerVersion = info.Version(models.ProductServer)
	return cfg, nil
}
