// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/inferno/internal/logger"
	"github.com/MKhiriev/inferno/internal/singleton"
	"github.com/MKhiriev/inferno/models"
)

// Store loads the configuration file once and serves the result for the
// rest of the process lifetime.
type Store struct {
	fs   FileSystem
	path string
	info models.BuildInfo
	log  *logger.Logger

	config singleton.Cell[Config]
}

// NewStore returns a Store reading path through fs. The path comes from the
// resolved [Args].
func NewStore(fs FileSystem, path string, info models.BuildInfo, log *logger.Logger) *Store {
	return &Store{
		fs:   fs,
		path: path,
		info: info,
		log:  log,
	}
}

// Path returns the configuration file the store reads.
func (s *Store) Path() string {
	return s.path
}

// Load reads the configuration file and caches the result.
//
// A missing file is created from the defaults and then read like an
// existing one; failing to create it returns [ErrConfigWrite]. A file that
// cannot be read or parsed is logged and the defaults are used. Load may succeed only once: later calls return
// [singleton.ErrAlreadyInitialized] without touching the file system.
func (s *Store) Load() (Config, error) {
	loaded := false
	cfg, err := s.config.GetOrInit(func() (Config, error) {
		loaded = true
		return s.load()
	})
	if err != nil {
		return Config{}, err
	}
	if !loaded {
		return Config{}, fmt.Errorf("config %s: %w", s.path, singleton.ErrAlreadyInitialized)
	}
	return cfg, nil
}

// Instance returns the cached configuration, loading it on first use.
func (s *Store) Instance() (Config, error) {
	return s.config.GetOrInit(s.load)
}

func (s *Store) load() (Config, error) {
	cfg := Default(s.info)

	exists, err := s.fs.Exists(s.path)
	if err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("cannot check configuration file, assuming it is absent")
	}

	if !exists {
		s.log.Warn().Str("path", s.path).Msg("configuration file not found, writing defaults")
		if err := s.writeDefault(cfg); err != nil {
			return Config{}, err
		}
	}

	// a freshly written file is read back like any other
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("cannot read configuration file, using defaults")
		return cfg, nil
	}

	parsed, err := decodeConfig(data, s.info)
	if err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("cannot parse configuration file, using defaults")
		return cfg, nil
	}

	s.log.Debug().Str("path", s.path).Uint16("port", parsed.Port).Msg("configuration file loaded")
	return parsed, nil
}

func (s *Store) writeDefault(cfg Config) error {
	data, err := encodeConfig(cfg)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrConfigWrite, s.path, err)
	}

	if err := s.fs.WriteFile(s.path, data); err != nil {
		return fmt.Errorf("%w %s: %w", ErrConfigWrite, s.path, err)
	}
	return nil
}
