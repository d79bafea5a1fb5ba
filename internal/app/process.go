// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the process-scoped state of the inferno server and the
// two startup phases that use it.
//
// [Process.Bootstrap] is the initialization phase: it records the start
// time, resolves the command line, builds the logger and loads the
// configuration, in that order, storing each result in a write-once cell.
// [Process.Run] is the run phase and only reads those cells. A second
// initialization of any cell fails with [singleton.ErrAlreadyInitialized].
package app

import (
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/inferno/internal/config"
	"github.com/MKhiriev/inferno/internal/logger"
	"github.com/MKhiriev/inferno/internal/singleton"
	"github.com/MKhiriev/inferno/models"
	"github.com/rs/zerolog"
)

const logRole = "server"

// Process is the explicit process context. Build one in main with
// [NewProcess] and pass it to whatever needs the resolved state.
type Process struct {
	bootID string
	info   models.BuildInfo
	fs     config.FileSystem
	now    func() time.Time

	startTime singleton.Cell[time.Time]
	args      singleton.Cell[config.Args]
	log       singleton.Cell[*logger.Logger]
	config    singleton.Cell[config.Config]

	store     *config.Store
	logCloser io.Closer
}

// NewProcess returns an empty process context for the binary described by
// info. The configuration file is accessed through fs.
func NewProcess(info models.BuildInfo, fs config.FileSystem) *Process {
	return &Process{
		bootID: newBootID(),
		info:   info,
		fs:     fs,
		now:    time.Now,
	}
}

// Bootstrap runs the initialization phase.
//
// It returns true when the process should exit cleanly without running
// (version or help was printed to out). Errors are either a
// [*config.ExitError] for an unusable command line, [config.ErrConfigWrite]
// when the default configuration file cannot be created, or
// [singleton.ErrAlreadyInitialized] when Bootstrap is called twice.
func (p *Process) Bootstrap(argv []string, out io.Writer) (bool, error) {
	if err := p.startTime.Set(p.now()); err != nil {
		return false, fmt.Errorf("start time: %w", err)
	}

	args, shouldExit, err := config.ResolveArgs(argv, out, p.info)
	if err != nil || shouldExit {
		return shouldExit, err
	}
	if err := p.args.Set(*args); err != nil {
		return false, fmt.Errorf("arguments: %w", err)
	}

	log, closer, err := logger.NewServerLogger(logger.Options{
		Role:    logRole,
		BootID:  p.bootID,
		Level:   args.LogLevel.ZerologLevel(p.defaultLevel()),
		Dir:     args.LogDir,
		Console: out,
	})
	if err != nil {
		return false, err
	}
	if err := p.log.Set(log); err != nil {
		_ = closer.Close()
		return false, fmt.Errorf("logger: %w", err)
	}
	p.logCloser = closer
	log.Debug().
		Str("config_file", args.ConfigFile).
		Stringer("log_level", &args.LogLevel).
		Str("log_dir", args.LogDir).
		Msg(MsgArgsResolved)

	p.store = config.NewStore(p.fs, args.ConfigFile, p.info, log.GetChildLogger())
	cfg, err := p.store.Load()
	if err != nil {
		log.Error().Err(err).Msg(MsgConfigLoadFailed)
		return false, err
	}
	if err := p.config.Set(cfg); err != nil {
		return false, fmt.Errorf("config: %w", err)
	}

	return false, nil
}

// Run is the run phase. It announces the server and reports how long the
// startup took.
func (p *Process) Run() error {
	log, ok := p.log.Get()
	if !ok {
		return ErrNotBootstrapped
	}
	cfg, ok := p.config.Get()
	if !ok {
		return ErrNotBootstrapped
	}

	log.Info().Msgf(MsgStarting, cfg.ServerVersion, cfg.Port)
	log.Info().Msg(MsgLicense)
	log.Info().Msgf(MsgStartDone, p.Uptime())
	return nil
}

// Close flushes and closes the log file sink. It is safe to call on a
// process that never got that far.
func (p *Process) Close() error {
	if p.logCloser == nil {
		return nil
	}
	return p.logCloser.Close()
}

// BootID identifies this process run in the logs.
func (p *Process) BootID() string {
	return p.bootID
}

// StartTime returns the moment Bootstrap started.
func (p *Process) StartTime() time.Time {
	return p.startTime.MustGet()
}

// Uptime returns the time elapsed since Bootstrap started.
func (p *Process) Uptime() time.Duration {
	return p.now().Sub(p.StartTime())
}

// Args returns the resolved bootstrap parameters.
func (p *Process) Args() config.Args {
	return p.args.MustGet()
}

// Config returns the resolved configuration.
func (p *Process) Config() config.Config {
	return p.config.MustGet()
}

// Logger returns the process logger.
func (p *Process) Logger() *logger.Logger {
	return p.log.MustGet()
}

// Store returns the configuration store. It is nil before Bootstrap loaded
// the configuration.
func (p *Process) Store() *config.Store {
	return p.store
}

// defaultLevel applies when no log level was requested.
func (p *Process) defaultLevel() zerolog.Level {
	if p.info.IsRelease() {
		return zerolog.InfoLevel
	}
	return zerolog.DebugLevel
}
