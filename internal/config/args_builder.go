package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/spf13/pflag"
)

type argsBuilder struct {
	layers []*Args
	err    error
}

func newArgsBuilder() *argsBuilder {
	return &argsBuilder{
		layers: make([]*Args, 0, 3),
	}
}

// build merges the layers in order. verbose forces the debug level over
// whatever the layers resolved.
func (b *argsBuilder) build(verbose bool) (*Args, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during resolving arguments: %w", b.err)
	}

	args := new(Args)
	for _, layer := range b.layers {
		if err := mergo.Merge(args, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging arguments: %w", err)
		}
	}

	if verbose {
		args.LogLevel = LevelDebug
	}

	return args, nil
}

func (b *argsBuilder) withDefaults() *argsBuilder {
	b.layers = append(b.layers, DefaultArgs())
	return b
}

func (b *argsBuilder) withEnv() *argsBuilder {
	envArgs := &Args{}
	if err := parseEnv(envArgs); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, envArgs)
	return b
}

// withFlags adds the flags the user actually passed. Flag defaults are left
// out so they do not shadow the environment.
func (b *argsBuilder) withFlags(flags *pflag.FlagSet, parsed *Args) *argsBuilder {
	flagArgs := &Args{}
	if flags.Changed(flagConfigFile) {
		flagArgs.ConfigFile = parsed.ConfigFile
	}
	if flags.Changed(flagLogLevel) {
		flagArgs.LogLevel = parsed.LogLevel
	}
	if flags.Changed(flagLogDir) {
		flagArgs.LogDir = parsed.LogDir
	}

	b.layers = append(b.layers, flagArgs)
	return b
}
