package config

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/MKhiriev/inferno/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	debugBuild   = models.NewBuildInfo("1.4.2", "2026-05-17T10:20:30Z", "0123456789abcdef", "linux-amd64", "debug")
	releaseBuild = models.NewBuildInfo("1.4.2", "2026-05-17T10:20:30Z", "0123456789abcdef", "linux-amd64", models.BuildModeRelease)
)

func resolve(t *testing.T, argv ...string) (*Args, bool, string, error) {
	t.Helper()
	var out bytes.Buffer
	args, shouldExit, err := ResolveArgs(argv, &out, debugBuild)
	return args, shouldExit, out.String(), err
}

// TestResolveArgs_Defaults verifies the result for an empty command line.
func TestResolveArgs_Defaults(t *testing.T) {
	clearEnv(t)

	args, shouldExit, out, err := resolve(t)

	require.NoError(t, err)
	assert.False(t, shouldExit)
	assert.Empty(t, out)
	assert.Equal(t, &Args{ConfigFile: DefaultConfigFile, LogDir: DefaultLogDir}, args)
	assert.False(t, args.LogLevel.IsSet())
}

// TestResolveArgs_NilArgv verifies that a nil argv does not fall back to the
// test binary's own arguments.
func TestResolveArgs_NilArgv(t *testing.T) {
	clearEnv(t)

	args, shouldExit, err := ResolveArgs(nil, &bytes.Buffer{}, debugBuild)

	require.NoError(t, err)
	assert.False(t, shouldExit)
	assert.Equal(t, DefaultConfigFile, args.ConfigFile)
}

func TestResolveArgs_Flags(t *testing.T) {
	tests := []struct {
		name     string
		argv     []string
		expected *Args
	}{
		{
			name:     "long config file",
			argv:     []string{"--config-file", "server.toml"},
			expected: &Args{ConfigFile: "server.toml", LogDir: DefaultLogDir},
		},
		{
			name:     "short config file",
			argv:     []string{"-c", "short.toml"},
			expected: &Args{ConfigFile: "short.toml", LogDir: DefaultLogDir},
		},
		{
			name:     "long log level",
			argv:     []string{"--log-level", "warn"},
			expected: &Args{ConfigFile: DefaultConfigFile, LogLevel: LevelWarn, LogDir: DefaultLogDir},
		},
		{
			name:     "short log level",
			argv:     []string{"-l", "trace"},
			expected: &Args{ConfigFile: DefaultConfigFile, LogLevel: LevelTrace, LogDir: DefaultLogDir},
		},
		{
			name:     "log dir",
			argv:     []string{"--log-dir", "/tmp/inferno"},
			expected: &Args{ConfigFile: DefaultConfigFile, LogDir: "/tmp/inferno"},
		},
		{
			name:     "verbose",
			argv:     []string{"-v"},
			expected: &Args{ConfigFile: DefaultConfigFile, LogLevel: LevelDebug, LogDir: DefaultLogDir},
		},
		{
			name:     "equals syntax",
			argv:     []string{"--config-file=eq.toml", "--log-level=error"},
			expected: &Args{ConfigFile: "eq.toml", LogLevel: LevelError, LogDir: DefaultLogDir},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)

			args, shouldExit, _, err := resolve(t, tt.argv...)

			require.NoError(t, err)
			assert.False(t, shouldExit)
			assert.Equal(t, tt.expected, args)
		})
	}
}

// TestResolveArgs_EnvLayer verifies that INFERNO_* variables apply when no
// flag overrides them.
func TestResolveArgs_EnvLayer(t *testing.T) {
	clearEnv(t)
	t.Setenv("INFERNO_CONFIG_FILE", "env.toml")
	t.Setenv("INFERNO_LOG_LEVEL", "info")
	t.Setenv("INFERNO_LOG_DIR", "env-logs")

	args, _, _, err := resolve(t)
	require.NoError(t, err)
	assert.Equal(t, &Args{ConfigFile: "env.toml", LogLevel: LevelInfo, LogDir: "env-logs"}, args)

	args, _, _, err = resolve(t, "-c", "flag.toml", "-l", "error")
	require.NoError(t, err)
	assert.Equal(t, &Args{ConfigFile: "flag.toml", LogLevel: LevelError, LogDir: "env-logs"}, args)
}

// TestResolveArgs_VerboseWins verifies that --verbose forces debug even when
// another layer names a level.
func TestResolveArgs_VerboseWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("INFERNO_LOG_LEVEL", "error")

	args, shouldExit, _, err := resolve(t, "--verbose")

	require.NoError(t, err)
	assert.False(t, shouldExit)
	assert.Equal(t, LevelDebug, args.LogLevel)
}

func TestResolveArgs_Version(t *testing.T) {
	clearEnv(t)

	args, shouldExit, out, err := resolve(t, "--version")

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, args)
	assert.Equal(t, "inferno dev-012345678.server.2026-05-17\n", out)
}

func TestResolveArgs_VersionShortFlag(t *testing.T) {
	clearEnv(t)
	var out bytes.Buffer

	args, shouldExit, err := ResolveArgs([]string{"-V"}, &out, releaseBuild)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, args)
	assert.Regexp(t, regexp.MustCompile(`^inferno \d+\.\d+\.\d+\.server\.\d{4}-\d{2}-\d{2}\n$`), out.String())
}

// TestResolveArgs_VersionVerbose verifies the extended build report.
func TestResolveArgs_VersionVerbose(t *testing.T) {
	clearEnv(t)
	var out bytes.Buffer

	_, shouldExit, err := ResolveArgs([]string{"-V", "-v"}, &out, releaseBuild)

	require.NoError(t, err)
	assert.True(t, shouldExit)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"inferno 1.4.2.server.2026-05-17",
		"release: 1.4.2",
		"commit-hash: 0123456789abcdef",
		"commit-date: 2026-05-17",
		"license: " + models.License,
		"authors: " + models.Authors,
		"build-target: linux-amd64",
	}, lines)
}

// TestResolveArgs_VersionSkipsEnv verifies that version mode returns before
// the environment is consulted.
func TestResolveArgs_VersionSkipsEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("INFERNO_LOG_LEVEL", "chatty")

	_, shouldExit, _, err := resolve(t, "-V")

	require.NoError(t, err)
	assert.True(t, shouldExit)
}

func TestResolveArgs_Help(t *testing.T) {
	for _, flag := range []string{"-h", "--help"} {
		t.Run(flag, func(t *testing.T) {
			clearEnv(t)

			args, shouldExit, out, err := resolve(t, flag)

			require.NoError(t, err)
			assert.True(t, shouldExit)
			assert.Nil(t, args)
			assert.Contains(t, out, models.Description)
			assert.Contains(t, out, "--config-file")
			assert.Contains(t, out, "--log-level")
			assert.Contains(t, out, "--log-dir")
		})
	}
}

func TestResolveArgs_Malformed(t *testing.T) {
	tests := []struct {
		name string
		argv []string
	}{
		{name: "unknown flag", argv: []string{"--port", "80"}},
		{name: "invalid log level", argv: []string{"--log-level", "loud"}},
		{name: "upper case log level", argv: []string{"-l", "DEBUG"}},
		{name: "mixed case log level", argv: []string{"-l", "Warn"}},
		{name: "padded log level", argv: []string{"-l", " info "}},
		{name: "verbose with log level", argv: []string{"-v", "-l", "info"}},
		{name: "positional argument", argv: []string{"serve"}},
		{name: "missing flag value", argv: []string{"--config-file"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)

			args, shouldExit, _, err := resolve(t, tt.argv...)

			require.Error(t, err)
			assert.Nil(t, args)
			assert.False(t, shouldExit)

			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, 1, exitErr.Code)
			assert.NotEmpty(t, exitErr.Message)
		})
	}
}

// TestResolveArgs_InvalidEnv verifies that a bad environment value is
// reported like a bad flag.
func TestResolveArgs_InvalidEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("INFERNO_LOG_LEVEL", "chatty")

	args, shouldExit, _, err := resolve(t)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
	assert.Nil(t, args)
	assert.False(t, shouldExit)
}

func TestExitError_Error(t *testing.T) {
	err := &ExitError{Code: 1, Message: "unknown flag: --port"}
	assert.Equal(t, "unknown flag: --port", err.Error())
}
