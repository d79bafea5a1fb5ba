package config

import (
	"fmt"
	"io"

	"github.com/MKhiriev/inferno/models"
	"github.com/spf13/cobra"
)

const (
	flagVersion    = "version"
	flagVerbose    = "verbose"
	flagConfigFile = "config-file"
	flagLogLevel   = "log-level"
	flagLogDir     = "log-dir"

	// exitCodeUsage is returned for any command line that cannot be used.
	exitCodeUsage = 1
)

// ResolveArgs parses the server command line.
//
// Flags:
//
//	-V/--version            print the version and exit
//	-v/--verbose            debug logging; with --version also print build details
//	-c/--config-file <path> TOML configuration file (default inferno.toml)
//	-l/--log-level <level>  trace|debug|info|warn|error, conflicts with --verbose
//	--log-dir <dir>         daily log file directory (default logs)
//	-h/--help               print usage and exit
//
// It returns the resolved [Args], a boolean indicating that the process
// should exit cleanly (version or help was printed to out), or an
// [*ExitError] for malformed input. ResolveArgs never reads files and never
// terminates the process.
func ResolveArgs(argv []string, out io.Writer, info models.BuildInfo) (*Args, bool, error) {
	var (
		parsed  Args
		verbose bool
		version bool
		ran     bool
	)

	cmd := &cobra.Command{
		Use:           models.ProductName,
		Short:         models.Description,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(*cobra.Command, []string) error {
			ran = true
			return nil
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(out)
	if argv == nil {
		// cobra falls back to os.Args for a nil slice
		argv = []string{}
	}
	cmd.SetArgs(argv)

	flags := cmd.Flags()
	flags.BoolVarP(&version, flagVersion, "V", false, "Print version information and exit")
	flags.BoolVarP(&verbose, flagVerbose, "v", false, "Enable debug logging (with --version: print build details)")
	flags.StringVarP(&parsed.ConfigFile, flagConfigFile, "c", DefaultConfigFile, "Path to the TOML configuration file")
	flags.VarP(&parsed.LogLevel, flagLogLevel, "l", "Log level: trace, debug, info, warn, error")
	flags.StringVar(&parsed.LogDir, flagLogDir, DefaultLogDir, "Directory for daily log files")
	cmd.MarkFlagsMutuallyExclusive(flagVerbose, flagLogLevel)

	if err := cmd.Execute(); err != nil {
		return nil, false, &ExitError{Code: exitCodeUsage, Message: err.Error()}
	}
	if !ran {
		// -h/--help printed the usage
		return nil, true, nil
	}

	if version {
		printVersion(out, info, verbose)
		return nil, true, nil
	}

	args, err := newArgsBuilder().
		withDefaults().
		withEnv().
		withFlags(flags, &parsed).
		build(verbose)
	if err != nil {
		return nil, false, &ExitError{Code: exitCodeUsage, Message: err.Error()}
	}

	return args, false, nil
}

func printVersion(out io.Writer, info models.BuildInfo, verbose bool) {
	fmt.Fprintln(out, info.Version(models.ProductServer))
	if !verbose {
		return
	}
	for _, line := range info.Details() {
		fmt.Fprintln(out, line)
	}
}
