package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/inferno/internal/app"
	"github.com/MKhiriev/inferno/internal/config"
	"github.com/MKhiriev/inferno/internal/logger"
	"github.com/MKhiriev/inferno/models"
)

const logRole = "server"

// Build metadata injected with
//
//	-ldflags "-X main.buildVersion=... -X main.buildDate=... -X main.buildCommit=... -X main.buildTarget=... -X main.buildMode=release"
var (
	buildVersion string
	buildDate    string
	buildCommit  string
	buildTarget  string
	buildMode    string
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		os.Exit(report(logger.NewLogger(logRole), os.Stderr, err))
	}
}

// run performs both startup phases and returns the outcome instead of
// terminating the process.
func run(args []string, out io.Writer) error {
	info := models.ResolveBuildInfo(buildVersion, buildDate, buildCommit, buildTarget, buildMode)

	process := app.NewProcess(info, config.NewOSFileSystem())
	defer process.Close()

	shouldExit, err := process.Bootstrap(args, out)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	return process.Run()
}

// report prints a startup failure and returns the process exit code.
// Usage errors are printed as plain text on stderr, every other failure is
// logged through log.
func report(log *logger.Logger, stderr io.Writer, err error) int {
	var exitErr *config.ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintln(stderr, exitErr.Message)
		return exitErr.Code
	}

	log.Error().Err(err).Msg(app.MsgStartupFailed)
	return 1
}
