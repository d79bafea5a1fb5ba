// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Package metadata that does not change between builds.
const (
	// ProductName prefixes every version string.
	ProductName = "inferno"
	// License is the SPDX identifier of the license the binaries ship under.
	License = "GPL-3.0-only"
	// Authors lists the people responsible for the server.
	Authors = "The inferno contributors"
	// Description is shown at the top of the command-line help.
	Description = "The inferno game server."

	// ProductServer labels version strings of the server binary.
	ProductServer = "server"
)

const (
	// BuildModeRelease marks a binary built for distribution. Any other mode
	// value is treated as a development build.
	BuildModeRelease = "release"

	notAvailable = "N/A"

	commitHashLen = 9
	commitDateLen = 10
)

// BuildInfo carries immutable build-time metadata embedded into binaries.
//
// Values are typically injected by linker flags during CI/CD and shown in
// the version output and startup logs for diagnostics and release
// traceability. The zero value is a development build with empty metadata.
type BuildInfo struct {
	version string
	date    string
	commit  string
	target  string
	release bool
}

// NewBuildInfo constructs [BuildInfo] from the provided build metadata.
// A mode equal to [BuildModeRelease] produces a release build; every other
// value produces a development build.
func NewBuildInfo(version, date, commit, target, mode string) BuildInfo {
	return BuildInfo{
		version: version,
		date:    date,
		commit:  commit,
		target:  target,
		release: mode == BuildModeRelease,
	}
}

// ResolveBuildInfo is like [NewBuildInfo] but fills metadata the linker did
// not inject. The commit hash and date fall back to the VCS stamp recorded
// by the Go toolchain, the target falls back to GOOS-GOARCH, and anything
// still missing becomes "N/A".
func ResolveBuildInfo(version, date, commit, target, mode string) BuildInfo {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if commit == "" {
					commit = s.Value
				}
			case "vcs.time":
				if date == "" {
					date = s.Value
				}
			}
		}
	}

	if target == "" {
		target = runtime.GOOS + "-" + runtime.GOARCH
	}

	return NewBuildInfo(
		orNotAvailable(version),
		orNotAvailable(date),
		orNotAvailable(commit),
		target,
		mode,
	)
}

// BuildVersion returns the semantic version string of the build.
func (b BuildInfo) BuildVersion() string {
	return b.version
}

// BuildDate returns the build timestamp string.
func (b BuildInfo) BuildDate() string {
	return b.date
}

// BuildCommit returns the source-control commit hash used for the build.
func (b BuildInfo) BuildCommit() string {
	return b.commit
}

// BuildTarget returns the platform identifier the binary was built for.
func (b BuildInfo) BuildTarget() string {
	return b.target
}

// IsRelease reports whether the binary is a release build.
func (b BuildInfo) IsRelease() bool {
	return b.release
}

// Version returns the human-readable version of the given product in the
// form "inferno <version>.<product>.<date>".
//
// Release builds use the semantic version, development builds use "dev-"
// followed by the first 9 characters of the commit hash. The date is the
// first 10 characters of the build date, i.e. its YYYY-MM-DD prefix.
func (b BuildInfo) Version(product string) string {
	return fmt.Sprintf("%s %s.%s.%s", ProductName, b.versionSegment(), product, b.shortDate())
}

// Details returns the extended build report printed by "--version --verbose",
// one "key: value" entry per line.
func (b BuildInfo) Details() []string {
	return []string{
		"release: " + b.version,
		"commit-hash: " + b.commit,
		"commit-date: " + b.shortDate(),
		"license: " + License,
		"authors: " + Authors,
		"build-target: " + b.target,
	}
}

func (b BuildInfo) versionSegment() string {
	if b.release {
		return b.version
	}
	return "dev-" + prefix(b.commit, commitHashLen)
}

func (b BuildInfo) shortDate() string {
	return prefix(b.date, commitDateLen)
}

// prefix returns at most n leading bytes of s. Build metadata is ASCII.
func prefix(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
