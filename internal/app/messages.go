// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

const (
	// MsgStarting announces the server version and port. Format arguments:
	// version string, port.
	MsgStarting = "Starting %s on port %d"

	// MsgLicense is logged once at startup.
	MsgLicense = "This software is licensed under GPLv3."

	// MsgStartDone reports the time elapsed since the process started.
	// Format argument: duration.
	MsgStartDone = "Done! Start took %s"

	// MsgArgsResolved is logged at debug level with the resolved bootstrap
	// parameters.
	MsgArgsResolved = "bootstrap parameters resolved"

	// MsgConfigLoadFailed is logged when the configuration cannot be
	// established and the process has to stop.
	MsgConfigLoadFailed = "error loading configuration"

	// MsgStartupFailed is logged by the entry point for any failure that is
	// not a usage error.
	MsgStartupFailed = "server startup failed"
)
