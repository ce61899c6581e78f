package main

import "os"

// Exit codes for different error types.
// These enable scripts to distinguish between failure modes.
const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0

	// ExitGeneral indicates a general error
	ExitGeneral = 1

	// ExitUsage indicates invalid arguments or usage error
	ExitUsage = 2

	// ExitFormatError indicates a filename that yields no usable family name
	ExitFormatError = 3

	// ExitNotFound indicates a missing input file or directory
	ExitNotFound = 4

	// ExitMetadataError indicates unreadable or invalid axis metadata
	ExitMetadataError = 5
)

// exitWithCode exits with the specified exit code
func exitWithCode(code int) {
	os.Exit(code)
}
