package pathkit

import "io/fs"

// Exit codes used by the pathkit CLI.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess           = 0  // Operation completed successfully
	ExitGeneralError      = 1  // Unknown or unclassified error
	ExitUsageError        = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic             = 3  // Internal panic (unexpected crash)
	ExitConfigError       = 10 // Invalid configuration
	ExitNotFound          = 20 // Source path does not exist
	ExitDestinationExists = 21 // Copy destination exists and overwrite was not requested
	ExitWrongType         = 22 // Path exists but is not the expected kind (file vs directory)
)

const (
	// DefaultDirPerm is the permission used for directories created by CreatePath.
	DefaultDirPerm fs.FileMode = 0755
)
