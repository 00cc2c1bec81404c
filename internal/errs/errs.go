// Package errs defines the error kinds shared by the archive and text packages.
// Callers match them with errors.Is; I/O failures are wrapped, not replaced.
package errs

import "errors"

var (
	// ErrFormat indicates bad magic, a size mismatch or truncated data.
	ErrFormat = errors.New("invalid format")

	// ErrIndexOutOfRange indicates an entry index or manifest reference
	// beyond the available count.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrDecompression indicates a corrupt or short compressed stream.
	ErrDecompression = errors.New("decompression failed")

	// ErrMissingManifest indicates a package directory without its record manifest.
	ErrMissingManifest = errors.New("manifest not found")

	// ErrMissingFile indicates a file named by a manifest or patch list is absent.
	ErrMissingFile = errors.New("file not found")
)
