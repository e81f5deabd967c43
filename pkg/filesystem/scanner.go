package filesystem

import (
	"io/fs"
)

// DirScanner is an iterator over the entries of one directory.
// It provides a simple Next pattern and cannot be restarted: a fresh
// scanner must be obtained from ReadDir to list the directory again.
type DirScanner interface {
	// Next advances to the next entry and returns it.
	// Returns (DirEntry{}, false) when done or on error.
	// Check Err() after Next() returns false to distinguish between end-of-scan and error.
	Next() (DirEntry, bool)

	// Err returns any error that occurred during scanning.
	// Should be checked after Next() returns false.
	Err() error

	// Close releases the directory handle. Calling it more than once is harmless.
	Close() error
}

// DirEntry describes one name inside a scanned directory.
// This is our own type (not fs.DirEntry) to make it easy to build in tests.
type DirEntry struct {
	// Name is the base name of the entry
	Name string

	// Mode holds the type bits of the entry (socket, directory, symlink, ...).
	// Permission bits are not populated.
	Mode fs.FileMode
}

// IsSocket reports whether the entry is a unix domain socket.
func (e DirEntry) IsSocket() bool {
	return e.Mode&fs.ModeSocket != 0
}
