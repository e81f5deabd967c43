// Package filesystem provides an abstraction layer for directory listing
// to enable dependency injection and testing without actual filesystem I/O.
package filesystem

import (
	"fmt"
	"os"
)

// FileSystem is an interface that abstracts the directory operations the scan needs.
// This allows for dependency injection and testing with mock implementations.
type FileSystem interface {
	// ReadDir opens a directory and returns a single-pass iterator over its entries.
	// An error means the directory could not be opened at all; no scanner is returned.
	ReadDir(path string) (DirScanner, error)
}

// RealFileSystem implements FileSystem using the os package.
type RealFileSystem struct{}

// NewRealFileSystem creates a new RealFileSystem instance.
func NewRealFileSystem() *RealFileSystem {
	return &RealFileSystem{}
}

// ReadDir opens the directory at path for lazy, batched listing.
func (fs *RealFileSystem) ReadDir(path string) (DirScanner, error) {
	dir, err := os.Open(path) //nolint:gosec // Scanning a caller-chosen directory is the point
	if err != nil {
		return nil, fmt.Errorf("failed to open directory %s: %w", path, err)
	}

	return newRealDirScanner(dir), nil
}
