// Package filesystem provides an abstraction layer for directory listing.
package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"sync"
)

// MockFileSystem is an in-memory filesystem implementation for testing.
// Entries are yielded in the order they were added, which lets tests model
// whatever order a real directory listing happens to produce.
type MockFileSystem struct {
	mu      sync.RWMutex
	dirs    map[string]*mockDir
	opened  int
	closed  int
	readErr map[string]error
}

// mockDir represents a directory in the mock filesystem.
type mockDir struct {
	entries   []DirEntry
	scanErr   error
	failAfter int // entries yielded before scanErr is reported
}

// NewMockFileSystem creates a new empty MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		dirs:    make(map[string]*mockDir),
		readErr: make(map[string]error),
	}
}

// AddDir adds an empty directory to the mock filesystem.
func (m *MockFileSystem) AddDir(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.dirs[path]; !exists {
		m.dirs[path] = &mockDir{failAfter: -1}
	}
}

// AddEntry adds a named entry of the given type to a directory, creating the directory if needed.
func (m *MockFileSystem) AddEntry(dir, name string, mode fs.FileMode) {
	m.AddDir(dir)

	m.mu.Lock()
	defer m.mu.Unlock()

	d := m.dirs[dir]
	d.entries = append(d.entries, DirEntry{Name: name, Mode: mode.Type()})
}

// AddSockets adds socket entries with the given names to a directory.
func (m *MockFileSystem) AddSockets(dir string, names ...string) {
	for _, name := range names {
		m.AddEntry(dir, name, fs.ModeSocket)
	}
}

// SetReadDirError makes ReadDir on path fail with err.
func (m *MockFileSystem) SetReadDirError(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.readErr[path] = err
}

// SetScanError makes scanning dir fail with err after yielding the first n entries.
func (m *MockFileSystem) SetScanError(dir string, n int, err error) {
	m.AddDir(dir)

	m.mu.Lock()
	defer m.mu.Unlock()

	d := m.dirs[dir]
	d.scanErr = err
	d.failAfter = n
}

// ReadDir returns a scanner over a snapshot of the directory's entries.
func (m *MockFileSystem) ReadDir(path string) (DirScanner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.readErr[path]; ok {
		return nil, fmt.Errorf("failed to open directory %s: %w", path, err)
	}

	d, exists := m.dirs[path]
	if !exists {
		return nil, fmt.Errorf("failed to open directory %s: %w", path, os.ErrNotExist)
	}

	entries := make([]DirEntry, len(d.entries))
	copy(entries, d.entries)
	m.opened++

	return newMockDirScanner(m, entries, d.failAfter, d.scanErr), nil
}

// OpenScanners returns how many scanners are currently open.
func (m *MockFileSystem) OpenScanners() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.opened - m.closed
}

// scannerClosed records that a scanner released its handle.
func (m *MockFileSystem) scannerClosed() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed++
}
