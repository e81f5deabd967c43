package filesystem

import (
	"errors"
	"io"
	"os"
)

// readDirBatchSize is how many entries are pulled from the OS per ReadDir call.
const readDirBatchSize = 64

// realDirScanner implements DirScanner over an open *os.File.
type realDirScanner struct {
	dir    *os.File
	batch  []os.DirEntry
	index  int
	err    error
	done   bool
	closed bool
}

// newRealDirScanner creates a new scanner reading from an already opened directory.
func newRealDirScanner(dir *os.File) *realDirScanner {
	return &realDirScanner{dir: dir}
}

// Next advances to the next entry and returns it.
func (s *realDirScanner) Next() (DirEntry, bool) {
	for s.index >= len(s.batch) {
		if s.done || s.closed {
			return DirEntry{}, false
		}

		s.fill()
	}

	entry := s.batch[s.index]
	s.index++

	return DirEntry{
		Name: entry.Name(),
		Mode: entry.Type(),
	}, true
}

// Err returns any error that occurred during scanning.
func (s *realDirScanner) Err() error {
	return s.err
}

// Close releases the underlying directory handle.
func (s *realDirScanner) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	return s.dir.Close()
}

// fill reads the next batch of entries from the directory.
func (s *realDirScanner) fill() {
	batch, err := s.dir.ReadDir(readDirBatchSize)
	s.batch = batch
	s.index = 0

	if err != nil {
		s.done = true
		if !errors.Is(err, io.EOF) {
			s.err = err
		}
	}
}
