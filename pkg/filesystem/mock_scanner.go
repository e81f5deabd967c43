package filesystem

// mockDirScanner implements DirScanner for MockFileSystem.
type mockDirScanner struct {
	fs        *MockFileSystem
	entries   []DirEntry
	index     int
	failAfter int
	failErr   error
	err       error
	closed    bool
}

// newMockDirScanner creates a new scanner over a snapshot of entries.
// A negative failAfter means the scan never fails.
func newMockDirScanner(fs *MockFileSystem, entries []DirEntry, failAfter int, failErr error) *mockDirScanner {
	return &mockDirScanner{
		fs:        fs,
		entries:   entries,
		failAfter: failAfter,
		failErr:   failErr,
	}
}

// Next advances to the next entry and returns it.
func (s *mockDirScanner) Next() (DirEntry, bool) {
	if s.closed || s.err != nil {
		return DirEntry{}, false
	}

	if s.failErr != nil && s.failAfter >= 0 && s.index >= s.failAfter {
		s.err = s.failErr
		return DirEntry{}, false
	}

	if s.index >= len(s.entries) {
		return DirEntry{}, false
	}

	entry := s.entries[s.index]
	s.index++

	return entry, true
}

// Err returns any error that occurred during scanning.
func (s *mockDirScanner) Err() error {
	return s.err
}

// Close marks the scanner closed and reports it to the filesystem.
func (s *mockDirScanner) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.fs.scannerClosed()

	return nil
}
