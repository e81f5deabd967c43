package display

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNoDisplay is returned by MockConnector for identifiers it does not know.
var ErrNoDisplay = errors.New("no such display")

// MockConnector is an in-memory Connector for testing.
// It records every Open and Close so callers can verify that each successful
// open is closed exactly once and that connections never overlap.
type MockConnector struct {
	mu         sync.Mutex
	displays   map[string][]Screen
	openErr    map[string]error
	screensErr map[string]error
	opens      []string
	closes     []string
	live       int
	maxLive    int
	extraClose int
}

// NewMockConnector creates a MockConnector with no displays.
func NewMockConnector() *MockConnector {
	return &MockConnector{
		displays:   make(map[string][]Screen),
		openErr:    make(map[string]error),
		screensErr: make(map[string]error),
	}
}

// AddDisplay makes identifier reachable with the given screens.
func (m *MockConnector) AddDisplay(identifier string, screens ...Screen) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.displays[identifier] = screens
}

// FailOpen makes Open(identifier) fail with err.
func (m *MockConnector) FailOpen(identifier string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.openErr[identifier] = err
}

// FailScreens makes Screens fail with err on connections to identifier.
func (m *MockConnector) FailScreens(identifier string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.screensErr[identifier] = err
}

// Open returns a connection to a known display or an error.
func (m *MockConnector) Open(identifier string) (Conn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.opens = append(m.opens, identifier)

	if err, ok := m.openErr[identifier]; ok {
		return nil, fmt.Errorf("failed to connect to display %s: %w", identifier, err)
	}

	screens, ok := m.displays[identifier]
	if !ok {
		return nil, fmt.Errorf("failed to connect to display %s: %w", identifier, ErrNoDisplay)
	}

	m.live++
	if m.live > m.maxLive {
		m.maxLive = m.live
	}

	return &mockConn{
		connector:  m,
		identifier: identifier,
		screens:    screens,
		screensErr: m.screensErr[identifier],
	}, nil
}

// Opens returns every identifier Open was called with, in order.
func (m *MockConnector) Opens() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string(nil), m.opens...)
}

// Closes returns the identifier of every connection closed, in order.
func (m *MockConnector) Closes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string(nil), m.closes...)
}

// LiveConns returns how many connections are open right now.
func (m *MockConnector) LiveConns() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.live
}

// MaxLiveConns returns the largest number of connections ever open at once.
func (m *MockConnector) MaxLiveConns() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.maxLive
}

// ExtraCloses returns how many times Close was called on an already closed connection.
func (m *MockConnector) ExtraCloses() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.extraClose
}

// mockConn implements Conn for MockConnector.
type mockConn struct {
	connector  *MockConnector
	identifier string
	screens    []Screen
	screensErr error
	closed     bool
}

// Screens returns the scripted screens.
func (c *mockConn) Screens() ([]Screen, error) {
	if c.closed {
		return nil, errConnClosed
	}
	if c.screensErr != nil {
		return nil, c.screensErr
	}

	return append([]Screen(nil), c.screens...), nil
}

// Close records the close with the connector.
func (c *mockConn) Close() error {
	c.connector.mu.Lock()
	defer c.connector.mu.Unlock()

	if c.closed {
		c.connector.extraClose++
		return errConnClosed
	}

	c.closed = true
	c.connector.live--
	c.connector.closes = append(c.connector.closes, c.identifier)

	return nil
}
