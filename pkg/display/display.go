// Package display provides the display server client capability used by the
// scan: open a connection to an X display by identifier, read its screen
// geometry, close it. The real implementation speaks X11 through xgb; the
// mock lets tests script displays and check connection discipline.
package display

// DefaultSocketDir is where local X servers place their listening sockets.
const DefaultSocketDir = "/tmp/.X11-unix"

// Connector opens client connections to display servers.
type Connector interface {
	// Open connects to the display named by identifier (e.g. ":0").
	// On error no connection is returned and nothing needs closing.
	Open(identifier string) (Conn, error)
}

// Conn is an open connection to one display server.
// The owner must call Close exactly once.
type Conn interface {
	// Screens returns every screen the display exposes, indexed by screen number.
	Screens() ([]Screen, error)

	// Close releases the connection.
	Close() error
}

// Screen is the pixel geometry of one screen of a display.
type Screen struct {
	Width  int
	Height int
}
