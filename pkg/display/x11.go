package display

import (
	"errors"
	"fmt"
	"net"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"go.uber.org/zap"
)

// XConnector implements Connector over the X11 protocol using xgb.
type XConnector struct {
	// SocketDir is the directory holding X<N> sockets. Empty means DefaultSocketDir.
	SocketDir string
}

// NewXConnector creates a connector for displays whose sockets live in socketDir.
func NewXConnector(socketDir string) *XConnector {
	return &XConnector{SocketDir: socketDir}
}

// RouteLibraryLogs sends xgb's internal log output to logger.
// xgb logs to stderr by default; this must be called once, before any Open,
// to keep the scan quiet.
func RouteLibraryLogs(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	xgb.Logger = zap.NewStdLog(logger.Named("xgb"))
}

// Open connects to the display named by identifier.
//
// For the default socket directory xgb resolves the socket and the
// Xauthority cookie itself. For any other directory the socket
// <SocketDir>/X<N> is dialed directly and the handshake is done over it.
func (c *XConnector) Open(identifier string) (Conn, error) {
	var (
		conn *xgb.Conn
		err  error
	)

	if c.usesDefaultDir() {
		conn, err = xgb.NewConnDisplay(identifier)
	} else {
		conn, err = c.dialSocketDir(identifier)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to display %s: %w", identifier, err)
	}

	return &xConn{conn: conn}, nil
}

func (c *XConnector) usesDefaultDir() bool {
	return c.SocketDir == "" || filepath.Clean(c.SocketDir) == DefaultSocketDir
}

func (c *XConnector) dialSocketDir(identifier string) (*xgb.Conn, error) {
	number, err := displayNumber(identifier)
	if err != nil {
		return nil, err
	}

	netConn, err := net.Dial("unix", filepath.Join(c.SocketDir, "X"+number))
	if err != nil {
		return nil, err //nolint:wrapcheck // Wrapped by Open
	}

	conn, err := xgb.NewConnNet(netConn)
	if err != nil {
		_ = netConn.Close()
		return nil, err //nolint:wrapcheck // Wrapped by Open
	}

	return conn, nil
}

// displayNumber extracts N from ":N" or ":N.S", rejecting anything else
// with the same message xgb uses for malformed display strings.
func displayNumber(identifier string) (string, error) {
	rest, ok := strings.CutPrefix(identifier, ":")
	if !ok {
		return "", fmt.Errorf("bad display string: %s", identifier)
	}

	number, _, _ := strings.Cut(rest, ".")

	n, err := strconv.Atoi(number)
	if err != nil || n < 0 {
		return "", fmt.Errorf("bad display string: %s", identifier)
	}

	return number, nil
}

// xConn adapts an xgb connection to Conn.
type xConn struct {
	conn   *xgb.Conn
	closed bool
}

// Screens reads the screen list from the connection setup reply.
func (c *xConn) Screens() ([]Screen, error) {
	if c.closed {
		return nil, errConnClosed
	}

	setup := xproto.Setup(c.conn)

	screens := make([]Screen, 0, len(setup.Roots))
	for _, root := range setup.Roots {
		screens = append(screens, Screen{
			Width:  int(root.WidthInPixels),
			Height: int(root.HeightInPixels),
		})
	}

	return screens, nil
}

// Close shuts the connection down. Later calls do nothing.
func (c *xConn) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.conn.Close()

	return nil
}

var errConnClosed = errors.New("display connection is closed")
