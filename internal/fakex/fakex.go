// Package fakex runs a minimal X11 server on a unix socket for tests.
// It answers the connection setup handshake with a scripted screen list
// (or a refusal) and then holds the connection open until the client leaves,
// or hangs up straight away to mimic a server going down mid-scan.
// It implements nothing past setup.
package fakex

import (
	"encoding/binary"
	"io"
	"net"
	"sync"
	"testing"
)

// Screen is the geometry a fake server advertises for one root window.
type Screen struct {
	Width  uint16
	Height uint16
}

// Server is a running fake X server.
type Server struct {
	listener net.Listener
	screens  []Screen
	refusal  string
	hangUp   bool

	mu       sync.Mutex
	accepted int
}

// Serve listens on socketPath and answers every client with screens.
// The listener is closed when the test ends.
func Serve(t *testing.T, socketPath string, screens ...Screen) *Server {
	t.Helper()

	return start(t, socketPath, &Server{screens: screens})
}

// ServeThenHangUp answers every client with screens and closes the
// connection as soon as the setup reply is written.
func ServeThenHangUp(t *testing.T, socketPath string, screens ...Screen) *Server {
	t.Helper()

	return start(t, socketPath, &Server{screens: screens, hangUp: true})
}

// Refuse listens on socketPath and rejects every setup with reason.
func Refuse(t *testing.T, socketPath, reason string) *Server {
	t.Helper()

	return start(t, socketPath, &Server{refusal: reason})
}

// Accepted returns how many client connections the server has seen.
func (s *Server) Accepted() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.accepted
}

func start(t *testing.T, socketPath string, server *Server) *Server {
	t.Helper()

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		t.Skipf("unix sockets unavailable: %v", err)
	}

	server.listener = listener

	go server.acceptLoop()

	t.Cleanup(func() {
		_ = listener.Close()
	})

	return server
}

func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return
		}

		s.mu.Lock()
		s.accepted++
		s.mu.Unlock()

		go s.handle(conn)
	}
}

func (s *Server) handle(conn net.Conn) {
	defer func() {
		_ = conn.Close()
	}()

	// Setup request: byte order, pad, major, minor, auth name len, auth data len, pad
	head := make([]byte, 12)
	if _, err := io.ReadFull(conn, head); err != nil {
		return
	}

	order := byteOrder(head[0])
	nameLen := int(order.Uint16(head[6:]))
	dataLen := int(order.Uint16(head[8:]))

	if _, err := io.CopyN(io.Discard, conn, int64(pad4(nameLen)+pad4(dataLen))); err != nil {
		return
	}

	var reply []byte
	if s.refusal != "" {
		reply = failedReply(order, s.refusal)
	} else {
		reply = setupReply(order, s.screens)
	}

	if _, err := conn.Write(reply); err != nil || s.hangUp {
		return
	}

	// Hold the connection until the client hangs up.
	_, _ = io.Copy(io.Discard, conn)
}

func byteOrder(b byte) binary.ByteOrder {
	if b == 'B' {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func pad4(n int) int {
	return (n + 3) &^ 3
}

func failedReply(order binary.ByteOrder, reason string) []byte {
	reasonLen := pad4(len(reason))
	reply := make([]byte, 8+reasonLen)
	reply[0] = 0
	reply[1] = byte(len(reason))
	order.PutUint16(reply[2:], 11)
	order.PutUint16(reply[4:], 0)
	order.PutUint16(reply[6:], uint16(reasonLen/4)) //nolint:gosec // Reasons are short
	copy(reply[8:], reason)

	return reply
}

const (
	vendor          = "fake"
	setupFixedSize  = 32
	screenBlockSize = 40
	resourceIDBase  = 0x00400000
	resourceIDMask  = 0x001fffff
	maxRequestLen   = 0xffff
)

func setupReply(order binary.ByteOrder, screens []Screen) []byte {
	extra := setupFixedSize + pad4(len(vendor)) + screenBlockSize*len(screens)
	reply := make([]byte, 8+extra)

	reply[0] = 1
	order.PutUint16(reply[2:], 11)
	order.PutUint16(reply[4:], 0)
	order.PutUint16(reply[6:], uint16(extra/4)) //nolint:gosec // Small by construction

	b := reply[8:]
	order.PutUint32(b[0:], 1)              // release number
	order.PutUint32(b[4:], resourceIDBase) // resource id base
	order.PutUint32(b[8:], resourceIDMask) // resource id mask
	order.PutUint32(b[12:], 0)             // motion buffer size
	order.PutUint16(b[16:], uint16(len(vendor)))
	order.PutUint16(b[18:], maxRequestLen)
	b[20] = byte(len(screens))
	b[21] = 0 // pixmap formats
	b[22] = 0 // image byte order: LSBFirst
	b[23] = 0 // bitmap bit order
	b[24] = 32
	b[25] = 32
	b[26] = 8   // min keycode
	b[27] = 255 // max keycode
	copy(b[setupFixedSize:], vendor)

	off := setupFixedSize + pad4(len(vendor))
	for i, screen := range screens {
		s := b[off+i*screenBlockSize:]
		root := uint32(resourceIDBase + 0x100 + i) //nolint:gosec // Small by construction
		order.PutUint32(s[0:], root)
		order.PutUint32(s[4:], root+1)   // default colormap
		order.PutUint32(s[8:], 0xffffff) // white pixel
		order.PutUint32(s[12:], 0)       // black pixel
		order.PutUint32(s[16:], 0)       // current input masks
		order.PutUint16(s[20:], screen.Width)
		order.PutUint16(s[22:], screen.Height)
		order.PutUint16(s[24:], screen.Width/4)  // width in mm
		order.PutUint16(s[26:], screen.Height/4) // height in mm
		order.PutUint16(s[28:], 1)               // min installed maps
		order.PutUint16(s[30:], 1)               // max installed maps
		order.PutUint32(s[32:], root+2)          // root visual
		s[36] = 0                                // backing stores
		s[37] = 0                                // save unders
		s[38] = 24                               // root depth
		s[39] = 0                                // allowed depths
	}

	return reply
}
