package display_test

import (
	"errors"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/list-displays/pkg/display"
)

func TestMockConnector_OpenKnownDisplay(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	connector := display.NewMockConnector()
	connector.AddDisplay(":0", display.Screen{Width: 1920, Height: 1080}, display.Screen{Width: 1280, Height: 1024})

	conn, err := connector.Open(":0")
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(connector.LiveConns()).To(Equal(1))

	screens, err := conn.Screens()
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(screens).To(Equal([]display.Screen{{Width: 1920, Height: 1080}, {Width: 1280, Height: 1024}}))

	g.Expect(conn.Close()).To(Succeed())
	g.Expect(connector.LiveConns()).To(Equal(0))
	g.Expect(connector.Closes()).To(Equal([]string{":0"}))
}

func TestMockConnector_OpenUnknownDisplay(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	connector := display.NewMockConnector()

	conn, err := connector.Open(":9")
	g.Expect(err).To(MatchError(display.ErrNoDisplay))
	g.Expect(conn).To(BeNil())
	g.Expect(connector.Opens()).To(Equal([]string{":9"}))
	g.Expect(connector.LiveConns()).To(Equal(0))
}

func TestMockConnector_FailOpen(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	refused := errors.New("connection refused")
	connector := display.NewMockConnector()
	connector.AddDisplay(":1", display.Screen{Width: 800, Height: 600})
	connector.FailOpen(":1", refused)

	_, err := connector.Open(":1")
	g.Expect(err).To(MatchError(refused))
	g.Expect(connector.MaxLiveConns()).To(Equal(0))
}

func TestMockConnector_FailScreens(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	broken := errors.New("unexpected EOF")
	connector := display.NewMockConnector()
	connector.AddDisplay(":2")
	connector.FailScreens(":2", broken)

	conn, err := connector.Open(":2")
	g.Expect(err).ShouldNot(HaveOccurred())

	_, err = conn.Screens()
	g.Expect(err).To(MatchError(broken))
	g.Expect(conn.Close()).To(Succeed())
}

func TestMockConnector_DoubleCloseIsCounted(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	connector := display.NewMockConnector()
	connector.AddDisplay(":0")

	conn, err := connector.Open(":0")
	g.Expect(err).ShouldNot(HaveOccurred())

	g.Expect(conn.Close()).To(Succeed())
	g.Expect(conn.Close()).ShouldNot(Succeed())
	g.Expect(connector.ExtraCloses()).To(Equal(1))
	g.Expect(connector.Closes()).To(HaveLen(1))
}

func TestMockConnector_TracksOverlap(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	connector := display.NewMockConnector()
	connector.AddDisplay(":0")
	connector.AddDisplay(":1")

	first, err := connector.Open(":0")
	g.Expect(err).ShouldNot(HaveOccurred())
	second, err := connector.Open(":1")
	g.Expect(err).ShouldNot(HaveOccurred())

	g.Expect(connector.MaxLiveConns()).To(Equal(2))

	_ = first.Close()
	_ = second.Close()
	g.Expect(connector.LiveConns()).To(Equal(0))
}
