//go:build integration

package enumerator_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/list-displays/internal/enumerator"
	"github.com/joe/list-displays/internal/fakex"
	"github.com/joe/list-displays/pkg/display"
	"github.com/joe/list-displays/pkg/filesystem"
)

// TestIntegration_RealDirectoryAndSockets runs a full scan over a real
// directory holding fake X servers, a stale socket and unrelated files.
func TestIntegration_RealDirectoryAndSockets(t *testing.T) {
	g := NewWithT(t)

	dir := t.TempDir()

	fakex.Serve(t, filepath.Join(dir, "X0"),
		fakex.Screen{Width: 1920, Height: 1080},
		fakex.Screen{Width: 1280, Height: 1024},
	)
	fakex.Serve(t, filepath.Join(dir, "X7"), fakex.Screen{Width: 1024, Height: 768})

	// Left behind by a server that is gone; connecting to it is refused
	g.Expect(os.WriteFile(filepath.Join(dir, "X9"), nil, 0o600)).To(Succeed())

	g.Expect(os.WriteFile(filepath.Join(dir, ".X0-lock"), []byte("1234\n"), 0o600)).To(Succeed())
	g.Expect(os.WriteFile(filepath.Join(dir, "Xjunk"), nil, 0o600)).To(Succeed())

	var out bytes.Buffer
	enum := enumerator.New(filesystem.NewRealFileSystem(), display.NewXConnector(dir), dir, &out)

	summary := enum.Run()

	lines := out.String()
	g.Expect(lines).To(ContainSubstring(":0.0\t1920x1080\n:0.1\t1280x1024\n"))
	g.Expect(lines).To(ContainSubstring(":7.0\t1024x768\n"))
	g.Expect(lines).NotTo(ContainSubstring(":9"))
	g.Expect(lines).NotTo(ContainSubstring("junk"))
	g.Expect(summary.Displays).To(Equal(2))
	g.Expect(summary.Skipped).To(Equal(2))
}

func TestIntegration_MissingDirectory(t *testing.T) {
	g := NewWithT(t)

	dir := filepath.Join(t.TempDir(), "absent")

	var out bytes.Buffer
	enum := enumerator.New(filesystem.NewRealFileSystem(), display.NewXConnector(dir), dir, &out)

	g.Expect(enum.Run()).To(Equal(enumerator.Summary{}))
	g.Expect(out.Len()).To(BeZero())
}

// TestIntegration_ServerHangsUpAfterSetup covers a server that goes away
// right after the handshake: the scan still reports it and returns normally.
func TestIntegration_ServerHangsUpAfterSetup(t *testing.T) {
	g := NewWithT(t)

	dir := t.TempDir()

	server := fakex.ServeThenHangUp(t, filepath.Join(dir, "X3"), fakex.Screen{Width: 640, Height: 480})

	var out bytes.Buffer
	enum := enumerator.New(filesystem.NewRealFileSystem(), display.NewXConnector(dir), dir, &out)

	summary := enum.Run()

	g.Expect(out.String()).To(Equal(":3.0\t640x480\n"))
	g.Expect(summary.Displays).To(Equal(1))
	g.Expect(server.Accepted()).To(Equal(1))

	// The next scan dials a fresh connection, which is dropped the same way.
	out.Reset()
	enum.Run()
	g.Expect(out.String()).To(Equal(":3.0\t640x480\n"))
}
