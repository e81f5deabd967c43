// Package enumerator scans the X socket directory and reports the screen
// geometry of every display that accepts a connection.
//
// The scan is best effort: an unreadable directory means no displays, and an
// entry whose display cannot be opened is skipped. Neither is reported on
// stdout; both are logged at debug level for verbose runs.
package enumerator

import (
	"fmt"
	"io"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/joe/list-displays/internal/logging"
	"github.com/joe/list-displays/pkg/display"
	pkgerrors "github.com/joe/list-displays/pkg/errors"
	"github.com/joe/list-displays/pkg/filesystem"
)

// Enumerator lists displays found in a socket directory.
type Enumerator struct {
	FS        filesystem.FileSystem
	Connector display.Connector
	SocketDir string
	Out       io.Writer

	// Optional collaborators; New fills in defaults.
	Filter   EntryFilter
	Enricher pkgerrors.Enricher
	Logger   *zap.Logger
}

// Summary counts what one Run saw.
type Summary struct {
	// Entries is every directory entry read
	Entries int

	// Candidates is entries that passed the filter
	Candidates int

	// Displays is candidates whose display opened and reported its screens
	Displays int

	// Screens is the number of lines written
	Screens int

	// Skipped is candidates whose display could not be opened or queried
	Skipped int
}

// New creates an Enumerator with the default filter, enricher and a silent logger.
func New(fs filesystem.FileSystem, connector display.Connector, socketDir string, out io.Writer) *Enumerator {
	return &Enumerator{
		FS:        fs,
		Connector: connector,
		SocketDir: socketDir,
		Out:       out,
		Filter:    NewSocketFilter(),
		Enricher:  pkgerrors.NewEnricher(),
		Logger:    zap.NewNop(),
	}
}

// Run performs one scan, writing "<id>.<screen>\t<w>x<h>" lines to Out.
// It never fails; the returned Summary is informational.
func (e *Enumerator) Run() Summary {
	logger := e.logger().With(zap.String(logging.KeySocketDir, e.SocketDir))

	var summary Summary

	scanner, err := e.FS.ReadDir(e.SocketDir)
	if err != nil {
		logger.Debug("socket directory unavailable, no displays", zap.Error(err))
		return summary
	}

	defer func() {
		_ = scanner.Close()
	}()

	for {
		entry, ok := scanner.Next()
		if !ok {
			break
		}
		summary.Entries++

		if !e.filter().ShouldInclude(entry.Name) {
			logger.Debug("ignoring entry", zap.String(logging.KeyEntry, entry.Name))
			continue
		}
		summary.Candidates++

		screens, ok := e.probe(logger, entry)
		if !ok {
			summary.Skipped++
			continue
		}

		summary.Displays++
		summary.Screens += screens
	}

	if err := scanner.Err(); err != nil {
		logger.Debug("socket directory scan stopped early", zap.Error(err))
	}

	logger.Debug("scan complete",
		zap.Int("entries", summary.Entries),
		zap.Int("candidates", summary.Candidates),
		zap.Int("displays", summary.Displays),
		zap.Int(logging.KeyScreens, summary.Screens),
		zap.Int("skipped", summary.Skipped),
	)

	return summary
}

// probe opens one display, prints its screens and closes it.
// It returns the number of lines written and whether the display was reported.
func (e *Enumerator) probe(logger *zap.Logger, entry filesystem.DirEntry) (int, bool) {
	identifier := Identifier(entry.Name)
	socketPath := filepath.Join(e.SocketDir, entry.Name)
	logger = logger.With(
		zap.String(logging.KeyEntry, entry.Name),
		zap.String(logging.KeyDisplay, identifier),
		zap.Bool(logging.KeySocket, entry.IsSocket()),
	)

	conn, err := e.Connector.Open(identifier)
	if err != nil {
		e.logSkip(logger, "display unreachable", socketPath, err)
		return 0, false
	}

	defer func() {
		if closeErr := conn.Close(); closeErr != nil {
			logger.Debug("closing display failed", zap.Error(closeErr))
		}
	}()

	screens, err := conn.Screens()
	if err != nil {
		e.logSkip(logger, "reading screens failed", socketPath, err)
		return 0, false
	}

	for index, screen := range screens {
		_, _ = fmt.Fprintf(e.Out, "%s.%d\t%dx%d\n", identifier, index, screen.Width, screen.Height)
	}

	logger.Debug("display reported", zap.Int(logging.KeyScreens, len(screens)))

	return len(screens), true
}

// logSkip records why a socket was skipped, followed by what to try about it.
func (e *Enumerator) logSkip(logger *zap.Logger, msg, socketPath string, err error) {
	enriched := e.enricher().Enrich(err, socketPath)

	fields := []zap.Field{zap.Error(err)}
	if actionable, ok := enriched.(pkgerrors.ActionableError); ok {
		fields = append(fields, zap.String(logging.KeyCategory, string(actionable.Category())))
	}

	logger.Debug(msg, fields...)

	if suggestions := pkgerrors.FormatSuggestions(enriched); suggestions != "" {
		logger.Debug("suggestions:\n" + suggestions)
	}
}

func (e *Enumerator) filter() EntryFilter {
	if e.Filter == nil {
		e.Filter = NewSocketFilter()
	}

	return e.Filter
}

func (e *Enumerator) enricher() pkgerrors.Enricher {
	if e.Enricher == nil {
		e.Enricher = pkgerrors.NewEnricher()
	}

	return e.Enricher
}

func (e *Enumerator) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}

	return e.Logger
}
