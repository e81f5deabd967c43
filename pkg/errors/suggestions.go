package errors

import "fmt"

// SuggestionGenerator generates actionable suggestions based on error category.
type SuggestionGenerator interface {
	Generate(category ErrorCategory, affectedPath string) []string
}

// NewSuggestionGenerator creates a new SuggestionGenerator.
func NewSuggestionGenerator() SuggestionGenerator {
	return &suggestionGenerator{}
}

// suggestionGenerator is the concrete implementation of SuggestionGenerator.
type suggestionGenerator struct{}

// Generate returns actionable suggestions based on the error category and affected path.
func (g *suggestionGenerator) Generate(category ErrorCategory, affectedPath string) []string {
	switch category {
	case CategoryDisplayName:
		return g.generateDisplayNameSuggestions(affectedPath)
	case CategoryAuthorization:
		return g.generateAuthorizationSuggestions(affectedPath)
	case CategoryPermission:
		return g.generatePermissionSuggestions(affectedPath)
	case CategoryRefused:
		return g.generateRefusedSuggestions(affectedPath)
	case CategorySocketMissing:
		return g.generateSocketMissingSuggestions(affectedPath)
	case CategoryProtocol:
		return g.generateProtocolSuggestions(affectedPath)
	case CategoryUnknown:
		return g.generateUnknownSuggestions(affectedPath)
	default:
		return g.generateUnknownSuggestions(affectedPath)
	}
}

func (g *suggestionGenerator) generateAuthorizationSuggestions(path string) []string {
	suggestions := []string{
		"The X server rejected the connection's credentials",
		"Check that XAUTHORITY points at the cookie file for this session",
		"List known cookies with 'xauth list'",
	}

	if path != "" {
		suggestions = append(suggestions, fmt.Sprintf("Check who owns the server with 'ls -la %s'", path))
	}

	suggestions = append(suggestions, "Run the scan as the user that owns the display")

	return suggestions
}

func (g *suggestionGenerator) generateDisplayNameSuggestions(path string) []string {
	suggestions := []string{
		"Socket names must be X followed by a display number, e.g. X0",
	}

	if path != "" {
		suggestions = append(suggestions, fmt.Sprintf("%s does not name a display; it is not an X server socket", path))
	}

	return suggestions
}

func (g *suggestionGenerator) generatePermissionSuggestions(path string) []string {
	suggestions := []string{
		"Ensure you can read the socket directory and connect to its sockets",
	}

	if path != "" {
		suggestions = append(suggestions, fmt.Sprintf("Check permissions with 'ls -la %s'", path))
	} else {
		suggestions = append(suggestions, "Check permissions with 'ls -la /tmp/.X11-unix'")
	}

	return suggestions
}

func (g *suggestionGenerator) generateProtocolSuggestions(_ string) []string {
	return []string{
		"The peer did not complete an X11 connection setup",
		"Verify the socket belongs to an X server and not another service",
	}
}

func (g *suggestionGenerator) generateRefusedSuggestions(path string) []string {
	suggestions := []string{
		"No X server is listening on this socket; it is probably stale",
		"Check running servers with 'ps -e | grep -i xorg'",
	}

	if path != "" {
		suggestions = append(suggestions, "Remove the stale socket if no server owns it: "+path)
	}

	return suggestions
}

func (g *suggestionGenerator) generateSocketMissingSuggestions(path string) []string {
	suggestions := []string{
		"The socket disappeared between listing and connecting, or is not a socket",
	}

	if path != "" {
		suggestions = append(suggestions, "Check if the socket exists: "+path)
	}

	return suggestions
}

func (g *suggestionGenerator) generateUnknownSuggestions(path string) []string {
	suggestions := []string{
		"Check the error message for more details",
		"Verify an X server is running for this display",
	}

	if path != "" {
		suggestions = append(suggestions, "Verify the display is reachable: "+path)
	}

	return suggestions
}
