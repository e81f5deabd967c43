package errors_test

import (
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/joe/list-displays/pkg/errors"
)

func TestEnricher_EnrichAlreadyActionableError(t *testing.T) {
	t.Parallel()

	enricher := pkgerrors.NewEnricher()
	originalActionable := pkgerrors.NewActionableError(
		"connection refused",
		pkgerrors.CategoryRefused,
		[]string{"existing suggestion"},
		"/tmp/.X11-unix/X0",
	)

	enriched := enricher.Enrich(originalActionable, ":5")

	var actionableErr pkgerrors.ActionableError
	if !errors.As(enriched, &actionableErr) {
		t.Fatalf("expected ActionableError, got %T", enriched)
	}

	if actionableErr != originalActionable {
		t.Error("expected same ActionableError instance when enriching ActionableError")
	}
}

func TestEnricher_EnrichNil(t *testing.T) {
	t.Parallel()

	if enriched := pkgerrors.NewEnricher().Enrich(nil, ":0"); enriched != nil {
		t.Errorf("expected nil, got %v", enriched)
	}
}

func TestEnricher_EnrichWrappedDialError(t *testing.T) {
	t.Parallel()

	enricher := pkgerrors.NewEnricher()
	dialErr := errors.New("dial unix /tmp/.X11-unix/X1: connect: connection refused")
	wrapped := fmt.Errorf("failed to connect to display :1: %w", dialErr)

	enriched := enricher.Enrich(wrapped, ":1")

	var actionableErr pkgerrors.ActionableError
	if !errors.As(enriched, &actionableErr) {
		t.Fatalf("expected ActionableError, got %T", enriched)
	}

	if actionableErr.Category() != pkgerrors.CategoryRefused {
		t.Errorf("expected category %q, got %q", pkgerrors.CategoryRefused, actionableErr.Category())
	}
	if actionableErr.AffectedPath() != ":1" {
		t.Errorf("expected affected path %q, got %q", ":1", actionableErr.AffectedPath())
	}
	if actionableErr.Error() != wrapped.Error() {
		t.Errorf("expected message to be preserved, got %q", actionableErr.Error())
	}
}

func TestEnricher_ExtractPathFromErrorMessage(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		errorMsg     string
		expectedPath string
	}{
		{"dial unix /tmp/.X11-unix/X3: connect: connection refused", "/tmp/.X11-unix/X3"},
		{"failed to open directory /tmp/.X11-unix: permission denied", "/tmp/.X11-unix"},
		{"bad display string: :foo", ":foo"},
		{"unexpected EOF", ""},
	}

	enricher := pkgerrors.NewEnricher()

	for _, testCase := range testCases {
		enriched := enricher.Enrich(errors.New(testCase.errorMsg), "")

		var actionableErr pkgerrors.ActionableError
		if !errors.As(enriched, &actionableErr) {
			t.Fatalf("expected ActionableError, got %T", enriched)
		}

		if actionableErr.AffectedPath() != testCase.expectedPath {
			t.Errorf("Enrich(%q): expected path %q, got %q",
				testCase.errorMsg, testCase.expectedPath, actionableErr.AffectedPath())
		}
	}
}

func TestEnricher_UnknownErrorStillHasSuggestions(t *testing.T) {
	t.Parallel()

	enriched := pkgerrors.NewEnricher().Enrich(errors.New("gremlins"), ":7")

	var actionableErr pkgerrors.ActionableError
	if !errors.As(enriched, &actionableErr) {
		t.Fatalf("expected ActionableError, got %T", enriched)
	}

	if actionableErr.Category() != pkgerrors.CategoryUnknown {
		t.Errorf("expected category %q, got %q", pkgerrors.CategoryUnknown, actionableErr.Category())
	}
	if pkgerrors.FormatSuggestions(enriched) == "" {
		t.Error("expected formatted suggestions for unknown error")
	}
}
