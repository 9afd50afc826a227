package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"trending/internal/apperr"
)

func TestNewInvalidArgument(t *testing.T) {
	err := apperr.NewInvalidArgument("k must be positive")

	if err.Error() != "k must be positive" {
		t.Errorf("expected 'k must be positive', got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestNewInvalidArgumentWrap(t *testing.T) {
	inner := fmt.Errorf("syntax error in pattern")
	err := apperr.NewInvalidArgumentWrap("bad ignore pattern", inner)

	if err.Error() != "bad ignore pattern: syntax error in pattern" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestIsInvalidArgument_SurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("select top 0: %w", apperr.NewInvalidArgument("k must be positive"))
	doubleWrapped := fmt.Errorf("session: %w", wrapped)

	if !apperr.IsInvalidArgument(doubleWrapped) {
		t.Fatal("expected IsInvalidArgument to see through wrapping")
	}
}

func TestIsInvalidArgument_PlainError(t *testing.T) {
	if apperr.IsInvalidArgument(fmt.Errorf("read failed")) {
		t.Fatal("plain errors are not invalid arguments")
	}
	if apperr.IsInvalidArgument(nil) {
		t.Fatal("nil is not an invalid argument")
	}
}
