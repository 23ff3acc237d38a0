package ui

import (
	"strings"
	"testing"
)

func TestFatalErrorNil(t *testing.T) {
	// Must return without printing or exiting; reaching the end of the
	// test is the assertion for the exit part.
	output := captureOutput(func() {
		FatalError(nil)
	})
	if output != "" {
		t.Errorf("FatalError(nil) printed %q, want nothing", output)
	}
}

func TestWarningF(t *testing.T) {
	output := captureOutput(func() {
		WarningF("stale PID %d", 1234)
	})
	if !strings.Contains(output, "stale PID 1234") {
		t.Errorf("Expected formatted message, got: %s", output)
	}
}

func TestSuccessF(t *testing.T) {
	output := captureOutput(func() {
		SuccessF("daemon running (PID %d)", 42)
	})
	if !strings.Contains(output, "daemon running (PID 42)") {
		t.Errorf("Expected formatted message, got: %s", output)
	}
}
