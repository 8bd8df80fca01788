package hypr

import (
	"errors"
	"testing"
)

func TestParseFocusedMonitor(t *testing.T) {
	data := []byte(`[
		{"id": 0, "name": "eDP-1", "focused": false},
		{"id": 1, "name": "DP-3", "focused": true}
	]`)

	name, err := ParseFocusedMonitor(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "DP-3" {
		t.Errorf("expected DP-3, got %q", name)
	}
}

func TestParseFocusedMonitor_NoneFocused(t *testing.T) {
	data := []byte(`[{"id": 0, "name": "eDP-1", "focused": false}]`)

	_, err := ParseFocusedMonitor(data)
	if !errors.Is(err, ErrNoFocusedMonitor) {
		t.Errorf("expected ErrNoFocusedMonitor, got %v", err)
	}
}

func TestParseFocusedMonitor_EmptyList(t *testing.T) {
	_, err := ParseFocusedMonitor([]byte(`[]`))
	if !errors.Is(err, ErrNoFocusedMonitor) {
		t.Errorf("expected ErrNoFocusedMonitor, got %v", err)
	}
}

func TestParseFocusedMonitor_InvalidJSON(t *testing.T) {
	_, err := ParseFocusedMonitor([]byte(`not json`))
	if err == nil {
		t.Error("expected decode error for invalid JSON")
	}
}
