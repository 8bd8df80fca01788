package hypr

import (
	"bytes"
	"encoding/json"
	"errors"
	"os/exec"
	"strings"
)

// ErrNoFocusedMonitor is returned when hyprctl reports no focused monitor.
var ErrNoFocusedMonitor = errors.New("no focused monitor")

// Monitor is the subset of hyprctl's monitor JSON we care about.
type Monitor struct {
	Name    string `json:"name"`
	Focused bool   `json:"focused"`
}

// HyprctlError wraps a failed hyprctl invocation with its stderr output.
type HyprctlError struct {
	Args   string
	Stderr string
	Err    error
}

func (e *HyprctlError) Error() string {
	return "hyprctl " + e.Args + ": " + e.Stderr
}

func (e *HyprctlError) Unwrap() error { return e.Err }

// runHyprctl executes hyprctl and returns stdout.
func runHyprctl(args ...string) ([]byte, error) {
	cmd := exec.Command("hyprctl", args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return nil, &HyprctlError{
				Args:   strings.Join(args, " "),
				Stderr: stderr.String(),
				Err:    err,
			}
		}

		return nil, err
	}

	return stdout.Bytes(), nil
}

// FocusedMonitor returns the name of the currently focused monitor as
// reported by `hyprctl -j monitors`.
func FocusedMonitor() (string, error) {
	out, err := runHyprctl("-j", "monitors")
	if err != nil {
		return "", err
	}

	return ParseFocusedMonitor(out)
}

// ParseFocusedMonitor decodes hyprctl monitor JSON and picks the focused
// entry.
func ParseFocusedMonitor(data []byte) (string, error) {
	var monitors []Monitor
	if err := json.Unmarshal(data, &monitors); err != nil {
		return "", err
	}

	for _, m := range monitors {
		if m.Focused {
			return m.Name, nil
		}
	}

	return "", ErrNoFocusedMonitor
}
