// Package override merges optional per-service enable/disable overrides with
// a required base value.
package override

import (
	"fmt"
	"strings"
)

// Toggle is a three-valued override.
type Toggle int

const (
	Unset Toggle = iota
	Enabled
	Disabled
)

func (t Toggle) String() string {
	switch t {
	case Enabled:
		return "enabled"
	case Disabled:
		return "disabled"
	default:
		return "unset"
	}
}

// Parse accepts "enabled"/"on"/"true", "disabled"/"off"/"false" and
// "unset"/"" (case-insensitive).
func Parse(s string) (Toggle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unset", "default":
		return Unset, nil
	case "enabled", "on", "true":
		return Enabled, nil
	case "disabled", "off", "false":
		return Disabled, nil
	}
	return Unset, fmt.Errorf("invalid override %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler so toggles decode
// directly from TOML and JSON strings.
func (t *Toggle) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (t Toggle) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Merge returns the override if it is set, else base.
func Merge(t Toggle, base bool) bool {
	switch t {
	case Enabled:
		return true
	case Disabled:
		return false
	default:
		return base
	}
}

// Set maps service names to overrides. A nil Set overrides nothing.
type Set map[string]Toggle

// Enabled reports whether service is enabled given its base value.
func (s Set) Enabled(service string, base bool) bool {
	return Merge(s[service], base)
}
