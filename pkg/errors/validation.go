package errors

import (
	"regexp"
	"unicode"
)

// Limits for board geometry. Real boards are far smaller; these bounds only
// keep a malformed config from allocating absurd cell arrays.
const (
	MaxColumns = 256
	MaxRows    = 64
)

// ValidateDimensions validates the board geometry read from configuration.
func ValidateDimensions(columns, rows int) error {
	if columns <= 0 || columns > MaxColumns {
		return New(ErrCodeInvalidConfig, "columns must be between 1 and %d, got %d", MaxColumns, columns)
	}
	if rows <= 0 || rows > MaxRows {
		return New(ErrCodeInvalidConfig, "rows must be between 1 and %d, got %d", MaxRows, rows)
	}
	return nil
}

// nameRegex matches palette names for colors and symbols.
var nameRegex = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// ValidateName validates a color or symbol name used as a palette key.
// kind is only used in the error message ("color", "symbol").
func ValidateName(kind, name string) error {
	if name == "" {
		return New(ErrCodeInvalidConfig, "%s name cannot be empty", kind)
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidConfig, "%s name too long (max 64 characters)", kind)
	}
	if !nameRegex.MatchString(name) {
		return New(ErrCodeInvalidConfig, "invalid %s name: %q", kind, name)
	}
	return nil
}

// ValidateVariableRef validates the plugin and field of a variable node.
//
// Validation rules:
//   - Neither part may be empty
//   - No control characters
//   - No '.' in the plugin ID, since "plugin.field" is the display form
func ValidateVariableRef(pluginID, field string) error {
	if pluginID == "" {
		return New(ErrCodeConfiguration, "variable plugin ID cannot be empty")
	}
	if field == "" {
		return New(ErrCodeConfiguration, "variable field cannot be empty")
	}
	for _, s := range []string{pluginID, field} {
		for _, r := range s {
			if unicode.IsControl(r) {
				return New(ErrCodeConfiguration, "variable reference contains control characters")
			}
		}
	}
	for _, r := range pluginID {
		if r == '.' {
			return New(ErrCodeConfiguration, "variable plugin ID cannot contain '.': %q", pluginID)
		}
	}
	return nil
}

// ValidateMaxLength validates the reserved width of a variable node. No
// variable can be wider than the widest supported board.
func ValidateMaxLength(n int) error {
	if n < 0 {
		return New(ErrCodeConfiguration, "variable maxLength cannot be negative, got %d", n)
	}
	if n > MaxColumns {
		return New(ErrCodeConfiguration, "variable maxLength cannot exceed %d, got %d", MaxColumns, n)
	}
	return nil
}
