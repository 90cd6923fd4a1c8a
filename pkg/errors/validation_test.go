package errors

import (
	"testing"
)

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		name    string
		columns int
		rows    int
		wantErr bool
	}{
		{"flagship", 22, 6, false},
		{"note", 15, 3, false},
		{"single cell", 1, 1, false},

		{"zero columns", 0, 6, true},
		{"negative rows", 22, -1, true},
		{"too wide", MaxColumns + 1, 6, true},
		{"too tall", 22, MaxRows + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimensions(tt.columns, tt.rows)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimensions(%d, %d) error = %v, wantErr %v", tt.columns, tt.rows, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidConfig) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidConfig)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "red", false},
		{"with dash", "dark-blue", false},
		{"with digits", "gray50", false},

		{"empty", "", true},
		{"upper case", "Red", true},
		{"leading digit", "9lives", true},
		{"space", "dark blue", true},
		{"too long", string(make([]byte, 65)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName("color", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateVariableRef(t *testing.T) {
	tests := []struct {
		name    string
		plugin  string
		field   string
		wantErr bool
	}{
		{"valid", "weather", "temp", false},
		{"dotted field", "stocks", "AAPL.price", false},

		{"empty plugin", "", "temp", true},
		{"empty field", "weather", "", true},
		{"dotted plugin", "we.ather", "temp", true},
		{"control char", "weather", "te\x01mp", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVariableRef(tt.plugin, tt.field)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateVariableRef(%q, %q) error = %v, wantErr %v", tt.plugin, tt.field, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeConfiguration) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeConfiguration)
			}
		})
	}
}

func TestValidateMaxLength(t *testing.T) {
	if err := ValidateMaxLength(0); err != nil {
		t.Errorf("ValidateMaxLength(0) = %v, want nil", err)
	}
	if err := ValidateMaxLength(-1); err == nil {
		t.Error("ValidateMaxLength(-1) = nil, want error")
	}
	if err := ValidateMaxLength(MaxColumns); err != nil {
		t.Errorf("ValidateMaxLength(%d) = %v, want nil", MaxColumns, err)
	}
	if err := ValidateMaxLength(MaxColumns + 1); !Is(err, ErrCodeConfiguration) {
		t.Errorf("ValidateMaxLength(%d) = %v, want CONFIGURATION", MaxColumns+1, err)
	}
}
