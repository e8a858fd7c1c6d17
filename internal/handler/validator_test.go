package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type materialField struct {
	Material string `validate:"material"`
}

type versionField struct {
	GameVersion string `validate:"gameversion"`
}

type docFields struct {
	Name        string `validate:"required,max=64"`
	GameVersion string `validate:"gameversion"`
}

func TestValidator_MaterialValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name     string
		material string
		wantErr  bool
	}{
		{"vanilla name", "DIAMOND_SWORD", false},
		{"lowercase vanilla name", "stone", false},
		{"player head", "head-Notch", false},
		{"base64 head", "basehead-eyJ0ZXh0dXJlcyI6e319", false},
		{"plugin namespace", "oraxen-ruby_sword", false},
		{"placeholder", "placeholder-%player_item_in_hand%", false},
		{"equipment slot", "main_hand", false},

		// empty allowed (pair with required when mandatory)
		{"empty allowed", "", false},

		{"embedded space", "DIAMOND SWORD", true},
		{"prefixed with empty payload", "head-", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(materialField{Material: tt.material})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_GameVersionValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		version string
		wantErr bool
	}{
		{"two segments", "1.21", false},
		{"three segments", "1.20.4", false},
		{"empty allowed", "", false},
		{"snapshot name", "24w14a", true},
		{"trailing dot", "1.21.", true},
		{"single segment", "121", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(versionField{GameVersion: tt.version})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	InitValidator()
	v := GetValidator()

	t.Run("field messages do not leak struct internals", func(t *testing.T) {
		err := v.ValidateStruct(docFields{Name: strings.Repeat("x", 65), GameVersion: "latest"})
		require.Error(t, err)

		fields := FormatValidationError(err)
		assert.Equal(t, "Must be at most 64 characters", fields["name"])
		assert.Equal(t, "Invalid game version", fields["gameversion"])
	})

	t.Run("required", func(t *testing.T) {
		err := v.ValidateStruct(docFields{})
		require.Error(t, err)
		assert.Equal(t, "This field is required", FormatValidationError(err)["name"])
	})

	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})

	t.Run("non-validator error", func(t *testing.T) {
		fields := FormatValidationError(assert.AnError)
		assert.Equal(t, "Invalid request format", fields["error"])
	})
}
