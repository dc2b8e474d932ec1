package branding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbeddedValues(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"CLIName", CLIName(), "protokit"},
		{"HomeDir", HomeDir(), ".protokit"},
		{"EnvPrefix", EnvPrefix(), "PROTOKIT"},
		{"EnvVar", EnvVar("home"), "PROTOKIT_HOME"},
		{"EnvVar uppercases suffix", EnvVar("definitions_dir"), "PROTOKIT_DEFINITIONS_DIR"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.got, tt.name)
	}
}
