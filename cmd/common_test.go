package cmd

import (
	"testing"

	"github.com/cottand/inet/internal/settings"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand(t *testing.T, flags map[string]string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addCommonFlags(cmd)
	for name, value := range flags {
		require.NoError(t, cmd.Flags().Set(name, value))
	}
	return cmd
}

func TestLoadSettingsDefaults(t *testing.T) {
	loaded, err := loadSettings(newTestCommand(t, nil), target{dir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, settings.DefaultMaxSteps, loaded.MaxSteps)
}

func TestLoadSettingsFlagsOverride(t *testing.T) {
	loaded, err := loadSettings(newTestCommand(t, map[string]string{"max-steps": "0"}), target{dir: t.TempDir()})
	require.NoError(t, err)
	assert.Zero(t, loaded.MaxSteps)
}

func TestLoadSettingsValidatesFlags(t *testing.T) {
	tests := map[string]map[string]string{
		"negative steps":  {"max-steps": "-5"},
		"unknown level":   {"log-level": "bogus"},
		"unknown section": {"log-sections": "everything"},
	}
	for name, flags := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := loadSettings(newTestCommand(t, flags), target{dir: t.TempDir()})
			assert.Error(t, err)
		})
	}
}
