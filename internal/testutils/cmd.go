package testutils

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// FlagCase describes how a cobra flag is expected to be declared.
type FlagCase struct {
	Name       string
	Shorthand  string
	Persistent bool
	Required   bool
	Dirname    bool
	Filename   bool
	Default    string
}

// AssertFlag checks that cmd declares the flag described by fc.
func AssertFlag(t *testing.T, cmd *cobra.Command, fc FlagCase) {
	t.Helper()

	var flag *pflag.Flag
	if fc.Persistent {
		flag = cmd.PersistentFlags().Lookup(fc.Name)
	} else {
		flag = cmd.Flags().Lookup(fc.Name)
	}
	require.NotNil(t, flag, "Flag %q should be declared", fc.Name)

	assert.Equal(t, fc.Shorthand, flag.Shorthand, "Unexpected shorthand for %q", fc.Name)
	assert.Equal(t, fc.Default, flag.DefValue, "Unexpected default for %q", fc.Name)

	_, required := flag.Annotations[cobra.BashCompOneRequiredFlag]
	assert.Equal(t, fc.Required, required, "Unexpected required state for %q", fc.Name)

	_, dirname := flag.Annotations[cobra.BashCompSubdirsInDir]
	assert.Equal(t, fc.Dirname, dirname, "Unexpected dirname state for %q", fc.Name)

	_, filename := flag.Annotations[cobra.BashCompFilenameExt]
	assert.Equal(t, fc.Filename, filename, "Unexpected filename state for %q", fc.Name)
}
