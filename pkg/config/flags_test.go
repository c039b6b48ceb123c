package config

import (
	"os"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv removes key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("linecount", pflag.ContinueOnError)
	fs.BoolP(EnumerateFlag, "e", false, "enumerate")
	return fs
}

func TestLoad_AbsentIsFalse(t *testing.T) {
	unsetEnv(t, "ENUMERATE_CONTENTS")

	assert.False(t, Load(nil).EnumerateContents)
	assert.False(t, Load(newFlagSet()).EnumerateContents)
}

func TestLoad_PresenceIsTrue(t *testing.T) {
	for _, value := range []string{"1", "true", "false", "0", ""} {
		t.Run("value="+value, func(t *testing.T) {
			t.Setenv("ENUMERATE_CONTENTS", value)
			assert.True(t, Load(nil).EnumerateContents)
			assert.True(t, Load(newFlagSet()).EnumerateContents)
		})
	}
}

func TestLoad_ExplicitFlag(t *testing.T) {
	unsetEnv(t, "ENUMERATE_CONTENTS")

	fs := newFlagSet()
	require.NoError(t, fs.Parse([]string{"--enumerate", "a.txt"}))
	assert.True(t, Load(fs).EnumerateContents)
}

func TestLoad_ExplicitFlagOverridesEnvironment(t *testing.T) {
	t.Setenv("ENUMERATE_CONTENTS", "yes")

	fs := newFlagSet()
	require.NoError(t, fs.Parse([]string{"--enumerate=false"}))
	assert.False(t, Load(fs).EnumerateContents)
}

func TestLoad_FlagSetWithoutEnumerateFlag(t *testing.T) {
	t.Setenv("ENUMERATE_CONTENTS", "")

	fs := pflag.NewFlagSet("other", pflag.ContinueOnError)
	assert.True(t, Load(fs).EnumerateContents)
}

func TestLoad_ValueFixedAfterLoad(t *testing.T) {
	unsetEnv(t, "ENUMERATE_CONTENTS")

	flags := Load(nil)
	t.Setenv("ENUMERATE_CONTENTS", "1")
	assert.False(t, flags.EnumerateContents)
}
