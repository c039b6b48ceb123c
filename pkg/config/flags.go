// Package config builds the run-wide options of the line counter.
//
// Options are resolved exactly once, at command start, and passed by value to
// whatever needs them. Nothing below the command layer reads the environment.
package config

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnumerateContentsKey is the viper key of the enumerate option. With
// AutomaticEnv it maps to the ENUMERATE_CONTENTS environment variable.
const EnumerateContentsKey = "enumerate_contents"

// EnumerateFlag is the command-line flag bound to EnumerateContentsKey.
const EnumerateFlag = "enumerate"

// Flags holds the options of a single run.
type Flags struct {
	EnumerateContents bool // Print every line, numbered, after the count
}

// Load resolves Flags from the process environment and, when flags carries
// an --enumerate flag, from the command line.
//
// ENUMERATE_CONTENTS enables enumeration by presence alone: any value,
// including the empty string, counts as set. An explicit --enumerate takes
// precedence over the environment.
func Load(flags *pflag.FlagSet) Flags {
	v := viper.New()
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	explicit := false
	if flags != nil {
		if f := flags.Lookup(EnumerateFlag); f != nil {
			// BindPFlag only fails on a nil flag.
			_ = v.BindPFlag(EnumerateContentsKey, f)
			explicit = f.Changed
		}
	}

	if explicit {
		return Flags{EnumerateContents: v.GetBool(EnumerateContentsKey)}
	}
	// IsSet ignores bound flags left at their default.
	return Flags{EnumerateContents: v.IsSet(EnumerateContentsKey)}
}
