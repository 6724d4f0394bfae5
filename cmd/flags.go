package cmd

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// bindFlags binds each viper key to the flag named next to it. A flag the
// user did not pass falls back to PS1_* and then to its default.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		f := flags.Lookup(name)
		if f == nil {
			panic("ps1: no flag named " + name)
		}
		// BindPFlag only fails on a nil flag.
		_ = v.BindPFlag(key, f)
	}
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}
