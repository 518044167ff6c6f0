package commands

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// configKey maps a flag name to its viper key: "package-manager" becomes
// "package_manager", which is also the preset key and, with the RAPH_
// prefix, the environment variable.
func configKey(flag string) string {
	return strings.ReplaceAll(flag, "-", "_")
}

// bindFlags binds every flag in fs to v under its config key.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		// BindPFlag only fails on a nil flag.
		_ = v.BindPFlag(configKey(f.Name), f)
	})
}

// changedKeys returns the config keys of the flags set on the command line.
func changedKeys(fs *pflag.FlagSet) []string {
	var keys []string
	fs.Visit(func(f *pflag.Flag) {
		keys = append(keys, configKey(f.Name))
	})
	return keys
}
