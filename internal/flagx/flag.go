// Package flagx lets several independent flag sets share one command line.
// Each consumer keeps only the arguments its own FlagSet defines and parses
// those, so unknown flags never abort a parse.
package flagx

import (
	"flag"
	"io"
	"strings"
)

type boolFlag interface {
	IsBoolFlag() bool
}

// FilterArgs returns the arguments of args that belong to flags defined in
// fs, in their original order. Both "-name" and "--name" forms are kept,
// with "=value" or with the value as the next argument. Boolean flags never
// take the next argument. Positional arguments are dropped.
func FilterArgs(fs *flag.FlagSet, args []string) []string {
	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		if len(arg) < 2 || arg[0] != '-' {
			continue
		}

		name := strings.TrimLeft(arg, "-")
		name, _, hasValue := strings.Cut(name, "=")
		f := fs.Lookup(name)
		if f == nil {
			continue
		}

		filtered = append(filtered, arg)
		if hasValue {
			continue
		}
		if b, ok := f.Value.(boolFlag); ok && b.IsBoolFlag() {
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// Parse filters args for fs and parses the result.
func Parse(fs *flag.FlagSet, args []string) error {
	return fs.Parse(FilterArgs(fs, args))
}

// ConfigPath returns the value of -c or -config in args, or "" when neither
// is present.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = Parse(fs, args)

	return path
}
