// Package flagx lets several config layers read their own flags from the
// same command line without tripping over each other's definitions.
package flagx

import (
	"flag"
	"io"
	"os"
	"strings"
)

// FilterArgs keeps only the allowed flags (and their values) from args.
//
// Both "-c conf.json" and "-c=conf.json" forms are recognised. A value is
// taken from the next argument only when it does not itself look like a flag.
// The result is never nil.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, found := strings.Cut(arg, "="); found && strings.HasPrefix(arg, "-") {
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; !ok {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// StringValue returns the value of the first of names found in args, or "".
// Names are given without dashes; both -name and --name are accepted.
func StringValue(args []string, names ...string) string {
	allowed := make([]string, 0, len(names)*2)
	for _, n := range names {
		allowed = append(allowed, "-"+n, "--"+n)
	}

	var value string
	fs := flag.NewFlagSet("flagx", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	for _, n := range names {
		fs.StringVar(&value, n, "", "")
	}
	_ = fs.Parse(FilterArgs(args, allowed))

	return value
}

// ConfigFile returns the JSON config path given with -c or -config.
func ConfigFile() string {
	return StringValue(os.Args[1:], "c", "config")
}

// EnvFile returns the dotenv path given with -env-file.
func EnvFile() string {
	return StringValue(os.Args[1:], "env-file")
}
