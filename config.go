// Package bwd resolves a filesystem location into one of several display
// forms for shell integration: the absolute path, the path with a leading
// home directory shortened to $HOME, the path relative to the nearest
// project root, or a JSON document carrying all three.
package bwd

import "strings"

// Config is the structured form of one invocation's argument list. It is
// produced once by ParseArgs and never modified afterwards.
type Config struct {
	Target       string // first non-flag token, verbatim
	TargetSet    bool
	Copy         bool // write the rendered output to the clipboard
	ShortForm    bool // shorten a leading home directory to $HOME
	JSONOutput   bool // emit the structured document
	RootRelative bool // render relative to the project root
	Slashes      bool // rewrite separators to forward slashes
}

// ParseArgs scans args left to right into a Config. Flag interpretation is
// on until the first "--" token, which itself emits nothing. While on,
// recognized flags set their fields and any other token starting with "-"
// is dropped silently. Every remaining token is a target candidate; the
// first one wins and later ones are ignored, though flag scanning still
// continues after it.
func ParseArgs(args []string) Config {
	var cfg Config
	parsingFlags := true
	for _, arg := range args {
		if parsingFlags && arg == "--" {
			parsingFlags = false
			continue
		}
		if parsingFlags && strings.HasPrefix(arg, "-") {
			switch arg {
			case "-c", "--copy":
				cfg.Copy = true
			case "-s", "--short":
				cfg.ShortForm = true
			case "-j", "--json":
				cfg.JSONOutput = true
			case "-r", "--root":
				cfg.RootRelative = true
			case "--slashes":
				cfg.Slashes = true
			}
			continue
		}
		if !cfg.TargetSet {
			cfg.Target = arg
			cfg.TargetSet = true
		}
	}
	return cfg
}

// WantsHelp reports whether a help flag occurs before the first "--".
func WantsHelp(args []string) bool {
	return hasMetaFlag(args, "-h", "--help")
}

// WantsVersion reports whether a version flag occurs before the first "--".
func WantsVersion(args []string) bool {
	return hasMetaFlag(args, "-v", "--version")
}

func hasMetaFlag(args []string, short, long string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if arg == short || arg == long {
			return true
		}
	}
	return false
}
