package bwd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// extendedPathPrefix is the extended-length marker Windows canonicalization
// can introduce. It is stripped before the path is used anywhere downstream.
const extendedPathPrefix = `\\?\`

// Resolve turns cfg's target, or its absence, plus the current working
// directory into a canonical absolute path. Without a target the result is
// cwd unchanged and the filesystem is never consulted. With one, an
// absolute target replaces cwd and a relative target joins onto it; the
// joined path must exist (KindInvalidPath carries the target exactly as the
// user supplied it) and is then canonicalized, resolving symlinks and dot
// segments.
func Resolve(cfg Config, cwd string, fs FsEval) (string, error) {
	if !cfg.TargetSet {
		return cwd, nil
	}
	fs = fsEvalOrDefault(fs)

	joined := cfg.Target
	if !filepath.IsAbs(joined) {
		joined = filepath.Join(cwd, cfg.Target)
	}
	if _, err := fs.Stat(joined); err != nil {
		if os.IsNotExist(err) {
			return "", &Error{Kind: KindInvalidPath, Detail: cfg.Target}
		}
		return "", IOError(err)
	}

	resolved, err := fs.EvalSymlinks(joined)
	if err != nil {
		return "", IOError(err)
	}
	resolved = stripExtendedPrefix(resolved)
	logrus.WithFields(logrus.Fields{
		"target":   cfg.Target,
		"resolved": resolved,
	}).Debug("resolved target")
	return resolved, nil
}

func stripExtendedPrefix(path string) string {
	return strings.TrimPrefix(path, extendedPathPrefix)
}
