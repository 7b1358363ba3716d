package bwd

import (
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Marker entries that identify a project root. The entry only has to exist;
// a file named .git qualifies just as a .git directory does.
const (
	gitMarker = ".git"
	bwdMarker = ".bwd-root"
)

// FindRoot walks from path toward the filesystem root and returns the first
// directory, possibly path itself, containing a marker entry. ok is false
// when the walk runs out of parents without a match. The walk is bounded by
// path depth; callers pass canonicalized paths, so the ancestor chain has
// no cycles.
func FindRoot(path string, fs FsEval) (root string, ok bool) {
	fs = fsEvalOrDefault(fs)
	dir := path
	for {
		if hasMarker(dir, fs) {
			logrus.WithField("root", dir).Debug("found project root")
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func hasMarker(dir string, fs FsEval) bool {
	for _, marker := range []string{gitMarker, bwdMarker} {
		if _, err := fs.Lstat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}
