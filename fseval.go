package bwd

import (
	"os"
	"path/filepath"
)

// FsEval abstracts the filesystem probes used during path resolution and
// root discovery, so both can be exercised without touching the host
// filesystem. Functions accepting an FsEval treat nil as the host
// filesystem.
type FsEval interface {
	// Stat must have the same semantics as os.Stat.
	Stat(path string) (os.FileInfo, error)
	// Lstat must have the same semantics as os.Lstat.
	Lstat(path string) (os.FileInfo, error)
	// EvalSymlinks must have the same semantics as filepath.EvalSymlinks.
	EvalSymlinks(path string) (string, error)
}

type osFsEval struct{}

func (osFsEval) Stat(path string) (os.FileInfo, error)    { return os.Stat(path) }
func (osFsEval) Lstat(path string) (os.FileInfo, error)   { return os.Lstat(path) }
func (osFsEval) EvalSymlinks(path string) (string, error) { return filepath.EvalSymlinks(path) }

func fsEvalOrDefault(fs FsEval) FsEval {
	if fs == nil {
		return osFsEval{}
	}
	return fs
}

// HomeDir returns the user's home directory from the environment, checking
// HOME and then USERPROFILE. ok is false when neither is set.
func HomeDir() (home string, ok bool) {
	if h := os.Getenv("HOME"); h != "" {
		return h, true
	}
	if h := os.Getenv("USERPROFILE"); h != "" {
		return h, true
	}
	return "", false
}
