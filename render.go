package bwd

import (
	"encoding/json"
	"path/filepath"
	"strings"
)

// homePlaceholder replaces a detected home-directory prefix in short-form
// output.
const homePlaceholder = "$HOME"

// Document is the structured output: all three representations of the
// resolved path, regardless of which flags were set. Root is null when no
// ancestor carries a project-root marker.
type Document struct {
	Path  string  `json:"path"`
	Short string  `json:"short"`
	Root  *string `json:"root"`
}

// Render produces the output text for resolved according to cfg. The
// branches are mutually exclusive and tried in fixed priority order — JSON,
// short form, root-relative, plain absolute — and only the first match
// fires, so -s wins over -r outside JSON mode. Root-relative is the one
// branch that can fail outright (KindRootNotFound). The --slashes rewrite
// applies to the plain-text branches only, never to document fields.
func Render(resolved string, cfg Config, home string, fs FsEval) (string, error) {
	if cfg.JSONOutput {
		return renderDocument(resolved, home, fs)
	}

	var out string
	switch {
	case cfg.ShortForm:
		out = Shorten(resolved, home)
	case cfg.RootRelative:
		root, ok := FindRoot(resolved, fs)
		if !ok {
			return "", &Error{Kind: KindRootNotFound, Detail: resolved}
		}
		out = relativeTo(resolved, root)
	default:
		out = resolved
	}
	if cfg.Slashes {
		out = strings.ReplaceAll(out, string(filepath.Separator), "/")
	}
	return out, nil
}

func renderDocument(resolved, home string, fs FsEval) (string, error) {
	doc := Document{
		Path:  resolved,
		Short: Shorten(resolved, home),
	}
	if root, ok := FindRoot(resolved, fs); ok {
		rel := relativeTo(resolved, root)
		doc.Root = &rel
	}
	buf, err := json.Marshal(doc)
	if err != nil {
		return "", &Error{Kind: KindJSON, Err: err}
	}
	return string(buf), nil
}

// Shorten replaces a home-directory prefix of path with the placeholder
// token: the token alone when path equals home, the token joined with the
// remainder when path is nested under home, and path unchanged otherwise.
// The prefix test is segment-aware, so /home/username is not under
// /home/user.
func Shorten(path, home string) string {
	if home == "" {
		return path
	}
	if path == home {
		return homePlaceholder
	}
	prefix := home
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	if !strings.HasPrefix(path, prefix) {
		return path
	}
	return filepath.Join(homePlaceholder, path[len(prefix):])
}

func relativeTo(path, root string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		// root is an ancestor of path, so Rel cannot fail; keep the
		// degenerate answer total anyway.
		return "."
	}
	return rel
}
