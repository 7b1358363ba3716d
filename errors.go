package bwd

import "fmt"

// ErrorKind discriminates the closed set of failures bwd can produce.
type ErrorKind int

// The failure kinds. Every error returned by this package is an *Error
// carrying exactly one of these.
const (
	KindIO           ErrorKind = iota // underlying filesystem or environment failure
	KindInvalidPath                   // supplied target does not exist
	KindRootNotFound                  // root-relative output requested, no marker in any ancestor
	KindClipboard                     // clipboard write failed
	KindJSON                          // structured-output encoding failed
)

var errorKindNames = map[ErrorKind]string{
	KindIO:           "Io",
	KindInvalidPath:  "InvalidPath",
	KindRootNotFound: "RootNotFound",
	KindClipboard:    "Clipboard",
	KindJSON:         "Json",
}

// String returns the name of the ErrorKind.
func (k ErrorKind) String() string {
	return errorKindNames[k]
}

// Error is the one error type of this package: a kind discriminant plus the
// context that kind carries. Detail holds the user-supplied string for
// KindInvalidPath and the searched path for KindRootNotFound; Err holds the
// wrapped cause for the other kinds.
type Error struct {
	Kind   ErrorKind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidPath:
		return fmt.Sprintf("Invalid path: '%s'", e.Detail)
	case KindRootNotFound:
		return fmt.Sprintf("No project root found for '%s'", e.Detail)
	case KindClipboard:
		return fmt.Sprintf("Clipboard Error: %v", e.Err)
	case KindJSON:
		return fmt.Sprintf("JSON Error: %v", e.Err)
	default:
		return fmt.Sprintf("IO Error: %v", e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IOError wraps an underlying filesystem or environment failure.
func IOError(err error) error {
	return &Error{Kind: KindIO, Err: err}
}
