package bwd

import "github.com/atotto/clipboard"

// clipboardWriteAll is swappable so the wrapper can be exercised without a
// real clipboard service.
var clipboardWriteAll = clipboard.WriteAll

// WriteClipboard replaces the system clipboard contents with text. Failures
// surface as KindClipboard.
func WriteClipboard(text string) error {
	if err := clipboardWriteAll(text); err != nil {
		return &Error{Kind: KindClipboard, Err: err}
	}
	return nil
}
