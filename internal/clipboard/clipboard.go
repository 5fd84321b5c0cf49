// Package clipboard writes alignment text to the system clipboard. Copies
// strip the line breaks introduced by chunked display wrapping so a copied
// region is a contiguous residue string again.
package clipboard

import (
	"strings"

	"github.com/atotto/clipboard"
)

var lineBreaks = strings.NewReplacer("\r\n", "", "\n", "", "\r", "")

// StripLineBreaks removes every line break from s. Wrapping is purely a
// presentation concern; copied sequence data must not contain it.
func StripLineBreaks(s string) string {
	return lineBreaks.Replace(s)
}

// CopyStripped strips line breaks from text and writes the result to the
// system clipboard. It reports whether anything was written: an empty
// result is a no-op with no error. Clipboard failures (a headless session,
// denied access) come back as the error; callers treat the write as
// best-effort.
func CopyStripped(text string) (bool, error) {
	stripped := StripLineBreaks(text)
	if stripped == "" {
		return false, nil
	}
	if err := clipboard.WriteAll(stripped); err != nil {
		return false, err
	}
	return true, nil
}
