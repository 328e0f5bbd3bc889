package drift

import (
	"bytes"
	"compress/zlib"
)

// Omega returns the compression gain of text: the raw byte length minus the
// zlib-compressed byte length, floored at zero.
//
// Higher values mean more redundant (compressible) text; values near zero
// mean novel or already-dense content. Omega("") is 0 because the zlib
// header alone exceeds the empty input.
//
// Pure and deterministic. No pack dependency ships a deflate implementation,
// so this uses compress/zlib directly.
func Omega(text string) int {
	raw := []byte(text)

	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(raw); err != nil {
		// bytes.Buffer writes cannot fail; keep the metric total.
		return 0
	}
	if err := w.Close(); err != nil {
		return 0
	}

	gain := len(raw) - buf.Len()
	if gain < 0 {
		return 0
	}
	return gain
}
