package fetch

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// DecodeText decodes raw as UTF-8 and never fails.
// Invalid byte sequences are dropped, so a stray byte inside a color code
// does not split it. A well-formed U+FFFD in the input is kept.
func DecodeText(raw []byte) string {
	text, _, err := transform.Bytes(dropInvalidUTF8{}, raw)
	if err != nil {
		return strings.ToValidUTF8(string(raw), "")
	}
	return string(text)
}

// dropInvalidUTF8 is a transform.Transformer that copies well-formed UTF-8
// and skips every byte that does not start a valid encoding.
type dropInvalidUTF8 struct {
	transform.NopResetter
}

// Transform implements transform.Transformer.
func (dropInvalidUTF8) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if c := src[nSrc]; c < utf8.RuneSelf {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}

		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 {
			// A multibyte sequence may continue in the next chunk.
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			nSrc++
			continue
		}

		if nDst+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		copy(dst[nDst:], src[nSrc:nSrc+size])
		nDst += size
		nSrc += size
	}
	return nDst, nSrc, nil
}
