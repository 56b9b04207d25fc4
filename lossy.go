package peerid

import "unicode/utf8"

// Calls f for each character of b decoded as UTF-8. Each maximal subpart of an ill-formed sequence
// is passed as a single utf8.RuneError. This is the substitution Unicode recommends, and is how
// most decoders count replacement characters. Ranging over a string instead gives one RuneError
// per byte.
func lossyRunes(b []byte, f func(r rune)) {
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size == 1 {
			size = maximalSubpart(b)
		}
		f(r)
		b = b[size:]
	}
}

// Length of the ill-formed prefix of b that decodes to one replacement character. b must start
// with a byte utf8.DecodeRune rejected.
func maximalSubpart(b []byte) int {
	lo, hi, n := leadByteRange(b[0])
	i := 1
	for ; i <= n && i < len(b); i++ {
		c := b[i]
		if i == 1 {
			if c < lo || c > hi {
				break
			}
		} else if c < 0x80 || c > 0xbf {
			break
		}
	}
	return i
}

// The accepted range for the byte after lead, and how many continuation bytes lead expects. n is
// zero for bytes that can't start a sequence.
func leadByteRange(lead byte) (lo, hi byte, n int) {
	switch {
	case lead >= 0xc2 && lead <= 0xdf:
		return 0x80, 0xbf, 1
	case lead == 0xe0:
		return 0xa0, 0xbf, 2
	case lead == 0xed:
		return 0x80, 0x9f, 2
	case lead >= 0xe1 && lead <= 0xef:
		return 0x80, 0xbf, 2
	case lead == 0xf0:
		return 0x90, 0xbf, 3
	case lead >= 0xf1 && lead <= 0xf3:
		return 0x80, 0xbf, 3
	case lead == 0xf4:
		return 0x80, 0x8f, 3
	}
	return 0, 0, 0
}
