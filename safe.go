package peerid

import (
	"fmt"
	"log/slog"
	"strings"
)

// Substituted for every character outside the allow-set by Safe.
const Placeholder = '?'

// The allow-set. Azureus-style prefixes (-XX0000-) and the dotted variants some clients use stay
// readable. Changing this changes log output.
func allowed(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z',
		r >= 'A' && r <= 'Z',
		r >= '0' && r <= '9',
		r == '-',
		r == '.':
		return true
	}
	return false
}

// Renders the ID with every character outside 0-9, a-z, A-Z, '-' and '.' replaced by '?'. The
// bytes are decoded as UTF-8 first, so an invalid sequence or a multi-byte character becomes a
// single '?', and the result can be shorter than Size. The output is safe to show anywhere
// without escaping, but it is lossy: parse the bytes, never this.
func (me PeerID) Safe() string {
	if allBytesAllowed(me[:]) {
		return string(me[:])
	}
	var sb strings.Builder
	sb.Grow(Size)
	lossyRunes(me[:], func(r rune) {
		if allowed(r) {
			sb.WriteByte(byte(r))
		} else {
			sb.WriteByte(Placeholder)
		}
	})
	return sb.String()
}

func allBytesAllowed(b []byte) bool {
	for _, c := range b {
		if !allowed(rune(c)) {
			return false
		}
	}
	return true
}

func (me PeerID) String() string {
	return me.Safe()
}

var _ fmt.GoStringer = PeerID{}

// Byte exact, for %#v.
func (me PeerID) GoString() string {
	return fmt.Sprintf("peerid.PeerID(%+q)", me[:])
}

var _ slog.LogValuer = PeerID{}

func (me PeerID) LogValue() slog.Value {
	return slog.StringValue(me.Safe())
}
