package peerid

import (
	"encoding"
	"encoding/hex"
	"fmt"
)

// 40 lowercase hex digits. Lossless, unlike Safe.
func (me PeerID) HexString() string {
	return hex.EncodeToString(me[:])
}

// Pretty prints the ID as hex, except an Azureus-style prefix (BEP 20), which is kept as is. Unlike
// Safe this is lossless, but the prefix is not sanitized.
func (me PeerID) Bep20String() string {
	if me[0] == '-' && me[7] == '-' {
		return string(me[:8]) + hex.EncodeToString(me[8:])
	}
	return hex.EncodeToString(me[:])
}

func (me *PeerID) FromHexString(s string) (err error) {
	if len(s) != 2*Size {
		err = fmt.Errorf("peer id hex string has bad length: %d", len(s))
		return
	}
	_, err = hex.Decode(me[:], []byte(s))
	return
}

func FromHexString(s string) (me PeerID, err error) {
	err = me.FromHexString(s)
	return
}

var (
	_ encoding.TextUnmarshaler = (*PeerID)(nil)
	_ encoding.TextMarshaler   = PeerID{}
)

func (me *PeerID) UnmarshalText(b []byte) error {
	return me.FromHexString(string(b))
}

func (me PeerID) MarshalText() (text []byte, err error) {
	return []byte(me.HexString()), nil
}
