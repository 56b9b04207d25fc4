package peerid

import (
	"github.com/anacrolix/torrent/bencode"
)

var (
	_ bencode.Marshaler   = PeerID{}
	_ bencode.Unmarshaler = (*PeerID)(nil)
)

// Encodes as a 20 byte string, like the "peer id" key in tracker responses.
func (me PeerID) MarshalBencode() ([]byte, error) {
	return bencode.Marshal(me[:])
}

func (me *PeerID) UnmarshalBencode(b []byte) error {
	var s string
	err := bencode.Unmarshal(b, &s)
	if err != nil {
		return err
	}
	*me, err = FromString(s)
	return err
}
