package peerid

// Length of a peer ID in bytes.
const Size = 20

// Peer client ID, as sent in the BitTorrent handshake and to trackers.
type PeerID [Size]byte

// Can't fail. Equivalent to the conversion PeerID(a).
func FromArray(a [Size]byte) PeerID {
	return PeerID(a)
}

func FromArrayPtr(a *[Size]byte) PeerID {
	return PeerID(*a)
}

// Returns a LengthError unless b is exactly Size bytes long.
func FromBytes(b []byte) (me PeerID, err error) {
	if len(b) != Size {
		err = LengthError{len(b)}
		return
	}
	copy(me[:], b)
	return
}

// Like FromBytes, for the raw bytes held in a string.
func FromString(s string) (me PeerID, err error) {
	if len(s) != Size {
		err = LengthError{len(s)}
		return
	}
	copy(me[:], s)
	return
}

func (me PeerID) Array() [Size]byte {
	return me
}

// Views the underlying bytes. Don't modify through it unless you own the PeerID.
func (me *PeerID) ArrayPtr() *[Size]byte {
	return (*[Size]byte)(me)
}

// Returns a copy of the bytes. Changing it doesn't change the PeerID.
func (me PeerID) Bytes() []byte {
	return me[:]
}

// The raw bytes as a string. Not safe for display, see Safe.
func (me PeerID) AsString() string {
	return string(me[:])
}

func (me PeerID) Equal(other PeerID) bool {
	return me == other
}

// Reports whether all bytes are zero, as in an unset ID.
func (me PeerID) IsZero() bool {
	return me == PeerID{}
}
