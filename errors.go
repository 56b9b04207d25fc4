package peerid

import "fmt"

// Returned when a peer ID is built from input that isn't Size bytes long. Length is the length of
// the offending input.
type LengthError struct {
	Length int
}

func (me LengthError) Error() string {
	return fmt.Sprintf("bad peer id length: expected a %d byte slice, got %d bytes", Size, me.Length)
}
