package peerid

import (
	"crypto/rand"
	"fmt"
)

const alnum = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Largest multiple of len(alnum) that fits in a byte's range.
const alnumLimit = 256 - 256%len(alnum)

// Returns an ID starting with prefix, with the remaining bytes random. The prefix can't be longer than
// Size.
func Generate(prefix string) (me PeerID, err error) {
	n, err := copyPrefix(&me, prefix)
	if err != nil {
		return
	}
	_, err = rand.Read(me[n:])
	if err != nil {
		err = fmt.Errorf("reading random bytes: %w", err)
	}
	return
}

// Like Generate, but the random part is drawn from [0-9a-zA-Z], so an ID with a well-formed prefix
// renders the same through Safe.
func GenerateAlnum(prefix string) (me PeerID, err error) {
	n, err := copyPrefix(&me, prefix)
	if err != nil {
		return
	}
	var buf [Size]byte
	for n < Size {
		_, err = rand.Read(buf[:])
		if err != nil {
			err = fmt.Errorf("reading random bytes: %w", err)
			return
		}
		for _, c := range buf {
			// Reject the top of the byte range so every character is equally likely.
			if int(c) >= alnumLimit {
				continue
			}
			me[n] = alnum[int(c)%len(alnum)]
			n++
			if n == Size {
				break
			}
		}
	}
	return
}

func copyPrefix(me *PeerID, prefix string) (int, error) {
	if len(prefix) > Size {
		return 0, fmt.Errorf("prefix is %d bytes, longer than a peer id", len(prefix))
	}
	return copy(me[:], prefix), nil
}
