// based on libtorrent/src/fingerprint.cpp

package peerid

import (
	"fmt"
)

// Azureus-style prefix used when the caller doesn't provide one.
const DefaultPrefix = "-GT0003-"

const maxVersionNumber = 35

// versionToChar converts an integer version number (0–35) to a character.
// 0–9 → '0'–'9', 10+ → 'A', 'B', ...
func versionToChar(v int) byte {
	if v < 10 {
		return byte('0' + v)
	}
	return byte('A' + (v - 10))
}

func clientCodeByte(c byte) bool {
	return c == '-' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// Fingerprint builds an 8 character BEP 20 prefix from client info.
//
// Example: Fingerprint("LT", 2, 1, 0, 0) → "-LT2100-"
func Fingerprint(name string, major, minor, revision, tag int) (string, error) {
	if len(name) < 2 {
		name = "--"
	}
	if len(name) != 2 || !clientCodeByte(name[0]) || !clientCodeByte(name[1]) {
		return "", fmt.Errorf("client code %q must be two ASCII letters or digits", name)
	}
	for _, v := range [...]int{major, minor, revision, tag} {
		if v < 0 || v > maxVersionNumber {
			return "", fmt.Errorf("version number %d out of range [0, %d]", v, maxVersionNumber)
		}
	}
	return string([]byte{
		'-',
		name[0],
		name[1],
		versionToChar(major),
		versionToChar(minor),
		versionToChar(revision),
		versionToChar(tag),
		'-',
	}), nil
}
