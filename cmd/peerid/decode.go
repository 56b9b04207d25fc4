package main

import (
	"fmt"
	"net/url"

	"github.com/anacrolix/peerid"
)

// Decodes a peer id argument. "url" is the percent-encoding trackers receive in the peer_id
// announce parameter.
func decodeArg(s, encoding string) (id peerid.PeerID, err error) {
	switch encoding {
	case "raw":
		return peerid.FromString(s)
	case "hex":
		return peerid.FromHexString(s)
	case "url":
		s, err = url.QueryUnescape(s)
		if err != nil {
			return
		}
		return peerid.FromString(s)
	}
	err = fmt.Errorf("unknown encoding %q", encoding)
	return
}

// The inverse of decodeArg.
func encodeArg(id peerid.PeerID, encoding string) (string, error) {
	switch encoding {
	case "raw":
		return id.AsString(), nil
	case "hex":
		return id.HexString(), nil
	case "url":
		return url.QueryEscape(id.AsString()), nil
	}
	return "", fmt.Errorf("unknown encoding %q", encoding)
}
