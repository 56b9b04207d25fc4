/*
Package peerid provides the BitTorrent peer ID type: 20 opaque bytes with a rendering that is safe
to put in logs.

	id, err := peerid.FromBytes(handshake.PeerID[:])
	if err != nil {
		return err
	}
	log.Printf("connected to %v", id) // -TR0000-???d7xkqq04n

Parse the bytes (Array, Bytes), never the rendered string.
*/
package peerid
