package turing

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// Hash is the content identity of a Configuration.
type Hash [sha256.Size]byte

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Short returns the first 12 hex digits, enough to tell nodes apart in logs.
func (h Hash) Short() string {
	return h.String()[:12]
}

// Hash returns the SHA-256 of the canonical serialization of c.
// Field order is fixed: state, tape count, per tape left then right cells, heads.
// Every variable length item is length prefixed.
func (c Configuration) Hash() Hash {
	buf := make([]byte, 0, 64)
	buf = appendString(buf, string(c.State))
	buf = binary.AppendUvarint(buf, uint64(len(c.Tapes)))
	for _, tape := range c.Tapes {
		buf = appendSymbols(buf, tape.Left)
		buf = appendSymbols(buf, tape.Right)
	}
	buf = binary.AppendUvarint(buf, uint64(len(c.Heads)))
	for _, head := range c.Heads {
		buf = binary.AppendVarint(buf, int64(head))
	}
	return sha256.Sum256(buf)
}

func appendString(buf []byte, str string) []byte {
	buf = binary.AppendUvarint(buf, uint64(len(str)))
	return append(buf, str...)
}

func appendSymbols(buf []byte, symbols []Symbol) []byte {
	buf = binary.AppendUvarint(buf, uint64(len(symbols)))
	for _, sym := range symbols {
		buf = appendString(buf, string(sym))
	}
	return buf
}
