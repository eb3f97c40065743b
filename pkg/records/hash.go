package records

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// HashSize is the byte length of every wire hash.
const HashSize = 32

// Hash is a 256-bit digest in wire order. The human-readable form reverses
// the bytes, following the convention the surrounding ecosystem prints
// transaction and block hashes in.
type Hash [HashSize]byte

// DoubleSHA256 computes sha256(sha256(p)), the digest used for transaction
// and block identifiers.
func DoubleSHA256(p []byte) Hash {
	first := sha256.Sum256(p)
	return sha256.Sum256(first[:])
}

// String renders the hash byte-reversed hex.
func (h Hash) String() string {
	var rev [HashSize]byte
	for i := range h {
		rev[HashSize-1-i] = h[i]
	}
	return hex.EncodeToString(rev[:])
}

// NewHashFromString parses the byte-reversed hex form produced by String.
func NewHashFromString(s string) (Hash, error) {
	var h Hash
	if len(s) != HashSize*2 {
		return h, fmt.Errorf("hash string length %d, want %d", len(s), HashSize*2)
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return h, fmt.Errorf("parse hash: %w", err)
	}
	for i := range h {
		h[i] = raw[HashSize-1-i]
	}
	return h, nil
}
