package storage

import (
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/blake2b"
)

// HashIdentifier - Returns the hex encoded, keyed BLAKE2b-256 hash of a sender identifier (phone number, session
// ID, etc). The key may be empty, but must be at most 64 bytes. Empty identifiers hash to an empty string.
func HashIdentifier(key []byte, identifier string) (string, error) {
	if identifier == "" {
		return "", nil
	}
	h, err := blake2b.New256(key)
	if err != nil {
		return "", errors.Join(errors.New("invalid identifier hash key"), err)
	}
	h.Write([]byte(identifier))
	return hex.EncodeToString(h.Sum(nil)), nil
}
