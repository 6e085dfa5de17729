package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// Key derives a filesystem-safe entry name from the inputs of a render.
// Each part is length-prefixed so ("ab", "c") and ("a", "bc") differ.
func Key(parts ...[]byte) string {
	h := sha256.New()
	var n [8]byte
	for _, p := range parts {
		binary.BigEndian.PutUint64(n[:], uint64(len(p)))
		h.Write(n[:])
		h.Write(p)
	}
	return hex.EncodeToString(h.Sum(nil)[:16])
}
