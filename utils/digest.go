package common

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// SequenceDigest returns the hex BLAKE3-256 digest of a sequence, used to
// tie stored results back to the exact input they were computed from.
func SequenceDigest(seq string) string {
	h := blake3.Sum256([]byte(seq))
	return hex.EncodeToString(h[:])
}
