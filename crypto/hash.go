package crypto

import (
	"crypto/sha256"
	"strconv"

	b58 "github.com/mr-tron/base58/base58"
)

// compute sha256 checksum (32 bytes)
func SHA256Hash(b []byte) string {
	v := sha256.Sum256(b)
	return b58.Encode(v[:])
}

// compute sha256 checksum (32 bytes)
func SHA256HashBytes(b []byte) [32]byte {
	return sha256.Sum256(b)
}

// EntryID derives a stable audit identifier for a ledger entry
// from the account it belongs to, the position of the entry in
// that account's history and the wall-clock time of the movement.
func EntryID(accountID string, seq int, unixNano int64) string {
	var buf []byte
	buf = append(buf, accountID...)
	buf = append(buf, '/')
	buf = strconv.AppendInt(buf, int64(seq), 10)
	buf = append(buf, '/')
	buf = strconv.AppendInt(buf, unixNano, 10)
	return SHA256Hash(buf)
}
