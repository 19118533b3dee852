package creator

import (
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

// DataID prefix of a SHA2-256 multihash (CIDv0).
const (
	multihashSHA256 = 0x12
	sha256Size      = 32
	dataIDSize      = 2 + sha256Size
)

// ErrInvalidDataID is returned by ParseDataID for malformed identifiers.
var ErrInvalidDataID = errors.New("invalid data ID")

// ParseDataID decodes base58 CIDv0 string (e.g. "Qm...") of the off-chain
// creator profile into the binary form stored in the creator record.
func ParseDataID(s string) ([]byte, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataID, err)
	}

	if len(b) != dataIDSize || b[0] != multihashSHA256 || b[1] != sha256Size {
		return nil, fmt.Errorf("%w: not a SHA2-256 multihash", ErrInvalidDataID)
	}

	return b, nil
}

// FormatDataID encodes binary data ID into the base58 string.
func FormatDataID(id []byte) string {
	return base58.Encode(id)
}
