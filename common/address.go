package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
)

// DeriveAddress returns deterministic address of the record identified by
// the seed tag and the key parts. Every part is prefixed with its length, so
// distinct tuples never share the preimage:
//
//	RIPEMD160(SHA256(seed || len(part1) || part1 || ... ))
//
// Parts must be shorter than 256 bytes.
func DeriveAddress(seed string, parts ...[]byte) interop.Hash160 {
	data := []byte(seed)
	for i := range parts {
		data = append(data, byte(len(parts[i])))
		data = append(data, parts[i]...)
	}

	return crypto.Ripemd160(crypto.Sha256(data))
}

// CheckHash160 panics with the given message if h is not a valid script hash.
func CheckHash160(h interop.Hash160, msg string) {
	if len(h) != interop.Hash160Len {
		panic(msg)
	}
}
