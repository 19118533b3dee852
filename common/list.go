package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
)

// ErrCapacityExceeded is thrown when a bounded list is full.
const ErrCapacityExceeded = "capacity exceeded"

// ContainsHash checks whether the list holds the given reference.
func ContainsHash(list []interop.Hash160, h interop.Hash160) bool {
	for i := range list {
		if list[i].Equals(h) {
			return true
		}
	}

	return false
}

// AppendBounded appends the reference to the list of the fixed capacity.
// Already listed references are not duplicated. It panics with
// ErrCapacityExceeded if the list is full.
func AppendBounded(list []interop.Hash160, h interop.Hash160, capacity int) []interop.Hash160 {
	if ContainsHash(list, h) {
		return list
	}

	if len(list) >= capacity {
		panic(ErrCapacityExceeded)
	}

	return append(list, h)
}
