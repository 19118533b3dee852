package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/neo"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// ErrUpdateAccess is thrown by Update methods invoked not by the committee.
const ErrUpdateAccess = "only committee can update contract"

// HasUpdateAccess returns true if contract can be updated.
func HasUpdateAccess() bool {
	return runtime.CheckWitness(CommitteeAddress())
}

// CommitteeAddress returns (N/2 + 1) multisignature address of the committee.
func CommitteeAddress() interop.Hash160 {
	committee := neo.GetCommittee()
	threshold := len(committee)/2 + 1

	return contract.CreateMultisigAccount(threshold, committee)
}
