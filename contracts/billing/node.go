package billing

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/subscast/subscast-contract/common"
	"github.com/subscast/subscast-contract/contracts/billing/billingconst"
)

// RegisterNode registers the payment node of the authority. Fees earned by
// the node are credited to the payout wallet's payment account. Registering
// the same authority again overwrites its payout wallet and payment account
// binding.
//
// RegisterNode produces NodeRegistered notification.
func RegisterNode(authority, payoutWallet, mint interop.Hash160) {
	common.CheckHash160(authority, billingconst.ErrInvalidHash)
	common.CheckHash160(payoutWallet, billingconst.ErrInvalidHash)
	common.CheckHash160(mint, billingconst.ErrInvalidHash)
	common.CheckOwnerWitness(authority)

	ctx := storage.GetContext()
	protocol := getProtocol(ctx)

	addr := nodeAddr(authority)
	if !common.ContainsHash(protocol.Nodes, addr) {
		protocol.Nodes = common.AppendBounded(protocol.Nodes, addr, billingconst.MaxNodes)
		putProtocol(ctx, protocol)
	}

	common.SetSerialized(ctx, recordKey(nodePrefix, addr), Node{
		Authority:      authority,
		PayoutWallet:   payoutWallet,
		PaymentAccount: ensureAccount(ctx, payoutWallet, mint),
		Registered:     true,
	})

	runtime.Notify("NodeRegistered", addr, authority, payoutWallet)
}

// GetNode returns Node record of the authority.
func GetNode(authority interop.Hash160) Node {
	ctx := storage.GetReadOnlyContext()
	return getNode(ctx, nodeAddr(authority))
}
