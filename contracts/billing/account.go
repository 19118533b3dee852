package billing

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/subscast/subscast-contract/common"
	"github.com/subscast/subscast-contract/contracts/billing/billingconst"
)

// OnNEP17Payment is a callback for NEP-17 compatible native GAS and NEO
// contracts as well as any other NEP-17 token. Tokens are deposited to the
// payment account in the calling token. The account owner is the data
// argument if it is set, otherwise it is the sender.
//
// OnNEP17Payment produces Deposit notification.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	if amount <= 0 {
		common.AbortWithMessage(billingconst.ErrInvalidAmount)
	}

	owner := from
	if data != nil {
		owner = data.(interop.Hash160)
	}

	if len(owner) != interop.Hash160Len {
		common.AbortWithMessage(billingconst.ErrInvalidHash)
	}

	mint := runtime.GetCallingScriptHash()

	ctx := storage.GetContext()
	credit(ctx, ensureAccount(ctx, owner, mint), amount)

	runtime.Notify("Deposit", owner, mint, amount)
}

// Withdraw transfers tokens from the owner's payment account in the mint
// token back to the owner.
//
// Withdraw produces Withdraw notification.
func Withdraw(owner, mint interop.Hash160, amount int) {
	common.CheckOwnerWitness(owner)

	if amount <= 0 {
		panic(billingconst.ErrInvalidAmount)
	}

	ctx := storage.GetContext()
	addr := accountAddr(owner, mint)
	acc := getAccount(ctx, addr)
	if acc.Balance < amount {
		panic(billingconst.ErrInsufficientBalance)
	}

	acc.Balance = acc.Balance - amount
	putAccount(ctx, addr, acc)

	if !common.TransferToken(mint, owner, amount) {
		panic(billingconst.ErrTransferFailed)
	}

	runtime.Notify("Withdraw", owner, mint, amount)
}

// Delegate allows the protocol to charge up to allowance tokens from the
// owner's payment account in the mint token. The account is created if
// needed.
//
// Delegate produces Delegate notification.
func Delegate(owner, mint interop.Hash160, allowance int) {
	common.CheckHash160(owner, billingconst.ErrInvalidHash)
	common.CheckHash160(mint, billingconst.ErrInvalidHash)
	common.CheckOwnerWitness(owner)

	if allowance < 0 {
		panic(billingconst.ErrInvalidAllowance)
	}

	ctx := storage.GetContext()
	addr := ensureAccount(ctx, owner, mint)
	acc := getAccount(ctx, addr)
	acc.Delegated = true
	acc.Allowance = allowance
	putAccount(ctx, addr, acc)

	runtime.Notify("Delegate", owner, mint, allowance)
}

// Revoke withdraws the delegation of the owner's payment account in the mint
// token. Further charges cancel subscriptions paid from this account.
//
// Revoke produces Revoke notification.
func Revoke(owner, mint interop.Hash160) {
	common.CheckOwnerWitness(owner)

	ctx := storage.GetContext()
	addr := accountAddr(owner, mint)
	acc := getAccount(ctx, addr)
	acc.Delegated = false
	acc.Allowance = 0
	putAccount(ctx, addr, acc)

	runtime.Notify("Revoke", owner, mint)
}

// GetPaymentAccount returns payment account of the owner in the mint token.
func GetPaymentAccount(owner, mint interop.Hash160) PaymentAccount {
	ctx := storage.GetReadOnlyContext()
	return getAccount(ctx, accountAddr(owner, mint))
}
