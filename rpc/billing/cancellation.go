package billing

import (
	"math/big"

	"github.com/subscast/subscast-contract/contracts/billing/cancellation"
)

// Possible values of [BillingSubscription.CancellationReason].
var (
	// CancellationNone is used by active subscriptions and the ones
	// cancelled by the subscriber.
	CancellationNone = big.NewInt(int64(cancellation.None))

	// CancellationInsufficientAmount is used when the payment account
	// balance was lower than the plan amount.
	CancellationInsufficientAmount = big.NewInt(int64(cancellation.InsufficientAmount))

	// CancellationDelegationRevoked is used when the payment account owner
	// revoked delegation.
	CancellationDelegationRevoked = big.NewInt(int64(cancellation.DelegationRevoked))

	// CancellationDelegatedAmountNotEnough is used when the delegated
	// allowance was lower than the plan amount.
	CancellationDelegatedAmountNotEnough = big.NewInt(int64(cancellation.DelegatedAmountNotEnough))
)
