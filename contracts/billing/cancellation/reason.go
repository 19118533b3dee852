package cancellation

// Reason is an enumeration of subscription cancellation causes.
type Reason int

// Various cancellation reasons.
const (
	// None is set on active subscriptions and on the ones cancelled
	// by the subscriber.
	None Reason = iota

	// InsufficientAmount stands for a payment account holding less than
	// the plan amount at the moment of the charge.
	InsufficientAmount

	// DelegationRevoked stands for a payment account whose owner has revoked
	// transfer delegation to the protocol.
	DelegationRevoked

	// DelegatedAmountNotEnough stands for a delegated allowance lower than
	// the plan amount.
	DelegatedAmountNotEnough
)
