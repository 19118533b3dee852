package billingconst

// Seed tags of the derived record addresses.
const (
	SeedProtocol       = "protocol"
	SeedPlanAuthor     = "plan_author"
	SeedPlan           = "subscription_plan"
	SeedSubscriber     = "subscriber"
	SeedSubscription   = "subscription"
	SeedNode           = "node"
	SeedPaymentAccount = "payment_account"
)

// Plan parameter bounds.
const (
	// MinAmount and MaxAmount bound plan amount in minor units of the payment
	// medium.
	MinAmount = 1
	MaxAmount = 1000

	// MinFrequency is the minimal gap between two charges in seconds.
	MinFrequency = 60

	MinFeePercent = 1
	MaxFeePercent = 5

	// MaxPlanNameLength is a maximum length of the plan name in bytes.
	MaxPlanNameLength = 32
)

// Capacities of the bounded reference lists.
const (
	MaxPlanAuthors                = 100
	MaxNodes                      = 100
	MaxPlansPerAuthor             = 10
	MaxSubscriptionsPerPlan       = 100
	MaxSubscriptionsPerSubscriber = 20
)

// Error messages thrown by the billing contract.
const (
	ErrAlreadyInitialized   = "protocol is already initialized"
	ErrNotInitialized       = "protocol is not initialized"
	ErrUnauthorized         = "unauthorized"
	ErrInvalidName          = "invalid name"
	ErrInvalidAmount        = "amount is out of bounds"
	ErrInvalidFrequency     = "frequency is too small"
	ErrInvalidFeePercent    = "fee percentage is out of bounds"
	ErrInvalidHash          = "invalid script hash"
	ErrPlanExists           = "plan already exists"
	ErrPlanNotFound         = "plan not found"
	ErrPlanInactive         = "plan is not active"
	ErrMediumMismatch       = "payment medium mismatch"
	ErrSubscriberNotFound   = "subscriber not found"
	ErrSubscriptionNotFound = "subscription not found"
	ErrAlreadySubscribed    = "subscription is already active"
	ErrAlreadyInactive      = "subscription is already inactive"
	ErrSubscriptionInactive = "subscription is not active"
	ErrNotDue               = "payment is not due yet"
	ErrRecordMismatch       = "linked record mismatch"
	ErrNodeNotRegistered    = "node is not registered"
	ErrAccountNotFound      = "payment account not found"
	ErrInsufficientBalance  = "insufficient balance"
	ErrInvalidAllowance     = "allowance must not be negative"
	ErrTransferFailed       = "token transfer failed"
)
