package billing

import (
	"github.com/subscast/subscast-contract/contracts/billing/billingconst"
)

const (
	// ErrNotInitialized is returned when the protocol has not been
	// initialized yet.
	ErrNotInitialized = billingconst.ErrNotInitialized

	// ErrNotDue is returned when the subscription has already been charged
	// in the current billing period, e.g. by another node.
	ErrNotDue = billingconst.ErrNotDue

	// ErrSubscriptionInactive is returned on inactive subscription.
	ErrSubscriptionInactive = billingconst.ErrSubscriptionInactive

	// ErrPlanInactive is returned on closed plan.
	ErrPlanInactive = billingconst.ErrPlanInactive

	// ErrNodeNotRegistered is returned when the invoking node is unknown.
	ErrNodeNotRegistered = billingconst.ErrNodeNotRegistered
)
