package billing

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
	"github.com/subscast/subscast-contract/contracts/billing/billingconst"
)

func TestDeriveAddress(t *testing.T) {
	a := util.Uint160{1, 2, 3}
	b := util.Uint160{4, 5, 6}

	require.Equal(t, PlanAddress(a, "basic"), PlanAddress(a, "basic"))
	require.NotEqual(t, PlanAddress(a, "basic"), PlanAddress(b, "basic"))
	require.NotEqual(t, PlanAddress(a, "basic"), PlanAddress(a, "premium"))

	// seed tags separate record kinds with the same key
	require.NotEqual(t, SubscriberAddress(a), NodeAddress(a))
	require.NotEqual(t, SubscriberAddress(a), PlanAuthorAddress(a))

	// length prefixes keep part boundaries
	require.NotEqual(t,
		DeriveAddress(billingconst.SeedPlan, []byte("ab"), []byte("c")),
		DeriveAddress(billingconst.SeedPlan, []byte("a"), []byte("bc")))

	require.NotEqual(t, SubscriptionAddress(a, b), SubscriptionAddress(b, a))
	require.NotEqual(t, PaymentAccountAddress(a, b), PaymentAccountAddress(b, a))
}

func TestSubscriptionAddress(t *testing.T) {
	sub := util.Uint160{1}
	plan := util.Uint160{2}

	require.Equal(t,
		DeriveAddress(billingconst.SeedSubscription, SubscriberAddress(sub).BytesBE(), plan.BytesBE()),
		SubscriptionAddress(sub, plan))
}
