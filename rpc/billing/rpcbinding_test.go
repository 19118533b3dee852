package billing

import (
	"errors"
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

type testInv struct {
	err error
	res *result.Invoke
}

func (t *testInv) Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error) {
	return t.res, t.err
}

func halt(items ...stackitem.Item) *result.Invoke {
	return &result.Invoke{
		State: "HALT",
		Stack: items,
	}
}

func TestReaderErrors(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	ti.err = errors.New("bad")
	_, err := r.GetSubscription(util.Uint160{})
	require.Error(t, err)

	ti.err = nil
	ti.res = halt(stackitem.Make([]stackitem.Item{}))
	_, err = r.GetSubscription(util.Uint160{})
	require.Error(t, err)

	ti.res = &result.Invoke{State: "FAULT", FaultException: "subscription not found"}
	_, err = r.GetSubscription(util.Uint160{})
	require.ErrorContains(t, err, "subscription not found")
}

func TestReaderSubscription(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	sub := util.Uint160{4}
	plan := util.Uint160{5}
	ti.res = halt(stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(sub.BytesBE()),
		stackitem.Make(plan.BytesBE()),
		stackitem.Make(false),
		stackitem.Make(true),
		stackitem.Make(CancellationDelegationRevoked),
		stackitem.Make(100),
		stackitem.Make(200),
	}))

	s, err := r.GetSubscription(util.Uint160{})
	require.NoError(t, err)
	require.Equal(t, &BillingSubscription{
		Subscriber:           sub,
		Plan:                 plan,
		Active:               false,
		Cancelled:            true,
		CancellationReason:   CancellationDelegationRevoked,
		LastPaymentTimestamp: big.NewInt(100),
		NextPaymentTimestamp: big.NewInt(200),
	}, s)
}

func TestReaderDueSubscriptions(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	a, b := util.Uint160{1}, util.Uint160{2}
	ti.res = halt(stackitem.Make([]stackitem.Item{
		stackitem.Make(a.BytesBE()),
		stackitem.Make(b.BytesBE()),
	}))

	list, err := r.DueSubscriptions(big.NewInt(0), big.NewInt(10))
	require.NoError(t, err)
	require.Equal(t, []util.Uint160{a, b}, list)
}

func TestPaymentExecutedEvents(t *testing.T) {
	_, err := PaymentExecutedEventsFromApplicationLog(nil)
	require.Error(t, err)

	sub, node := util.Uint160{1}, util.Uint160{2}
	ev := new(PaymentExecutedEvent)
	require.NoError(t, ev.FromStackItem(stackitem.NewArray([]stackitem.Item{
		stackitem.Make(sub.BytesBE()),
		stackitem.Make(node.BytesBE()),
		stackitem.Make(100),
		stackitem.Make(2),
	})))
	require.Equal(t, sub, ev.Subscription)
	require.Equal(t, node, ev.Node)
	require.Equal(t, int64(2), ev.Fee.Int64())

	require.Error(t, ev.FromStackItem(stackitem.NewArray([]stackitem.Item{})))
}
