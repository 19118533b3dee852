package paynode

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/subscast/subscast-contract/rpc/billing"
	"go.uber.org/zap/zaptest"
)

const testNow = 1_700_000_000

var (
	testAuthority = util.Uint160{0xaa}
	testPlan      = util.Uint160{0xbb}
	testMint      = util.Uint160{0xcc}
)

type trigger struct {
	node, subscription, plan, subscriber, mint util.Uint160
}

// testChain implements both Billing and Waiter.
type testChain struct {
	mtx sync.Mutex

	due    []util.Uint160
	dueErr error

	subs    map[util.Uint160]*billing.BillingSubscription
	plans   map[util.Uint160]*billing.BillingPlan
	sendErr map[util.Uint160]error
	results map[util.Uint160]*state.AppExecResult

	gotNow, gotLimit *big.Int
	triggered        []trigger
}

func newTestChain() *testChain {
	return &testChain{
		subs:    make(map[util.Uint160]*billing.BillingSubscription),
		plans:   map[util.Uint160]*billing.BillingPlan{testPlan: {Active: true, Mint: testMint}},
		sendErr: make(map[util.Uint160]error),
		results: make(map[util.Uint160]*state.AppExecResult),
	}
}

func (c *testChain) addDue(sub util.Uint160, next int64, res *state.AppExecResult) {
	c.due = append(c.due, sub)
	c.subs[sub] = &billing.BillingSubscription{
		Subscriber:           util.Uint160{sub[0], 0x01},
		Plan:                 testPlan,
		Active:               true,
		CancellationReason:   big.NewInt(0),
		LastPaymentTimestamp: big.NewInt(next),
		NextPaymentTimestamp: big.NewInt(next),
	}
	if res != nil {
		c.results[sub] = res
	}
}

func (c *testChain) DueSubscriptions(now *big.Int, limit *big.Int) ([]util.Uint160, error) {
	c.gotNow, c.gotLimit = now, limit
	return c.due, c.dueErr
}

func (c *testChain) GetSubscription(sub util.Uint160) (*billing.BillingSubscription, error) {
	s, ok := c.subs[sub]
	if !ok {
		return nil, errors.New("subscription not found")
	}
	return s, nil
}

func (c *testChain) GetPlan(plan util.Uint160) (*billing.BillingPlan, error) {
	p, ok := c.plans[plan]
	if !ok {
		return nil, errors.New("plan not found")
	}
	return p, nil
}

func (c *testChain) TriggerPayment(node, sub, plan, subscriber, mint util.Uint160) (util.Uint256, uint32, error) {
	c.mtx.Lock()
	c.triggered = append(c.triggered, trigger{node, sub, plan, subscriber, mint})
	c.mtx.Unlock()

	var h util.Uint256
	copy(h[:], sub[:])

	return h, 100, c.sendErr[sub]
}

func (c *testChain) Wait(h util.Uint256, _ uint32, err error) (*state.AppExecResult, error) {
	if err != nil {
		return nil, err
	}

	var sub util.Uint160
	copy(sub[:], h[:util.Uint160Size])

	res, ok := c.results[sub]
	if !ok {
		return nil, errors.New("transaction not found")
	}
	return res, nil
}

func halt(events ...state.NotificationEvent) *state.AppExecResult {
	return &state.AppExecResult{
		Execution: state.Execution{VMState: vmstate.Halt, Events: events},
	}
}

func fault(msg string) *state.AppExecResult {
	return &state.AppExecResult{
		Execution: state.Execution{VMState: vmstate.Fault, FaultException: msg},
	}
}

func paymentExecuted(sub util.Uint160, amount, fee int64) state.NotificationEvent {
	return state.NotificationEvent{
		Name: "PaymentExecuted",
		Item: stackitem.NewArray([]stackitem.Item{
			stackitem.Make(sub.BytesBE()),
			stackitem.Make(testAuthority.BytesBE()),
			stackitem.Make(amount),
			stackitem.Make(fee),
		}),
	}
}

func subscriptionCancelled(sub util.Uint160, reason *big.Int) state.NotificationEvent {
	return state.NotificationEvent{
		Name: "SubscriptionCancelled",
		Item: stackitem.NewArray([]stackitem.Item{
			stackitem.Make(sub.BytesBE()),
			stackitem.Make(reason),
		}),
	}
}

func newTestNode(t *testing.T, c *testChain, cfg Config) (*Node, *Metrics) {
	m := NewMetrics(prometheus.NewRegistry())

	n, err := New(cfg, testAuthority, c, c,
		WithLogger(zaptest.NewLogger(t)),
		WithMetrics(m),
		WithClock(func() time.Time { return time.Unix(testNow, 0) }))
	require.NoError(t, err)

	return n, m
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	for _, tc := range []struct {
		name string
		mod  func(*Config)
	}{
		{"empty schedule", func(c *Config) { c.Schedule = "" }},
		{"zero batch", func(c *Config) { c.BatchSize = 0 }},
		{"zero workers", func(c *Config) { c.Workers = 0 }},
		{"negative timeout", func(c *Config) { c.RoundTimeout = -time.Second }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mod(&cfg)
			require.Error(t, cfg.Validate())

			_, err := New(cfg, testAuthority, newTestChain(), newTestChain())
			require.Error(t, err)
		})
	}
}

func TestRunRound(t *testing.T) {
	c := newTestChain()

	var (
		charged   = util.Uint160{1}
		cancelled = util.Uint160{2}
		notDue    = util.Uint160{3}
		raced     = util.Uint160{4}
		faulted   = util.Uint160{5}
		closed    = util.Uint160{6}
		missing   = util.Uint160{7}
		silent    = util.Uint160{8}
	)

	c.addDue(charged, testNow-10, halt(paymentExecuted(charged, 98, 2)))
	c.addDue(cancelled, testNow, halt(subscriptionCancelled(cancelled, billing.CancellationInsufficientAmount)))
	c.addDue(notDue, testNow+1, nil)
	c.addDue(raced, testNow, nil)
	c.sendErr[raced] = errors.New("at instruction 42 (THROW): unhandled exception: \"" + billing.ErrNotDue + "\"")
	c.addDue(faulted, testNow, fault("out of gas"))
	c.addDue(closed, testNow, nil)
	c.subs[closed].Plan = util.Uint160{0xdd}
	c.plans[util.Uint160{0xdd}] = &billing.BillingPlan{Active: false, Mint: testMint}
	c.due = append(c.due, missing)
	c.addDue(silent, testNow, halt())

	cfg := DefaultConfig()
	cfg.BatchSize = 10
	n, m := newTestNode(t, c, cfg)

	r, err := n.RunRound(context.Background())
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, r.ID)

	require.Equal(t, 8, r.Due)
	require.Equal(t, 1, r.Charged)
	require.Equal(t, 1, r.Cancelled)
	require.Equal(t, 3, r.Skipped)
	require.Equal(t, 3, r.Failed)

	require.Equal(t, int64(testNow), c.gotNow.Int64())
	require.Equal(t, int64(10), c.gotLimit.Int64())

	require.Len(t, c.triggered, 5)
	for _, tr := range c.triggered {
		require.Equal(t, testAuthority, tr.node)
		require.Equal(t, testPlan, tr.plan)
		require.Equal(t, testMint, tr.mint)
		require.Equal(t, c.subs[tr.subscription].Subscriber, tr.subscriber)
	}

	require.Equal(t, 1.0, testutil.ToFloat64(m.PaymentsTotal.WithLabelValues("charged")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.PaymentsTotal.WithLabelValues("cancelled")))
	require.Equal(t, 3.0, testutil.ToFloat64(m.PaymentsTotal.WithLabelValues("skipped")))
	require.Equal(t, 3.0, testutil.ToFloat64(m.PaymentsTotal.WithLabelValues("failed")))
	require.Equal(t, 8.0, testutil.ToFloat64(m.Due))
	require.Equal(t, 1.0, testutil.ToFloat64(m.RoundsTotal.WithLabelValues("ok")))
}

func TestRunRoundFaultRace(t *testing.T) {
	c := newTestChain()

	sub := util.Uint160{1}
	c.addDue(sub, testNow, fault("unhandled exception: \""+billing.ErrSubscriptionInactive+"\""))

	n, _ := newTestNode(t, c, DefaultConfig())

	r, err := n.RunRound(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, r.Skipped)
	require.Zero(t, r.Failed)
}

func TestRunRoundErrors(t *testing.T) {
	t.Run("due subscriptions", func(t *testing.T) {
		c := newTestChain()
		c.dueErr = errors.New("connection refused")

		n, m := newTestNode(t, c, DefaultConfig())

		_, err := n.RunRound(context.Background())
		require.ErrorContains(t, err, "connection refused")
		require.Equal(t, 1.0, testutil.ToFloat64(m.RoundsTotal.WithLabelValues("error")))
	})

	t.Run("unregistered node", func(t *testing.T) {
		for name, mod := range map[string]func(c *testChain, sub util.Uint160){
			"rejected": func(c *testChain, sub util.Uint160) {
				c.sendErr[sub] = errors.New("unhandled exception: \"" + billing.ErrNodeNotRegistered + "\"")
			},
			"faulted": func(c *testChain, sub util.Uint160) {
				c.results[sub] = fault("unhandled exception: \"" + billing.ErrNodeNotRegistered + "\"")
			},
		} {
			t.Run(name, func(t *testing.T) {
				c := newTestChain()
				first, second := util.Uint160{1}, util.Uint160{2}
				c.addDue(first, testNow, nil)
				c.addDue(second, testNow, halt(paymentExecuted(second, 98, 2)))
				mod(c, first)

				cfg := DefaultConfig()
				cfg.Workers = 1
				n, m := newTestNode(t, c, cfg)

				r, err := n.RunRound(context.Background())
				require.ErrorIs(t, err, ErrNodeNotRegistered)
				require.ErrorContains(t, err, testAuthority.StringLE())
				require.Equal(t, 1, r.Failed)
				require.Zero(t, r.Charged)

				// the round is aborted on the first rejection
				require.Len(t, c.triggered, 1)
				require.Equal(t, 1.0, testutil.ToFloat64(m.RoundsTotal.WithLabelValues("error")))
			})
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		c := newTestChain()
		c.addDue(util.Uint160{1}, testNow, halt(paymentExecuted(util.Uint160{1}, 98, 2)))

		n, _ := newTestNode(t, c, DefaultConfig())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := n.RunRound(ctx)
		require.ErrorIs(t, err, context.Canceled)
		require.Empty(t, c.triggered)
	})
}

func TestRunRoundEmpty(t *testing.T) {
	n, m := newTestNode(t, newTestChain(), DefaultConfig())

	r, err := n.RunRound(context.Background())
	require.NoError(t, err)
	require.Equal(t, Report{ID: r.ID}, r)
	require.Zero(t, testutil.ToFloat64(m.Due))
}

func TestStartStop(t *testing.T) {
	c := newTestChain()
	c.addDue(util.Uint160{1}, testNow, halt(paymentExecuted(util.Uint160{1}, 98, 2)))

	cfg := DefaultConfig()
	cfg.Schedule = "@every 1s"
	n, m := newTestNode(t, c, cfg)

	require.NoError(t, n.Start(context.Background()))
	require.Error(t, n.Start(context.Background()))

	require.Eventually(t, func() bool {
		return testutil.ToFloat64(m.RoundsTotal.WithLabelValues("ok")) > 0
	}, 5*time.Second, 100*time.Millisecond)

	n.Stop()
	n.Stop()

	cfg.Schedule = "every minute"
	n, _ = newTestNode(t, c, cfg)
	require.Error(t, n.Start(context.Background()))
}
