// Package paynode implements the off-chain payment node. The node
// periodically looks up due subscriptions in Billing contract and triggers
// their payments, earning the plan fee.
package paynode

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/robfig/cron/v3"
	"github.com/subscast/subscast-contract/rpc/billing"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrNodeNotRegistered is returned from a payment round when Billing contract
// does not know the node authority. No payment can succeed until the node is
// registered, so the round is aborted.
var ErrNodeNotRegistered = errors.New("node is not registered in Billing contract")

// Billing is a subset of Billing contract methods used by the node.
// [billing.Contract] implements it.
type Billing interface {
	DueSubscriptions(now *big.Int, limit *big.Int) ([]util.Uint160, error)
	GetSubscription(subscription util.Uint160) (*billing.BillingSubscription, error)
	GetPlan(plan util.Uint160) (*billing.BillingPlan, error)
	TriggerPayment(node, subscription, plan, subscriber, mint util.Uint160) (util.Uint256, uint32, error)
}

// Waiter awaits transaction acceptance. [actor.Actor] implements it.
type Waiter interface {
	Wait(h util.Uint256, vub uint32, err error) (*state.AppExecResult, error)
}

// Report describes a single payment round.
type Report struct {
	ID        uuid.UUID
	Due       int
	Charged   int
	Cancelled int
	Skipped   int
	Failed    int
}

type outcome uint8

const (
	outcomeCharged outcome = iota
	outcomeCancelled
	outcomeSkipped
	outcomeFailed
)

func (o outcome) String() string {
	switch o {
	case outcomeCharged:
		return "charged"
	case outcomeCancelled:
		return "cancelled"
	case outcomeSkipped:
		return "skipped"
	default:
		return "failed"
	}
}

// Node triggers payments of due subscriptions on behalf of the registered
// node authority.
type Node struct {
	cfg       Config
	authority util.Uint160
	billing   Billing
	waiter    Waiter

	log     *zap.Logger
	metrics *Metrics
	now     func() time.Time

	mtx  sync.Mutex
	cron *cron.Cron
}

// Option is a Node constructor option.
type Option func(*Node)

// WithLogger sets the node logger. Nop logger is used by default.
func WithLogger(l *zap.Logger) Option {
	return func(n *Node) {
		n.log = l
	}
}

// WithMetrics makes the node report its activity to m.
func WithMetrics(m *Metrics) Option {
	return func(n *Node) {
		n.metrics = m
	}
}

// WithClock overrides the time source deciding which subscriptions are due.
func WithClock(now func() time.Time) Option {
	return func(n *Node) {
		n.now = now
	}
}

// New creates Node charging subscriptions as authority. Transactions are sent
// through b and awaited with w.
func New(cfg Config, authority util.Uint160, b Billing, w Waiter, opts ...Option) (*Node, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	n := &Node{
		cfg:       cfg,
		authority: authority,
		billing:   b,
		waiter:    w,
		log:       zap.NewNop(),
		now:       time.Now,
	}

	for i := range opts {
		opts[i](n)
	}

	return n, nil
}

// Start schedules payment rounds according to the configured schedule.
// Rounds do not overlap: a round is skipped while the previous one is still
// running. Rounds use ctx as a parent context.
func (n *Node) Start(ctx context.Context) error {
	n.mtx.Lock()
	defer n.mtx.Unlock()

	if n.cron != nil {
		return errors.New("node is already started")
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	_, err := c.AddFunc(n.cfg.Schedule, func() {
		_, _ = n.RunRound(ctx)
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", n.cfg.Schedule, err)
	}

	c.Start()
	n.cron = c

	n.log.Info("payment node started",
		zap.Stringer("authority", n.authority),
		zap.String("schedule", n.cfg.Schedule))

	return nil
}

// Stop stops scheduling new rounds and waits for the running one.
func (n *Node) Stop() {
	n.mtx.Lock()
	c := n.cron
	n.cron = nil
	n.mtx.Unlock()

	if c == nil {
		return
	}

	<-c.Stop().Done()
	n.log.Info("payment node stopped")
}

// RunRound fetches up to BatchSize due subscriptions and charges them with
// Workers concurrent transactions. Payments failed individually are counted
// in the Report; the error is returned only when the round could not be
// performed as a whole.
func (n *Node) RunRound(ctx context.Context) (Report, error) {
	start := time.Now()
	r, err := n.runRound(ctx)

	if n.metrics != nil {
		n.metrics.observeRound(r, time.Since(start).Seconds(), err)
	}

	l := n.log.With(zap.Stringer("round", r.ID))
	if err != nil {
		l.Error("payment round failed", zap.Error(err))
		return r, err
	}

	l.Info("payment round done",
		zap.Int("due", r.Due),
		zap.Int("charged", r.Charged),
		zap.Int("cancelled", r.Cancelled),
		zap.Int("skipped", r.Skipped),
		zap.Int("failed", r.Failed),
		zap.Duration("took", time.Since(start)))

	return r, nil
}

func (n *Node) runRound(ctx context.Context) (Report, error) {
	r := Report{ID: uuid.New()}

	if n.cfg.RoundTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.cfg.RoundTimeout)
		defer cancel()
	}

	now := n.now().Unix()

	due, err := n.billing.DueSubscriptions(big.NewInt(now), big.NewInt(int64(n.cfg.BatchSize)))
	if err != nil {
		return r, fmt.Errorf("fetch due subscriptions: %w", err)
	}

	r.Due = len(due)

	var (
		mtx sync.Mutex
		id  = r.ID
	)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(n.cfg.Workers)

	for _, sub := range due {
		sub := sub
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			o, err := n.charge(id, sub, now)

			if n.metrics != nil {
				n.metrics.observePayment(o)
			}

			mtx.Lock()
			defer mtx.Unlock()

			switch o {
			case outcomeCharged:
				r.Charged++
			case outcomeCancelled:
				r.Cancelled++
			case outcomeSkipped:
				r.Skipped++
			default:
				r.Failed++
			}

			return err
		})
	}

	err = eg.Wait()

	return r, err
}

func (n *Node) charge(round uuid.UUID, sub util.Uint160, now int64) (outcome, error) {
	l := n.log.With(zap.Stringer("round", round), zap.Stringer("subscription", sub))

	s, err := n.billing.GetSubscription(sub)
	if err != nil {
		l.Warn("could not get subscription", zap.Error(err))
		return outcomeFailed, nil
	}

	if !s.Active || s.NextPaymentTimestamp.Int64() > now {
		l.Debug("subscription is not due")
		return outcomeSkipped, nil
	}

	p, err := n.billing.GetPlan(s.Plan)
	if err != nil {
		l.Warn("could not get plan", zap.Stringer("plan", s.Plan), zap.Error(err))
		return outcomeFailed, nil
	}

	if !p.Active {
		l.Debug("plan is closed", zap.Stringer("plan", s.Plan))
		return outcomeSkipped, nil
	}

	res, err := n.waiter.Wait(n.billing.TriggerPayment(n.authority, sub, s.Plan, s.Subscriber, p.Mint))
	if err != nil {
		return n.classifyFailure(l, err.Error())
	}

	if res.VMState != vmstate.Halt {
		l = l.With(zap.Stringer("tx", res.Container))
		return n.classifyFailure(l, res.FaultException)
	}

	return n.parseResult(l, res), nil
}

// classifyFailure maps the rejected or faulted payment transaction to the
// round outcome. Only unregistered node aborts the round.
func (n *Node) classifyFailure(l *zap.Logger, msg string) (outcome, error) {
	switch {
	case isRaceLost(msg):
		l.Debug("subscription was processed concurrently", zap.String("exception", msg))
		return outcomeSkipped, nil
	case strings.Contains(msg, billing.ErrNodeNotRegistered):
		return outcomeFailed, fmt.Errorf("%w: %s", ErrNodeNotRegistered, n.authority.StringLE())
	default:
		l.Warn("payment transaction failed", zap.String("exception", msg))
		return outcomeFailed, nil
	}
}

func (n *Node) parseResult(l *zap.Logger, res *state.AppExecResult) outcome {
	for i := range res.Events {
		ev := res.Events[i]

		switch ev.Name {
		case "PaymentExecuted":
			var e billing.PaymentExecutedEvent
			if err := e.FromStackItem(ev.Item); err != nil {
				l.Warn("invalid PaymentExecuted notification", zap.Error(err))
				return outcomeFailed
			}

			l.Info("subscription charged",
				zap.Stringer("tx", res.Container),
				zap.Stringer("amount", e.Amount),
				zap.Stringer("fee", e.Fee))
			return outcomeCharged
		case "SubscriptionCancelled":
			var e billing.SubscriptionCancelledEvent
			if err := e.FromStackItem(ev.Item); err != nil {
				l.Warn("invalid SubscriptionCancelled notification", zap.Error(err))
				return outcomeFailed
			}

			l.Info("subscription cancelled",
				zap.Stringer("tx", res.Container),
				zap.Stringer("reason", e.Reason))
			return outcomeCancelled
		}
	}

	l.Warn("payment transaction produced no payment notification", zap.Stringer("tx", res.Container))

	return outcomeFailed
}

// isRaceLost checks whether the exception message means another node has
// already processed the subscription.
func isRaceLost(msg string) bool {
	return strings.Contains(msg, billing.ErrNotDue) ||
		strings.Contains(msg, billing.ErrSubscriptionInactive) ||
		strings.Contains(msg, billing.ErrPlanInactive)
}
