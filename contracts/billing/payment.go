package billing

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/subscast/subscast-contract/common"
	"github.com/subscast/subscast-contract/contracts/billing/billingconst"
	"github.com/subscast/subscast-contract/contracts/billing/cancellation"
)

// TriggerPayment charges the due subscription. It can be invoked by any
// registered node. Plan, subscriber (Subscriber record address) and mint
// must match the records linked to the subscription.
//
// On success the plan amount is debited from the subscriber's payment
// account, FeePercent of it (rounded down) is credited to the node payout
// wallet account and the rest to the plan account, the subscription is re-armed for
// now + plan frequency and true is returned. If the subscriber's account can
// not be charged, the subscription is cancelled with the corresponding
// cancellation.Reason and false is returned.
//
// TriggerPayment produces PaymentExecuted or SubscriptionCancelled
// notification.
func TriggerPayment(node, subscription, plan, subscriber, mint interop.Hash160) bool {
	common.CheckWitness(node)

	ctx := storage.GetContext()

	// node records are never removed, so a stored record is a registered node
	n := getNode(ctx, nodeAddr(node))

	s := getSubscription(ctx, subscription)
	if !s.Plan.Equals(plan) || !s.Subscriber.Equals(subscriber) {
		panic(billingconst.ErrRecordMismatch)
	}

	p := getPlan(ctx, plan)
	if !p.Mint.Equals(mint) {
		panic(billingconst.ErrRecordMismatch)
	}
	if !p.Active {
		panic(billingconst.ErrPlanInactive)
	}
	if !s.Active {
		panic(billingconst.ErrSubscriptionInactive)
	}

	now := currentTime()
	if now < s.NextPaymentTimestamp {
		panic(billingconst.ErrNotDue)
	}

	sub := getSubscriber(ctx, subscriber)
	accAddr := sub.PaymentAccount
	acc := getAccount(ctx, accAddr)

	switch {
	case acc.Balance < p.Amount:
		cancel(ctx, subscription, s, cancellation.InsufficientAmount)
		return false
	case !acc.Delegated:
		cancel(ctx, subscription, s, cancellation.DelegationRevoked)
		return false
	case acc.Allowance < p.Amount:
		cancel(ctx, subscription, s, cancellation.DelegatedAmountNotEnough)
		return false
	}

	fee := p.Amount * p.FeePercent / 100

	acc.Balance = acc.Balance - p.Amount
	acc.Allowance = acc.Allowance - p.Amount
	putAccount(ctx, accAddr, acc)

	credit(ctx, p.PaymentAccount, p.Amount-fee)
	credit(ctx, ensureAccount(ctx, n.PayoutWallet, mint), fee)

	s.LastPaymentTimestamp = now
	s.NextPaymentTimestamp = now + p.Frequency
	putSubscription(ctx, subscription, s)

	runtime.Notify("PaymentExecuted", subscription, node, p.Amount, fee)

	return true
}

// DueSubscriptions returns addresses of active subscriptions of active plans
// which are due at the given time (in seconds). At most limit addresses are
// returned, non-positive limit means no limit.
func DueSubscriptions(now, limit int) []interop.Hash160 {
	ctx := storage.GetReadOnlyContext()

	list := []interop.Hash160{}

	it := storage.Find(ctx, []byte{subscriptionPrefix}, storage.RemovePrefix|storage.DeserializeValues)
	for iterator.Next(it) {
		item := iterator.Value(it).(struct {
			key   []byte
			value Subscription
		})

		s := item.value
		if !s.Active || s.NextPaymentTimestamp > now {
			continue
		}

		if !getPlan(ctx, s.Plan).Active {
			continue
		}

		list = append(list, interop.Hash160(item.key))
		if limit > 0 && len(list) >= limit {
			break
		}
	}

	return list
}

func cancel(ctx storage.Context, addr interop.Hash160, s Subscription, reason cancellation.Reason) {
	s.Active = false
	s.Cancelled = true
	s.CancellationReason = reason
	putSubscription(ctx, addr, s)

	runtime.Notify("SubscriptionCancelled", addr, int(reason))
}

// credit reads the account after all previous writes, so the same account
// may be debited and credited in one invocation.
func credit(ctx storage.Context, addr interop.Hash160, amount int) {
	if amount == 0 {
		return
	}

	acc := getAccount(ctx, addr)
	acc.Balance = acc.Balance + amount
	putAccount(ctx, addr, acc)
}
