package billing

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/subscast/subscast-contract/common"
	"github.com/subscast/subscast-contract/contracts/billing/billingconst"
	"github.com/subscast/subscast-contract/contracts/billing/cancellation"
)

// Subscribe subscribes the subscriber authority to the active plan charged
// in the mint token. Subscriber record and its payment account are created on
// the first subscription; all further subscriptions of the subscriber must use
// the same payment medium.
//
// A new subscription is due immediately. Subscribing again to the same plan
// after Unsubscribe or cancellation reactivates the same subscription record
// keeping its payment schedule. Returns the subscription address.
//
// Subscribe produces Subscribed notification.
func Subscribe(subscriber, plan, mint interop.Hash160) interop.Hash160 {
	common.CheckHash160(subscriber, billingconst.ErrInvalidHash)
	common.CheckOwnerWitness(subscriber)

	ctx := storage.GetContext()
	p := getPlan(ctx, plan)
	if !p.Active {
		panic(billingconst.ErrPlanInactive)
	}
	if !p.Mint.Equals(mint) {
		panic(billingconst.ErrMediumMismatch)
	}

	subAddr := subscriberAddr(subscriber)
	var sub Subscriber
	if v := common.GetSerialized(ctx, recordKey(subscriberPrefix, subAddr)); v != nil {
		sub = v.(Subscriber)
		if !sub.PaymentAccount.Equals(accountAddr(subscriber, mint)) {
			panic(billingconst.ErrMediumMismatch)
		}
	} else {
		sub = Subscriber{
			Authority:      subscriber,
			PaymentAccount: ensureAccount(ctx, subscriber, mint),
			Subscriptions:  []interop.Hash160{},
		}
	}

	addr := subscriptionAddr(subAddr, plan)
	var s Subscription
	if v := common.GetSerialized(ctx, recordKey(subscriptionPrefix, addr)); v != nil {
		s = v.(Subscription)
		if s.Active {
			panic(billingconst.ErrAlreadySubscribed)
		}
		s.Active = true
		s.Cancelled = false
		s.CancellationReason = cancellation.None
	} else {
		now := currentTime()
		s = Subscription{
			Subscriber:           subAddr,
			Plan:                 plan,
			Active:               true,
			LastPaymentTimestamp: now,
			NextPaymentTimestamp: now,
		}
	}

	sub.Subscriptions = common.AppendBounded(sub.Subscriptions, addr, billingconst.MaxSubscriptionsPerSubscriber)
	p.Subscriptions = common.AppendBounded(p.Subscriptions, addr, billingconst.MaxSubscriptionsPerPlan)

	putSubscriber(ctx, subAddr, sub)
	putPlan(ctx, plan, p)
	putSubscription(ctx, addr, s)

	runtime.Notify("Subscribed", addr, subscriber, plan)

	return addr
}

// Unsubscribe deactivates the active subscription owned by the subscriber
// authority.
//
// Unsubscribe produces Unsubscribed notification.
func Unsubscribe(subscriber, subscription interop.Hash160) {
	common.CheckOwnerWitness(subscriber)

	ctx := storage.GetContext()
	s := getSubscription(ctx, subscription)
	if !s.Subscriber.Equals(subscriberAddr(subscriber)) {
		panic(billingconst.ErrUnauthorized)
	}
	if !s.Active {
		panic(billingconst.ErrAlreadyInactive)
	}

	s.Active = false
	putSubscription(ctx, subscription, s)

	runtime.Notify("Unsubscribed", subscription)
}

// GetSubscriber returns Subscriber record of the authority.
func GetSubscriber(authority interop.Hash160) Subscriber {
	ctx := storage.GetReadOnlyContext()
	return getSubscriber(ctx, subscriberAddr(authority))
}

// GetSubscription returns the subscription stored by the address.
func GetSubscription(subscription interop.Hash160) Subscription {
	ctx := storage.GetReadOnlyContext()
	return getSubscription(ctx, subscription)
}
