package billing

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/subscast/subscast-contract/common"
	"github.com/subscast/subscast-contract/contracts/billing/billingconst"
)

func protocolAddr() interop.Hash160 {
	return common.DeriveAddress(billingconst.SeedProtocol)
}

func planAuthorAddr(author interop.Hash160) interop.Hash160 {
	return common.DeriveAddress(billingconst.SeedPlanAuthor, author)
}

func planAddr(author interop.Hash160, name string) interop.Hash160 {
	return common.DeriveAddress(billingconst.SeedPlan, author, []byte(name))
}

func subscriberAddr(authority interop.Hash160) interop.Hash160 {
	return common.DeriveAddress(billingconst.SeedSubscriber, authority)
}

// subscriptionAddr is derived from the Subscriber record address, not from
// the subscriber authority.
func subscriptionAddr(subscriber, plan interop.Hash160) interop.Hash160 {
	return common.DeriveAddress(billingconst.SeedSubscription, subscriber, plan)
}

func nodeAddr(authority interop.Hash160) interop.Hash160 {
	return common.DeriveAddress(billingconst.SeedNode, authority)
}

func accountAddr(owner, mint interop.Hash160) interop.Hash160 {
	return common.DeriveAddress(billingconst.SeedPaymentAccount, owner, mint)
}

func recordKey(prefix byte, addr interop.Hash160) []byte {
	return append([]byte{prefix}, addr...)
}

func getProtocol(ctx storage.Context) Protocol {
	v := common.GetSerialized(ctx, recordKey(protocolPrefix, protocolAddr()))
	if v == nil {
		panic(billingconst.ErrNotInitialized)
	}

	return v.(Protocol)
}

func putProtocol(ctx storage.Context, p Protocol) {
	common.SetSerialized(ctx, recordKey(protocolPrefix, protocolAddr()), p)
}

func getPlan(ctx storage.Context, addr interop.Hash160) Plan {
	v := common.GetSerialized(ctx, recordKey(planPrefix, addr))
	if v == nil {
		panic(billingconst.ErrPlanNotFound)
	}

	return v.(Plan)
}

func putPlan(ctx storage.Context, addr interop.Hash160, p Plan) {
	common.SetSerialized(ctx, recordKey(planPrefix, addr), p)
}

func getSubscriber(ctx storage.Context, addr interop.Hash160) Subscriber {
	v := common.GetSerialized(ctx, recordKey(subscriberPrefix, addr))
	if v == nil {
		panic(billingconst.ErrSubscriberNotFound)
	}

	return v.(Subscriber)
}

func putSubscriber(ctx storage.Context, addr interop.Hash160, s Subscriber) {
	common.SetSerialized(ctx, recordKey(subscriberPrefix, addr), s)
}

func getSubscription(ctx storage.Context, addr interop.Hash160) Subscription {
	v := common.GetSerialized(ctx, recordKey(subscriptionPrefix, addr))
	if v == nil {
		panic(billingconst.ErrSubscriptionNotFound)
	}

	return v.(Subscription)
}

func putSubscription(ctx storage.Context, addr interop.Hash160, s Subscription) {
	common.SetSerialized(ctx, recordKey(subscriptionPrefix, addr), s)
}

func getNode(ctx storage.Context, addr interop.Hash160) Node {
	v := common.GetSerialized(ctx, recordKey(nodePrefix, addr))
	if v == nil {
		panic(billingconst.ErrNodeNotRegistered)
	}

	return v.(Node)
}

func getAccount(ctx storage.Context, addr interop.Hash160) PaymentAccount {
	v := common.GetSerialized(ctx, recordKey(accountPrefix, addr))
	if v == nil {
		panic(billingconst.ErrAccountNotFound)
	}

	return v.(PaymentAccount)
}

func putAccount(ctx storage.Context, addr interop.Hash160, acc PaymentAccount) {
	common.SetSerialized(ctx, recordKey(accountPrefix, addr), acc)
}

// ensureAccount creates an empty payment account of the owner in the mint
// token if there is none and returns its address.
func ensureAccount(ctx storage.Context, owner, mint interop.Hash160) interop.Hash160 {
	addr := accountAddr(owner, mint)
	if !common.Exists(ctx, recordKey(accountPrefix, addr)) {
		putAccount(ctx, addr, PaymentAccount{
			Owner: owner,
			Mint:  mint,
		})
	}

	return addr
}
