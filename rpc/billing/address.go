package billing

import (
	"github.com/nspcc-dev/neo-go/pkg/crypto/hash"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/subscast/subscast-contract/contracts/billing/billingconst"
)

// DeriveAddress computes the record address the same way Billing and Creator
// contracts do: RIPEMD160(SHA256(seed || len(part1) || part1 || ...)).
// Script hashes must be passed as [util.Uint160.BytesBE].
func DeriveAddress(seed string, parts ...[]byte) util.Uint160 {
	data := []byte(seed)
	for _, p := range parts {
		data = append(data, byte(len(p)))
		data = append(data, p...)
	}

	return hash.Hash160(data)
}

// ProtocolAddress returns address of the protocol singleton.
func ProtocolAddress() util.Uint160 {
	return DeriveAddress(billingconst.SeedProtocol)
}

// PlanAuthorAddress returns address of the PlanAuthor record of the author.
func PlanAuthorAddress(author util.Uint160) util.Uint160 {
	return DeriveAddress(billingconst.SeedPlanAuthor, author.BytesBE())
}

// PlanAddress returns address of the author's plan with the given name.
func PlanAddress(author util.Uint160, name string) util.Uint160 {
	return DeriveAddress(billingconst.SeedPlan, author.BytesBE(), []byte(name))
}

// SubscriberAddress returns address of the Subscriber record of the
// authority. This address is passed to TriggerPayment.
func SubscriberAddress(authority util.Uint160) util.Uint160 {
	return DeriveAddress(billingconst.SeedSubscriber, authority.BytesBE())
}

// SubscriptionAddress returns address of the subscription of the subscriber
// authority to the plan.
func SubscriptionAddress(subscriber, plan util.Uint160) util.Uint160 {
	return DeriveAddress(billingconst.SeedSubscription, SubscriberAddress(subscriber).BytesBE(), plan.BytesBE())
}

// NodeAddress returns address of the Node record of the authority.
func NodeAddress(authority util.Uint160) util.Uint160 {
	return DeriveAddress(billingconst.SeedNode, authority.BytesBE())
}

// PaymentAccountAddress returns address of the owner's payment account in
// the mint token.
func PaymentAccountAddress(owner, mint util.Uint160) util.Uint160 {
	return DeriveAddress(billingconst.SeedPaymentAccount, owner.BytesBE(), mint.BytesBE())
}
