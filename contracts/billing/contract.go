package billing

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/subscast/subscast-contract/common"
	"github.com/subscast/subscast-contract/contracts/billing/billingconst"
	"github.com/subscast/subscast-contract/contracts/billing/cancellation"
)

type (
	// Protocol is a singleton record of the protocol authority and the
	// registries of plan authors and payment nodes.
	Protocol struct {
		Authority   interop.Hash160
		PlanAuthors []interop.Hash160
		Nodes       []interop.Hash160
	}

	// PlanAuthor holds the list of plans published by one authority.
	PlanAuthor struct {
		Authority interop.Hash160
		Plans     []interop.Hash160
	}

	// Plan is a subscription plan. Amount is charged once per Frequency
	// seconds, FeePercent of it goes to the node executing the payment.
	Plan struct {
		Name           string
		Author         interop.Hash160
		PaymentAccount interop.Hash160
		Mint           interop.Hash160
		Amount         int
		Frequency      int
		FeePercent     int
		Active         bool
		Subscriptions  []interop.Hash160
	}

	// Subscriber holds the payment account and the subscriptions of one
	// authority.
	Subscriber struct {
		Authority      interop.Hash160
		PaymentAccount interop.Hash160
		Subscriptions  []interop.Hash160
	}

	// Subscription binds a subscriber to a plan. Timestamps are in seconds.
	Subscription struct {
		Subscriber           interop.Hash160
		Plan                 interop.Hash160
		Active               bool
		Cancelled            bool
		CancellationReason   cancellation.Reason
		LastPaymentTimestamp int
		NextPaymentTimestamp int
	}

	// Node is a payment node allowed to trigger due payments.
	Node struct {
		Authority      interop.Hash160
		PayoutWallet   interop.Hash160
		PaymentAccount interop.Hash160
		Registered     bool
	}

	// PaymentAccount is an escrow balance of the owner in the Mint token.
	// Allowance is the amount the protocol may still charge while Delegated
	// is set.
	PaymentAccount struct {
		Owner     interop.Hash160
		Mint      interop.Hash160
		Balance   int
		Delegated bool
		Allowance int
	}
)

const (
	protocolPrefix     = 'r'
	planAuthorPrefix   = 'u'
	planPrefix         = 'p'
	subscriberPrefix   = 'b'
	subscriptionPrefix = 's'
	nodePrefix         = 'n'
	accountPrefix      = 'a'
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	runtime.Log("billing contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic(common.ErrUpdateAccess)
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("billing contract updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// InitProtocol creates the protocol singleton owned by the authority. It can
// be invoked only once and only by the authority.
//
// InitProtocol produces ProtocolInitialized notification.
func InitProtocol(authority interop.Hash160) {
	common.CheckHash160(authority, billingconst.ErrInvalidHash)
	common.CheckOwnerWitness(authority)

	ctx := storage.GetContext()
	key := recordKey(protocolPrefix, protocolAddr())
	if common.Exists(ctx, key) {
		panic(billingconst.ErrAlreadyInitialized)
	}

	common.SetSerialized(ctx, key, Protocol{
		Authority:   authority,
		PlanAuthors: []interop.Hash160{},
		Nodes:       []interop.Hash160{},
	})

	runtime.Log("protocol initialized")
	runtime.Notify("ProtocolInitialized", authority)
}

// GetProtocol returns the protocol singleton. It panics if the protocol
// has not been initialized yet.
func GetProtocol() Protocol {
	ctx := storage.GetReadOnlyContext()
	return getProtocol(ctx)
}

// PlanAddress returns address of the plan with the given name published by
// the author.
func PlanAddress(author interop.Hash160, name string) interop.Hash160 {
	return planAddr(author, name)
}

// SubscriptionAddress returns address of the subscription of the subscriber
// authority to the plan.
func SubscriptionAddress(subscriber, plan interop.Hash160) interop.Hash160 {
	return subscriptionAddr(subscriberAddr(subscriber), plan)
}

// PaymentAccountAddress returns address of the owner's payment account in
// the mint token.
func PaymentAccountAddress(owner, mint interop.Hash160) interop.Hash160 {
	return accountAddr(owner, mint)
}

func currentTime() int {
	return runtime.GetTime() / 1000
}
