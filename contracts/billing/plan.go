package billing

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/subscast/subscast-contract/common"
	"github.com/subscast/subscast-contract/contracts/billing/billingconst"
)

// CreateSubscriptionPlan publishes a new plan of the author charged in the
// mint token. Amount must be in [MinAmount, MaxAmount], frequency (in
// seconds) must not be less than MinFrequency and feePercent must be in
// [MinFeePercent, MaxFeePercent]. The plan name is unique per author.
//
// PlanAuthor record and the author's payment account in the mint token are
// created if needed. Returns the plan address.
//
// CreateSubscriptionPlan produces PlanCreated notification.
func CreateSubscriptionPlan(author interop.Hash160, name string, amount, frequency, feePercent int,
	mint interop.Hash160) interop.Hash160 {
	common.CheckHash160(author, billingconst.ErrInvalidHash)
	common.CheckHash160(mint, billingconst.ErrInvalidHash)
	common.CheckOwnerWitness(author)

	if len(name) == 0 || len(name) > billingconst.MaxPlanNameLength {
		panic(billingconst.ErrInvalidName)
	}
	if amount < billingconst.MinAmount || amount > billingconst.MaxAmount {
		panic(billingconst.ErrInvalidAmount)
	}
	if frequency < billingconst.MinFrequency {
		panic(billingconst.ErrInvalidFrequency)
	}
	if feePercent < billingconst.MinFeePercent || feePercent > billingconst.MaxFeePercent {
		panic(billingconst.ErrInvalidFeePercent)
	}

	ctx := storage.GetContext()
	protocol := getProtocol(ctx)

	addr := planAddr(author, name)
	if common.Exists(ctx, recordKey(planPrefix, addr)) {
		panic(billingconst.ErrPlanExists)
	}

	authorAddr := planAuthorAddr(author)
	var pa PlanAuthor
	if v := common.GetSerialized(ctx, recordKey(planAuthorPrefix, authorAddr)); v != nil {
		pa = v.(PlanAuthor)
	} else {
		pa = PlanAuthor{Authority: author, Plans: []interop.Hash160{}}
		protocol.PlanAuthors = common.AppendBounded(protocol.PlanAuthors, authorAddr, billingconst.MaxPlanAuthors)
		putProtocol(ctx, protocol)
	}

	pa.Plans = common.AppendBounded(pa.Plans, addr, billingconst.MaxPlansPerAuthor)
	common.SetSerialized(ctx, recordKey(planAuthorPrefix, authorAddr), pa)

	putPlan(ctx, addr, Plan{
		Name:           name,
		Author:         author,
		PaymentAccount: ensureAccount(ctx, author, mint),
		Mint:           mint,
		Amount:         amount,
		Frequency:      frequency,
		FeePercent:     feePercent,
		Active:         true,
		Subscriptions:  []interop.Hash160{},
	})

	runtime.Notify("PlanCreated", addr, author, name)

	return addr
}

// ClosePlan deactivates the plan. Subscriptions of the closed plan are kept
// but can not be charged anymore.
//
// ClosePlan produces PlanClosed notification.
func ClosePlan(author, plan interop.Hash160) {
	common.CheckOwnerWitness(author)

	ctx := storage.GetContext()
	p := getPlan(ctx, plan)
	if !p.Author.Equals(author) {
		panic(billingconst.ErrUnauthorized)
	}
	if !p.Active {
		panic(billingconst.ErrPlanInactive)
	}

	p.Active = false
	putPlan(ctx, plan, p)

	runtime.Notify("PlanClosed", plan)
}

// GetPlan returns the plan stored by the address.
func GetPlan(plan interop.Hash160) Plan {
	ctx := storage.GetReadOnlyContext()
	return getPlan(ctx, plan)
}

// GetPlanAuthor returns PlanAuthor record of the author authority.
func GetPlanAuthor(author interop.Hash160) PlanAuthor {
	ctx := storage.GetReadOnlyContext()
	v := common.GetSerialized(ctx, recordKey(planAuthorPrefix, planAuthorAddr(author)))
	if v == nil {
		panic(billingconst.ErrPlanNotFound)
	}

	return v.(PlanAuthor)
}
