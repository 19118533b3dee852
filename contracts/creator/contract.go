package creator

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/subscast/subscast-contract/common"
	"github.com/subscast/subscast-contract/contracts/creator/creatorconst"
)

type (
	// Registry is a singleton list of the initialized creators.
	Registry struct {
		Creators []interop.Hash160
	}

	// Creator is a content creator profile linked to the subscription plan
	// provisioned in Billing contract.
	Creator struct {
		Authority        interop.Hash160
		Name             string
		SubscriptionPlan interop.Hash160
		// DataID is an identifier of the off-chain profile data.
		DataID    []byte
		Posts     []interop.Hash160
		PostCount int
	}

	// Post is a creator's publication. Index increases monotonically per
	// creator.
	Post struct {
		Creator interop.Hash160
		Title   string
		Body    string
		Index   int
		Visible bool
	}
)

const (
	billingContractKey = "billing"
	mintKey            = "mint"

	registryPrefix = 'g'
	creatorPrefix  = 'c'
	postPrefix     = 'o'
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	args := data.([]any)
	if isUpdate {
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	addrBilling := args[0].(interop.Hash160)
	common.CheckHash160(addrBilling, creatorconst.ErrInvalidHash)

	addrMint := interop.Hash160(gas.Hash)
	if len(args) >= 2 && args[1] != nil && len(args[1].(interop.Hash160)) == interop.Hash160Len {
		addrMint = args[1].(interop.Hash160)
	}

	ctx := storage.GetContext()
	storage.Put(ctx, billingContractKey, addrBilling)
	storage.Put(ctx, mintKey, addrMint)
	common.SetSerialized(ctx, registryKey(), Registry{Creators: []interop.Hash160{}})

	runtime.Log("creator contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic(common.ErrUpdateAccess)
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("creator contract updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// InitCreator creates creator profile of the authority. It provisions a
// monthly subscription plan named after the creator in Billing contract
// first; if that fails, no creator record is created. Returns the creator
// address.
//
// Billing contract checks the authority witness too, so the transaction
// signer scope must allow Billing contract calls.
//
// InitCreator produces CreatorInitialized notification.
func InitCreator(authority interop.Hash160, name string, amount int, dataID []byte) interop.Hash160 {
	common.CheckHash160(authority, creatorconst.ErrInvalidHash)
	common.CheckOwnerWitness(authority)

	if len(name) == 0 || len(name) > creatorconst.MaxNameLength {
		panic(creatorconst.ErrInvalidName)
	}

	ctx := storage.GetContext()
	addr := creatorAddr(authority)
	if common.Exists(ctx, recordKey(creatorPrefix, addr)) {
		panic(creatorconst.ErrCreatorExists)
	}

	reg := common.GetSerialized(ctx, registryKey()).(Registry)
	reg.Creators = common.AppendBounded(reg.Creators, addr, creatorconst.MaxCreators)

	billing := storage.Get(ctx, billingContractKey).(interop.Hash160)
	mint := storage.Get(ctx, mintKey).(interop.Hash160)

	plan := contract.Call(billing, "createSubscriptionPlan", contract.All,
		authority, name, amount, creatorconst.PlanFrequency, creatorconst.PlanFeePercent, mint).(interop.Hash160)

	common.SetSerialized(ctx, registryKey(), reg)

	common.SetSerialized(ctx, recordKey(creatorPrefix, addr), Creator{
		Authority:        authority,
		Name:             name,
		SubscriptionPlan: plan,
		DataID:           dataID,
		Posts:            []interop.Hash160{},
	})

	runtime.Notify("CreatorInitialized", addr, authority, plan)

	return addr
}

// CreatePost appends a new post to the creator profile of the authority.
// Returns the post address.
//
// CreatePost produces PostCreated notification.
func CreatePost(authority interop.Hash160, title, body string, visible bool) interop.Hash160 {
	common.CheckOwnerWitness(authority)

	if len(title) == 0 || len(title) > creatorconst.MaxTitleLength {
		panic(creatorconst.ErrInvalidTitle)
	}

	ctx := storage.GetContext()
	cAddr := creatorAddr(authority)
	c := getCreator(ctx, cAddr)

	index := c.PostCount
	addr := postAddr(cAddr, index)

	c.Posts = common.AppendBounded(c.Posts, addr, creatorconst.MaxPostsPerCreator)
	c.PostCount = index + 1
	common.SetSerialized(ctx, recordKey(creatorPrefix, cAddr), c)

	common.SetSerialized(ctx, recordKey(postPrefix, addr), Post{
		Creator: cAddr,
		Title:   title,
		Body:    body,
		Index:   index,
		Visible: visible,
	})

	runtime.Notify("PostCreated", addr, cAddr, index)

	return addr
}

// GetCreator returns creator profile of the authority.
func GetCreator(authority interop.Hash160) Creator {
	ctx := storage.GetReadOnlyContext()
	return getCreator(ctx, creatorAddr(authority))
}

// GetPost returns the post stored by the address.
func GetPost(post interop.Hash160) Post {
	ctx := storage.GetReadOnlyContext()
	v := common.GetSerialized(ctx, recordKey(postPrefix, post))
	if v == nil {
		panic(creatorconst.ErrPostNotFound)
	}

	return v.(Post)
}

// Creators returns addresses of all initialized creators.
func Creators() []interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return common.GetSerialized(ctx, registryKey()).(Registry).Creators
}

// CreatorAddress returns creator address of the authority.
func CreatorAddress(authority interop.Hash160) interop.Hash160 {
	return creatorAddr(authority)
}

// PostAddress returns address of the creator's post with the given index.
func PostAddress(creator interop.Hash160, index int) interop.Hash160 {
	return postAddr(creator, index)
}

// BillingContract returns script hash of Billing contract provisioning
// creator plans.
func BillingContract() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, billingContractKey).(interop.Hash160)
}

// Mint returns script hash of the token creator plans are charged in.
func Mint() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, mintKey).(interop.Hash160)
}

func getCreator(ctx storage.Context, addr interop.Hash160) Creator {
	v := common.GetSerialized(ctx, recordKey(creatorPrefix, addr))
	if v == nil {
		panic(creatorconst.ErrCreatorNotFound)
	}

	return v.(Creator)
}

func registryKey() []byte {
	return recordKey(registryPrefix, common.DeriveAddress(creatorconst.SeedRegistry))
}

func creatorAddr(authority interop.Hash160) interop.Hash160 {
	return common.DeriveAddress(creatorconst.SeedCreator, authority)
}

func postAddr(creator interop.Hash160, index int) interop.Hash160 {
	return common.DeriveAddress(creatorconst.SeedPost, creator, []byte(std.Itoa(index, 10)))
}

func recordKey(prefix byte, addr interop.Hash160) []byte {
	return append([]byte{prefix}, addr...)
}
