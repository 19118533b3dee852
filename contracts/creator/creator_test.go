package creator_test

import (
	"crypto/sha256"
	"strings"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
	"github.com/subscast/subscast-contract/common"
	"github.com/subscast/subscast-contract/contracts/billing/billingconst"
	"github.com/subscast/subscast-contract/contracts/creator/creatorconst"
	"github.com/subscast/subscast-contract/internal/testchain"
	billingrpc "github.com/subscast/subscast-contract/rpc/billing"
	creatorrpc "github.com/subscast/subscast-contract/rpc/creator"
)

func newCreator(t *testing.T, mint util.Uint160) (*neotest.Executor, util.Uint160, util.Uint160) {
	e := testchain.NewExecutor(t)
	billing := testchain.DeployBilling(t, e)
	creator := testchain.DeployCreator(t, e, billing, mint)

	owner := e.NewAccount(t)
	e.NewInvoker(billing, owner).Invoke(t, stackitem.Null{}, "initProtocol", owner.ScriptHash())

	return e, billing, creator
}

func dataID() []byte {
	h := sha256.Sum256([]byte("profile"))
	return append([]byte{0x12, 0x20}, h[:]...)
}

func getCreator(t *testing.T, c *neotest.ContractInvoker, authority util.Uint160) *creatorrpc.CreatorCreator {
	s, err := c.TestInvoke(t, "getCreator", authority)
	require.NoError(t, err)

	var res creatorrpc.CreatorCreator
	require.NoError(t, res.FromStackItem(s.Pop().Item()))
	return &res
}

func TestDeploy(t *testing.T) {
	// stored hashes are returned as buffers
	hashItem := func(h util.Uint160) stackitem.Item {
		return stackitem.NewBuffer(h.BytesBE())
	}

	t.Run("default mint", func(t *testing.T) {
		e, billing, h := newCreator(t, util.Uint160{})
		c := e.CommitteeInvoker(h)

		c.Invoke(t, hashItem(billing), "billingContract")
		c.Invoke(t, hashItem(e.NativeHash(t, nativenames.Gas)), "mint")
		c.Invoke(t, stackitem.NewArray([]stackitem.Item{}), "creators")
		c.Invoke(t, common.Version, "version")
	})

	t.Run("custom mint", func(t *testing.T) {
		e := testchain.NewExecutor(t)
		neoHash := e.NativeHash(t, nativenames.Neo)
		h := testchain.DeployCreator(t, e, testchain.DeployBilling(t, e), neoHash)

		s, err := e.CommitteeInvoker(h).TestInvoke(t, "mint")
		require.NoError(t, err)

		b, err := s.Pop().Item().TryBytes()
		require.NoError(t, err)
		require.Equal(t, neoHash.BytesBE(), b)
	})
}

func TestInitCreator(t *testing.T) {
	e, billing, h := newCreator(t, util.Uint160{})
	gas := e.NativeHash(t, nativenames.Gas)

	acc := e.NewAccount(t)
	c := e.NewInvoker(h, acc)

	creatorAddr := creatorrpc.CreatorAddress(acc.ScriptHash())
	planAddr := creatorrpc.CreatorPlanAddress(acc.ScriptHash(), "alice")

	e.NewInvoker(h, e.NewAccount(t)).InvokeFail(t, common.ErrOwnerWitnessFailed, "initCreator",
		acc.ScriptHash(), "alice", 100, dataID())
	c.InvokeFail(t, creatorconst.ErrInvalidName, "initCreator",
		acc.ScriptHash(), strings.Repeat("a", creatorconst.MaxNameLength+1), 100, dataID())

	c.Invoke(t, creatorAddr, "initCreator", acc.ScriptHash(), "alice", 100, dataID())
	c.InvokeFail(t, creatorconst.ErrCreatorExists, "initCreator", acc.ScriptHash(), "alice", 100, dataID())
	c.Invoke(t, creatorAddr, "creatorAddress", acc.ScriptHash())

	cr := getCreator(t, c, acc.ScriptHash())
	require.Equal(t, acc.ScriptHash(), cr.Authority)
	require.Equal(t, "alice", cr.Name)
	require.Equal(t, planAddr, cr.SubscriptionPlan)
	require.Equal(t, dataID(), cr.DataID)
	require.Empty(t, cr.Posts)
	require.Equal(t, int64(0), cr.PostCount.Int64())

	c.Invoke(t, stackitem.NewArray([]stackitem.Item{stackitem.Make(creatorAddr)}), "creators")

	s, err := e.CommitteeInvoker(billing).TestInvoke(t, "getPlan", planAddr)
	require.NoError(t, err)

	var plan billingrpc.BillingPlan
	require.NoError(t, plan.FromStackItem(s.Pop().Item()))
	require.Equal(t, "alice", plan.Name)
	require.Equal(t, acc.ScriptHash(), plan.Author)
	require.Equal(t, gas, plan.Mint)
	require.Equal(t, int64(100), plan.Amount.Int64())
	require.Equal(t, int64(creatorconst.PlanFrequency), plan.Frequency.Int64())
	require.Equal(t, int64(creatorconst.PlanFeePercent), plan.FeePercent.Int64())
	require.True(t, plan.Active)
}

func TestInitCreatorBillingFailure(t *testing.T) {
	e, billing, h := newCreator(t, util.Uint160{})

	acc := e.NewAccount(t)
	c := e.NewInvoker(h, acc)

	// plan amount bound is checked by Billing contract
	c.InvokeFail(t, billingconst.ErrInvalidAmount, "initCreator", acc.ScriptHash(), "alice", 1001, dataID())
	c.InvokeFail(t, creatorconst.ErrCreatorNotFound, "getCreator", acc.ScriptHash())
	c.Invoke(t, stackitem.NewArray([]stackitem.Item{}), "creators")

	// plan name taken in Billing contract directly
	e.NewInvoker(billing, acc).Invoke(t, creatorrpc.CreatorPlanAddress(acc.ScriptHash(), "alice"),
		"createSubscriptionPlan", acc.ScriptHash(), "alice", 100, 86400, 2, e.NativeHash(t, nativenames.Gas))
	c.InvokeFail(t, billingconst.ErrPlanExists, "initCreator", acc.ScriptHash(), "alice", 100, dataID())
	c.InvokeFail(t, creatorconst.ErrCreatorNotFound, "getCreator", acc.ScriptHash())

	c.Invoke(t, creatorrpc.CreatorAddress(acc.ScriptHash()), "initCreator", acc.ScriptHash(), "bob", 100, dataID())
}

func TestCreatePost(t *testing.T) {
	e, _, h := newCreator(t, util.Uint160{})

	acc := e.NewAccount(t)
	c := e.NewInvoker(h, acc)

	c.InvokeFail(t, creatorconst.ErrCreatorNotFound, "createPost", acc.ScriptHash(), "hello", "body", true)

	c.Invoke(t, creatorrpc.CreatorAddress(acc.ScriptHash()), "initCreator", acc.ScriptHash(), "alice", 100, dataID())

	c.InvokeFail(t, creatorconst.ErrInvalidTitle, "createPost", acc.ScriptHash(), "", "body", true)
	c.InvokeFail(t, creatorconst.ErrInvalidTitle, "createPost",
		acc.ScriptHash(), strings.Repeat("t", creatorconst.MaxTitleLength+1), "body", true)
	e.NewInvoker(h, e.NewAccount(t)).InvokeFail(t, common.ErrOwnerWitnessFailed, "createPost",
		acc.ScriptHash(), "hello", "body", true)

	creatorAddr := creatorrpc.CreatorAddress(acc.ScriptHash())
	first := creatorrpc.PostAddress(creatorAddr, 0)
	second := creatorrpc.PostAddress(creatorAddr, 1)

	c.Invoke(t, first, "createPost", acc.ScriptHash(), "hello", "first post", true)
	c.Invoke(t, second, "createPost", acc.ScriptHash(), "hello", "hidden post", false)
	c.Invoke(t, second, "postAddress", creatorAddr, 1)

	cr := getCreator(t, c, acc.ScriptHash())
	require.Equal(t, []util.Uint160{first, second}, cr.Posts)
	require.Equal(t, int64(2), cr.PostCount.Int64())

	s, err := c.TestInvoke(t, "getPost", second)
	require.NoError(t, err)

	var p creatorrpc.CreatorPost
	require.NoError(t, p.FromStackItem(s.Pop().Item()))
	require.Equal(t, creatorAddr, p.Creator)
	require.Equal(t, "hello", p.Title)
	require.Equal(t, "hidden post", p.Body)
	require.Equal(t, int64(1), p.Index.Int64())
	require.False(t, p.Visible)

	c.InvokeFail(t, creatorconst.ErrPostNotFound, "getPost", util.Uint160{1})

	t.Run("capacity", func(t *testing.T) {
		for i := 2; i < creatorconst.MaxPostsPerCreator; i++ {
			c.Invoke(t, creatorrpc.PostAddress(creatorAddr, i), "createPost", acc.ScriptHash(), "post", "", true)
		}
		c.InvokeFail(t, common.ErrCapacityExceeded, "createPost", acc.ScriptHash(), "post", "", true)
	})
}

func TestCreatorCapacity(t *testing.T) {
	e, billing, h := newCreator(t, util.Uint160{})
	reader := e.CommitteeInvoker(h)

	for i := 0; i < creatorconst.MaxCreators; i++ {
		acc := e.NewAccount(t)
		e.NewInvoker(h, acc).Invoke(t, creatorrpc.CreatorAddress(acc.ScriptHash()),
			"initCreator", acc.ScriptHash(), "alice", 100, dataID())
	}

	acc := e.NewAccount(t)
	e.NewInvoker(h, acc).InvokeFail(t, common.ErrCapacityExceeded,
		"initCreator", acc.ScriptHash(), "alice", 100, dataID())

	reader.InvokeFail(t, creatorconst.ErrCreatorNotFound, "getCreator", acc.ScriptHash())
	e.CommitteeInvoker(billing).InvokeFail(t, billingconst.ErrPlanNotFound, "getPlan",
		creatorrpc.CreatorPlanAddress(acc.ScriptHash(), "alice"))

	s, err := reader.TestInvoke(t, "creators")
	require.NoError(t, err)
	require.Len(t, s.Pop().Array(), creatorconst.MaxCreators)
}
