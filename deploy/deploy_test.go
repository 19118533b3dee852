package deploy

import (
	"context"
	"errors"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/stretchr/testify/require"
	"github.com/subscast/subscast-contract/rpc/billing"
	"go.uber.org/zap/zaptest"
)

type sentCall struct {
	contract util.Uint160
	method   string
	params   []any
}

// testChain implements both Blockchain and Actor.
type testChain struct {
	sender util.Uint160

	deployed    map[util.Uint160]bool
	initialized bool
	fault       string

	sent []sentCall
}

func newTestChain() *testChain {
	return &testChain{
		sender:   util.Uint160{1, 2, 3},
		deployed: make(map[util.Uint160]bool),
	}
}

func (c *testChain) GetContractStateByHash(h util.Uint160) (*state.Contract, error) {
	if !c.deployed[h] {
		return nil, errors.New("Unknown contract")
	}
	return &state.Contract{}, nil
}

func (c *testChain) Call(_ util.Uint160, operation string, _ ...any) (*result.Invoke, error) {
	if operation != "getProtocol" {
		return nil, errors.New("unexpected call " + operation)
	}

	if !c.initialized {
		return &result.Invoke{State: "FAULT", FaultException: billing.ErrNotInitialized}, nil
	}

	return &result.Invoke{State: "HALT", Stack: []stackitem.Item{stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(c.sender.BytesBE()),
		stackitem.NewArray([]stackitem.Item{}),
		stackitem.NewArray([]stackitem.Item{}),
	})}}, nil
}

func (c *testChain) SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error) {
	c.sent = append(c.sent, sentCall{contract, method, params})

	if method == "initProtocol" {
		c.initialized = true
	}

	return util.Uint256{byte(len(c.sent))}, 100, nil
}

func (c *testChain) Wait(h util.Uint256, _ uint32, err error) (*state.AppExecResult, error) {
	if err != nil {
		return nil, err
	}

	res := &state.AppExecResult{Container: h, Execution: state.Execution{VMState: vmstate.Halt}}
	if c.fault != "" {
		res.VMState = vmstate.Fault
		res.FaultException = c.fault
	}

	return res, nil
}

func (c *testChain) Sender() util.Uint160 { return c.sender }

func (c *testChain) MakeCall(util.Uint160, string, ...any) (*transaction.Transaction, error) {
	return nil, errors.New("unexpected")
}

func (c *testChain) MakeRun([]byte) (*transaction.Transaction, error) {
	return nil, errors.New("unexpected")
}

func (c *testChain) MakeUnsignedCall(util.Uint160, string, []transaction.Attribute, ...any) (*transaction.Transaction, error) {
	return nil, errors.New("unexpected")
}

func (c *testChain) MakeUnsignedRun([]byte, []transaction.Attribute) (*transaction.Transaction, error) {
	return nil, errors.New("unexpected")
}

func (c *testChain) SendRun([]byte) (util.Uint256, uint32, error) {
	return util.Uint256{}, 0, errors.New("unexpected")
}

func commonPrm(t *testing.T, name string, script []byte) CommonDeployPrm {
	f, err := nef.NewFile(script)
	require.NoError(t, err)

	return CommonDeployPrm{NEF: *f, Manifest: *manifest.NewManifest(name)}
}

func testPrm(t *testing.T, c *testChain) Prm {
	return Prm{
		Logger:     zaptest.NewLogger(t),
		Blockchain: c,
		Actor:      c,
		Billing:    BillingContractPrm{Common: commonPrm(t, "Subscast Billing", []byte{0x40})},
		Creator:    CreatorContractPrm{Common: commonPrm(t, "Subscast Creator", []byte{0x11, 0x40})},
	}
}

func TestDeploy(t *testing.T) {
	c := newTestChain()
	prm := testPrm(t, c)
	mint := util.Uint160{9}
	prm.Creator.Mint = mint

	res, err := Deploy(context.Background(), prm)
	require.NoError(t, err)

	expBilling := state.CreateContractHash(c.sender, prm.Billing.Common.NEF.Checksum, "Subscast Billing")
	expCreator := state.CreateContractHash(c.sender, prm.Creator.Common.NEF.Checksum, "Subscast Creator")
	require.Equal(t, expBilling, res.Billing)
	require.Equal(t, expCreator, res.Creator)

	require.Len(t, c.sent, 3)

	require.Equal(t, management.Hash, c.sent[0].contract)
	require.Equal(t, "deploy", c.sent[0].method)
	require.Len(t, c.sent[0].params, 2)

	require.Equal(t, expBilling, c.sent[1].contract)
	require.Equal(t, "initProtocol", c.sent[1].method)
	require.Equal(t, []any{c.sender}, c.sent[1].params)

	require.Equal(t, management.Hash, c.sent[2].contract)
	require.Equal(t, "deploy", c.sent[2].method)
	require.Len(t, c.sent[2].params, 3)
	require.Equal(t, []any{expBilling, mint}, c.sent[2].params[2])
}

func TestDeployIdempotent(t *testing.T) {
	c := newTestChain()
	prm := testPrm(t, c)

	c.deployed[state.CreateContractHash(c.sender, prm.Billing.Common.NEF.Checksum, "Subscast Billing")] = true
	c.deployed[state.CreateContractHash(c.sender, prm.Creator.Common.NEF.Checksum, "Subscast Creator")] = true
	c.initialized = true

	_, err := Deploy(context.Background(), prm)
	require.NoError(t, err)
	require.Empty(t, c.sent)

	t.Run("default mint", func(t *testing.T) {
		c.deployed = make(map[util.Uint160]bool)

		_, err := Deploy(context.Background(), prm)
		require.NoError(t, err)
		require.Len(t, c.sent, 2)
		require.Len(t, c.sent[1].params[2], 1)
	})
}

func TestDeployErrors(t *testing.T) {
	t.Run("foreign authority", func(t *testing.T) {
		c := newTestChain()
		prm := testPrm(t, c)
		prm.Billing.Authority = util.Uint160{7}

		_, err := Deploy(context.Background(), prm)
		require.Error(t, err)
		require.Empty(t, c.sent)
	})

	t.Run("faulted deployment", func(t *testing.T) {
		c := newTestChain()
		c.fault = "out of gas"

		_, err := Deploy(context.Background(), testPrm(t, c))
		require.ErrorContains(t, err, "out of gas")
		require.Len(t, c.sent, 1)
	})

	t.Run("cancelled", func(t *testing.T) {
		c := newTestChain()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := Deploy(ctx, testPrm(t, c))
		require.ErrorIs(t, err, context.Canceled)
		require.Empty(t, c.sent)
	})
}
