// Package testchain provides helpers running Subscast contracts on a
// single-node in-memory chain.
package testchain

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

// Contract names, also directories under contracts/.
const (
	Billing = "billing"
	Creator = "creator"
)

// Epoch is a block time (in seconds) tests start their schedules from. It is
// far beyond the genesis block time, so blocks produced by the executor
// before never exceed it.
const Epoch = 1_700_000_000

// ContractPath returns path to the source directory of the named contract.
func ContractPath(name string) string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "contracts", name)
}

// NewExecutor creates executor of the fresh single-node chain.
func NewExecutor(t testing.TB) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

// Compile compiles the named contract deployed by the committee.
func Compile(t testing.TB, e *neotest.Executor, name string) *neotest.Contract {
	p := ContractPath(name)
	return neotest.CompileFile(t, e.CommitteeHash, p, filepath.Join(p, "config.yml"))
}

// DeployBilling deploys Billing contract and returns its hash.
func DeployBilling(t testing.TB, e *neotest.Executor) util.Uint160 {
	c := Compile(t, e, Billing)
	e.DeployContract(t, c, nil)
	return c.Hash
}

// DeployCreator deploys Creator contract bound to the given Billing contract.
// Zero mint makes creator plans charged in GAS.
func DeployCreator(t testing.TB, e *neotest.Executor, billing, mint util.Uint160) util.Uint160 {
	args := make([]any, 2)
	args[0] = billing
	if !mint.Equals(util.Uint160{}) {
		args[1] = mint
	}

	c := Compile(t, e, Creator)
	e.DeployContract(t, c, args)
	return c.Hash
}

// GAS returns native GAS contract hash.
func GAS(t testing.TB, e *neotest.Executor) util.Uint160 {
	return e.NativeHash(t, nativenames.Gas)
}

// Deposit transfers GAS of the signer to the Billing contract crediting the
// signer's payment account.
func Deposit(t testing.TB, e *neotest.Executor, billing util.Uint160, from neotest.Signer, amount int64) {
	inv := e.NewInvoker(GAS(t, e), from)
	inv.Invoke(t, true, "transfer", from.ScriptHash(), billing, amount, nil)
}

// AddBlockAt persists a block with the given transactions and the timestamp
// ts in seconds. Timestamps must increase from block to block.
func AddBlockAt(t testing.TB, e *neotest.Executor, ts uint64, txs ...*transaction.Transaction) {
	b := e.NewUnsignedBlock(t, txs...)
	b.Timestamp = ts * 1000
	require.NoError(t, e.Chain.AddBlock(e.SignBlock(b)))
}
