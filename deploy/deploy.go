// Package deploy provides the deployment procedure of Subscast contracts.
package deploy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/subscast/subscast-contract/rpc/billing"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for Subscast deployment.
type Blockchain interface {
	// GetContractStateByHash returns network state of the smart contract by its
	// address. GetContractStateByHash returns error with 'Unknown contract'
	// substring if requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// Actor composes, signs and sends transactions on behalf of the local
// account. [actor.Actor] implements it.
type Actor interface {
	billing.Actor

	// Sender returns the account deploying contracts.
	Sender() util.Uint160

	// Wait awaits the transaction and returns its execution result.
	Wait(h util.Uint256, vub uint32, err error) (*state.AppExecResult, error)
}

// CommonDeployPrm groups common deployment parameters of the smart contract.
type CommonDeployPrm struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

// BillingContractPrm groups deployment parameters of Billing contract.
type BillingContractPrm struct {
	Common CommonDeployPrm

	// Protocol authority. Zero value means the local account. The authority
	// must witness the transaction, so only the local account is allowed
	// currently.
	Authority util.Uint160
}

// CreatorContractPrm groups deployment parameters of Creator contract.
type CreatorContractPrm struct {
	Common CommonDeployPrm

	// Token creator plans are charged in. Zero value means GAS.
	Mint util.Uint160
}

// Prm groups all parameters of the deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	Blockchain Blockchain
	Actor      Actor

	Billing BillingContractPrm
	Creator CreatorContractPrm
}

// Result describes deployed contracts.
type Result struct {
	Billing util.Uint160
	Creator util.Uint160
}

// Deploy deploys Billing contract, initializes the protocol and deploys
// Creator contract bound to Billing one. Deploy is idempotent: contracts
// already deployed by the local account are not redeployed, and the protocol
// is initialized only once.
func Deploy(ctx context.Context, prm Prm) (Result, error) {
	var res Result

	authority := prm.Billing.Authority
	if authority.Equals(util.Uint160{}) {
		authority = prm.Actor.Sender()
	}

	if !authority.Equals(prm.Actor.Sender()) {
		return res, errors.New("protocol authority differs from the local account")
	}

	var err error

	prm.Logger.Info("synchronizing Billing contract with the chain...")

	res.Billing, err = deployContract(ctx, prm, prm.Billing.Common, nil)
	if err != nil {
		return res, fmt.Errorf("deploy Billing contract: %w", err)
	}

	err = initProtocol(ctx, prm, res.Billing, authority)
	if err != nil {
		return res, fmt.Errorf("init protocol: %w", err)
	}

	prm.Logger.Info("synchronizing Creator contract with the chain...")

	args := []any{res.Billing}
	if !prm.Creator.Mint.Equals(util.Uint160{}) {
		args = append(args, prm.Creator.Mint)
	}

	res.Creator, err = deployContract(ctx, prm, prm.Creator.Common, args)
	if err != nil {
		return res, fmt.Errorf("deploy Creator contract: %w", err)
	}

	return res, nil
}

func deployContract(ctx context.Context, prm Prm, c CommonDeployPrm, data []any) (util.Uint160, error) {
	addr := state.CreateContractHash(prm.Actor.Sender(), c.NEF.Checksum, c.Manifest.Name)
	l := prm.Logger.With(zap.String("contract", c.Manifest.Name), zap.Stringer("address", addr))

	_, err := prm.Blockchain.GetContractStateByHash(addr)
	if err == nil {
		l.Info("contract is already deployed, skip")
		return addr, nil
	}

	if !isErrContractNotFound(err) {
		return addr, fmt.Errorf("get contract state: %w", err)
	}

	if err = ctx.Err(); err != nil {
		return addr, err
	}

	bNEF, err := c.NEF.Bytes()
	if err != nil {
		return addr, fmt.Errorf("encode NEF: %w", err)
	}

	jManifest, err := json.Marshal(c.Manifest)
	if err != nil {
		return addr, fmt.Errorf("encode manifest: %w", err)
	}

	l.Info("contract is missing on the chain, deploying...")

	var params []any
	if data != nil {
		params = []any{bNEF, jManifest, data}
	} else {
		params = []any{bNEF, jManifest}
	}

	res, err := prm.Actor.Wait(prm.Actor.SendCall(management.Hash, "deploy", params...))
	if err = checkResult(res, err); err != nil {
		return addr, err
	}

	l.Info("contract successfully deployed", zap.Stringer("tx", res.Container))

	return addr, nil
}

func initProtocol(ctx context.Context, prm Prm, addr, authority util.Uint160) error {
	c := billing.New(prm.Actor, addr)

	p, err := c.GetProtocol()
	if err == nil {
		prm.Logger.Info("protocol is already initialized, skip", zap.Stringer("authority", p.Authority))
		return nil
	}

	if !strings.Contains(err.Error(), billing.ErrNotInitialized) {
		return fmt.Errorf("get protocol: %w", err)
	}

	if err = ctx.Err(); err != nil {
		return err
	}

	prm.Logger.Info("initializing protocol...", zap.Stringer("authority", authority))

	res, err := prm.Actor.Wait(c.InitProtocol(authority))
	if err = checkResult(res, err); err != nil {
		return err
	}

	prm.Logger.Info("protocol successfully initialized", zap.Stringer("tx", res.Container))

	return nil
}

func checkResult(res *state.AppExecResult, err error) error {
	if err != nil {
		return fmt.Errorf("send transaction: %w", err)
	}

	if res.VMState != vmstate.Halt {
		return fmt.Errorf("transaction %s faulted: %s", res.Container.StringLE(), res.FaultException)
	}

	return nil
}

func isErrContractNotFound(err error) bool {
	return strings.Contains(err.Error(), "Unknown contract")
}
