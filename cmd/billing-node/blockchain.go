package main

import (
	"context"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/subscast/subscast-contract/rpc/billing"
	"go.uber.org/zap"
)

// wrapper over Neo RPC providing Billing contract signed by the node account.
type remoteBilling struct {
	rpc      *rpcclient.Client
	actor    *actor.Actor
	contract *billing.Contract
}

// dialBilling opens the node wallet, dials Neo RPC server and binds Billing
// contract to the node account.
func dialBilling(ctx context.Context, cfg *config) (*remoteBilling, error) {
	w, err := wallet.NewWalletFromFile(cfg.walletPath)
	if err != nil {
		return nil, fmt.Errorf("open wallet: %w", err)
	}

	defer w.Close()

	acc := w.GetAccount(cfg.authority)
	if acc == nil {
		return nil, fmt.Errorf("account %s not found in the wallet", cfg.authority.StringLE())
	}

	err = acc.Decrypt(cfg.walletPassword, w.Scrypt)
	if err != nil {
		return nil, fmt.Errorf("decrypt account: %w", err)
	}

	c, err := rpcclient.New(ctx, cfg.rpcEndpoint, rpcclient.Options{
		DialTimeout:    cfg.rpcTimeout,
		RequestTimeout: cfg.rpcTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	err = c.Init()
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("RPC client init: %w", err)
	}

	act, err := actor.NewSimple(c, acc)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("init actor: %w", err)
	}

	return &remoteBilling{
		rpc:      c,
		actor:    act,
		contract: billing.New(act, cfg.billing),
	}, nil
}

func (x *remoteBilling) close() {
	x.rpc.Close()
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	c := zap.NewProductionConfig()
	c.Level = lvl
	c.Encoding = "console"

	return c.Build()
}
