package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/gas"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/spf13/viper"
	"github.com/subscast/subscast-contract/paynode"
)

const (
	cfgRPCEndpoint    = "rpc.endpoint"
	cfgRPCTimeout     = "rpc.timeout"
	cfgWalletPath     = "wallet.path"
	cfgWalletAddress  = "wallet.address"
	cfgWalletPassword = "wallet.password"
	cfgBillingHash    = "contract.billing"
	cfgPayoutWallet   = "node.payout_wallet"
	cfgMint           = "node.mint"
	cfgSchedule       = "node.schedule"
	cfgBatchSize      = "node.batch_size"
	cfgWorkers        = "node.workers"
	cfgRoundTimeout   = "node.round_timeout"
	cfgMetricsAddress = "metrics.address"
	cfgLogLevel       = "log.level"
)

type config struct {
	rpcEndpoint string
	rpcTimeout  time.Duration

	walletPath     string
	walletPassword string
	authority      util.Uint160

	billing      util.Uint160
	payoutWallet util.Uint160
	mint         util.Uint160

	node paynode.Config

	metricsAddress string
	logLevel       string
}

func setDefaults(v *viper.Viper) {
	def := paynode.DefaultConfig()

	v.SetDefault(cfgRPCTimeout, 15*time.Second)
	v.SetDefault(cfgSchedule, def.Schedule)
	v.SetDefault(cfgBatchSize, def.BatchSize)
	v.SetDefault(cfgWorkers, def.Workers)
	v.SetDefault(cfgRoundTimeout, def.RoundTimeout)
	v.SetDefault(cfgMetricsAddress, ":9090")
	v.SetDefault(cfgLogLevel, "info")
}

func loadConfig(v *viper.Viper) (*config, error) {
	cfg := &config{
		rpcEndpoint:    v.GetString(cfgRPCEndpoint),
		rpcTimeout:     v.GetDuration(cfgRPCTimeout),
		walletPath:     v.GetString(cfgWalletPath),
		walletPassword: v.GetString(cfgWalletPassword),
		node: paynode.Config{
			Schedule:     v.GetString(cfgSchedule),
			BatchSize:    v.GetInt(cfgBatchSize),
			Workers:      v.GetInt(cfgWorkers),
			RoundTimeout: v.GetDuration(cfgRoundTimeout),
		},
		metricsAddress: v.GetString(cfgMetricsAddress),
		logLevel:       v.GetString(cfgLogLevel),
	}

	switch {
	case cfg.rpcEndpoint == "":
		return nil, fmt.Errorf("missing %s", cfgRPCEndpoint)
	case cfg.walletPath == "":
		return nil, fmt.Errorf("missing %s", cfgWalletPath)
	}

	var err error

	cfg.authority, err = address.StringToUint160(v.GetString(cfgWalletAddress))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", cfgWalletAddress, err)
	}

	if s := v.GetString(cfgBillingHash); s != "" {
		cfg.billing, err = parseHash(s)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", cfgBillingHash, err)
		}
	}

	cfg.payoutWallet = cfg.authority
	if s := v.GetString(cfgPayoutWallet); s != "" {
		cfg.payoutWallet, err = address.StringToUint160(s)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", cfgPayoutWallet, err)
		}
	}

	cfg.mint = gas.Hash
	if s := v.GetString(cfgMint); s != "" {
		cfg.mint, err = parseHash(s)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", cfgMint, err)
		}
	}

	if err = cfg.node.Validate(); err != nil {
		return nil, errors.Join(errors.New("invalid node settings"), err)
	}

	return cfg, nil
}

// requireBilling checks that Billing contract address is configured. It is
// optional for the deployment only.
func (c *config) requireBilling() error {
	if c.billing.Equals(util.Uint160{}) {
		return fmt.Errorf("missing %s", cfgBillingHash)
	}

	return nil
}

// parseHash decodes little-endian script hash with an optional 0x prefix.
// YAML resolves unquoted all-digit hashes to numbers, so hashes must be
// quoted in the configuration file.
func parseHash(s string) (util.Uint160, error) {
	return util.Uint160DecodeStringLE(strings.TrimPrefix(s, "0x"))
}
