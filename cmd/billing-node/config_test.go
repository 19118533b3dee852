package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/gas"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

var (
	testAuthority = util.Uint160{1, 2, 3}
	testBilling   = util.Uint160{4, 5, 6}
)

func writeConfig(t *testing.T, body string) string {
	p := filepath.Join(t.TempDir(), "node.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func validConfig() string {
	return "rpc:\n" +
		"  endpoint: http://localhost:30333\n" +
		"wallet:\n" +
		"  path: wallet.json\n" +
		"  address: " + address.Uint160ToString(testAuthority) + "\n" +
		"  password: one\n" +
		"contract:\n" +
		"  billing: \"" + testBilling.StringLE() + "\"\n"
}

func TestLoadConfig(t *testing.T) {
	v := viper.New()
	require.NoError(t, initViper(v, writeConfig(t, validConfig())))

	cfg, err := loadConfig(v)
	require.NoError(t, err)

	require.Equal(t, "http://localhost:30333", cfg.rpcEndpoint)
	require.Equal(t, 15*time.Second, cfg.rpcTimeout)
	require.Equal(t, testAuthority, cfg.authority)
	require.Equal(t, testBilling, cfg.billing)
	require.Equal(t, testAuthority, cfg.payoutWallet)
	require.Equal(t, gas.Hash, cfg.mint)
	require.Equal(t, "@every 1m", cfg.node.Schedule)
	require.Equal(t, 64, cfg.node.BatchSize)
	require.Equal(t, 4, cfg.node.Workers)
	require.Equal(t, ":9090", cfg.metricsAddress)
	require.Equal(t, "info", cfg.logLevel)
}

func TestLoadConfigOverrides(t *testing.T) {
	payout := util.Uint160{7}
	mint := util.Uint160{8}

	t.Setenv("BILLING_NODE_NODE_WORKERS", "16")
	t.Setenv("BILLING_NODE_LOG_LEVEL", "debug")

	v := viper.New()
	require.NoError(t, initViper(v, writeConfig(t, validConfig()+
		"node:\n"+
		"  payout_wallet: "+address.Uint160ToString(payout)+"\n"+
		"  mint: \"0x"+mint.StringLE()+"\"\n"+
		"  schedule: \"*/5 * * * *\"\n"+
		"  round_timeout: 30s\n")))

	cfg, err := loadConfig(v)
	require.NoError(t, err)

	require.Equal(t, payout, cfg.payoutWallet)
	require.Equal(t, mint, cfg.mint)
	require.Equal(t, "*/5 * * * *", cfg.node.Schedule)
	require.Equal(t, 30*time.Second, cfg.node.RoundTimeout)
	require.Equal(t, 16, cfg.node.Workers)
	require.Equal(t, "debug", cfg.logLevel)
}

func TestParseHash(t *testing.T) {
	for _, s := range []string{testBilling.StringLE(), "0x" + testBilling.StringLE()} {
		h, err := parseHash(s)
		require.NoError(t, err)
		require.Equal(t, testBilling, h)
	}

	_, err := parseHash("0x")
	require.Error(t, err)
}

func TestLoadConfigErrors(t *testing.T) {
	for _, tc := range []struct {
		name, body string
	}{
		{"missing endpoint", "wallet:\n  path: w.json\n"},
		{"missing wallet", "rpc:\n  endpoint: http://localhost:30333\n"},
		{"invalid address", "rpc:\n  endpoint: e\nwallet:\n  path: w.json\n  address: NotAnAddress\n"},
		{"invalid billing hash", "rpc:\n  endpoint: e\nwallet:\n  path: w.json\n  address: " +
			address.Uint160ToString(testAuthority) + "\ncontract:\n  billing: zz\n"},
		{"invalid workers", validConfig() + "node:\n  workers: 0\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			v := viper.New()
			require.NoError(t, initViper(v, writeConfig(t, tc.body)))

			_, err := loadConfig(v)
			require.Error(t, err)
		})
	}
}

func TestRequireBilling(t *testing.T) {
	v := viper.New()
	require.NoError(t, initViper(v, writeConfig(t, "rpc:\n  endpoint: e\nwallet:\n  path: w.json\n  address: "+
		address.Uint160ToString(testAuthority)+"\n")))

	cfg, err := loadConfig(v)
	require.NoError(t, err)
	require.Error(t, cfg.requireBilling())

	cfg.billing = testBilling
	require.NoError(t, cfg.requireBilling())
}

func TestNewLogger(t *testing.T) {
	_, err := newLogger("debug")
	require.NoError(t, err)

	_, err = newLogger("loud")
	require.Error(t, err)
}
