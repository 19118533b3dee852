package main

import (
	"fmt"
	"os"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/subscast/subscast-contract/contracts"
	"github.com/subscast/subscast-contract/deploy"
)

type deployOptions struct {
	contractsDir string
	creatorMint  string
}

func newDeployCommand(v *viper.Viper) *cobra.Command {
	opts := &deployOptions{}

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy Billing and Creator contracts signed by the wallet account",
		Long: "Deploys Billing contract, initializes the protocol with the wallet account " +
			"as the authority and deploys Creator contract bound to Billing one. " +
			"Contracts already deployed by the account are skipped.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}

			log, err := newLogger(cfg.logLevel)
			if err != nil {
				return err
			}

			defer func() { _ = log.Sync() }()

			set, err := contracts.Read(os.DirFS(opts.contractsDir))
			if err != nil {
				return err
			}

			prm := deploy.Prm{Logger: log}
			prm.Billing.Common = deploy.CommonDeployPrm(set.Billing)
			prm.Creator.Common = deploy.CommonDeployPrm(set.Creator)

			if opts.creatorMint != "" {
				prm.Creator.Mint, err = util.Uint160DecodeStringLE(opts.creatorMint)
				if err != nil {
					return fmt.Errorf("invalid creator mint: %w", err)
				}
			}

			b, err := dialBilling(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			defer b.close()

			prm.Blockchain = b.rpc
			prm.Actor = b.actor

			res, err := deploy.Deploy(cmd.Context(), prm)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "billing: %s\n", res.Billing.StringLE())
			fmt.Fprintf(out, "creator: %s\n", res.Creator.StringLE())

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.contractsDir, "contracts", "contracts", "directory with compiled contracts (<name>/contract.nef and <name>/manifest.json)")
	cmd.Flags().StringVar(&opts.creatorMint, "creator-mint", "", "token creator plans are charged in (GAS by default)")

	return cmd
}
