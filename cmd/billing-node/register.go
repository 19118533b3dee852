package main

import (
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRegisterCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Register the node account in Billing contract",
		Long: "Registers the node account in Billing contract. Fees earned by the node are " +
			"credited to the payout wallet payment account in the plan token.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}

			if err = cfg.requireBilling(); err != nil {
				return err
			}

			b, err := dialBilling(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			defer b.close()

			res, err := b.actor.Wait(b.contract.RegisterNode(cfg.authority, cfg.payoutWallet, cfg.mint))
			if err != nil {
				return fmt.Errorf("register node: %w", err)
			}

			if res.VMState != vmstate.Halt {
				return errors.New("register node: " + res.FaultException)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "node %s registered in %s\n",
				cfg.authority.StringLE(), res.Container.StringLE())

			return nil
		},
	}
}
