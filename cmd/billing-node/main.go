package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "BILLING_NODE"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		cfgFile string
		v       = viper.New()
	)

	cmd := &cobra.Command{
		Use:          "billing-node",
		Short:        "Subscast payment node",
		Long:         "Payment node charging due subscriptions of Subscast Billing contract for the plan fee.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initViper(v, cfgFile)
		},
	}

	cmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to the YAML configuration file, script hashes in it must be quoted")

	cmd.AddCommand(newRunCommand(v))
	cmd.AddCommand(newRoundCommand(v))
	cmd.AddCommand(newRegisterCommand(v))
	cmd.AddCommand(newDeployCommand(v))

	return cmd
}

func initViper(v *viper.Viper, cfgFile string) error {
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile == "" {
		return nil
	}

	v.SetConfigFile(cfgFile)

	return v.ReadInConfig()
}
