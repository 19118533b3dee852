package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/subscast/subscast-contract/paynode"
	"go.uber.org/zap"
)

func newRunCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run payment rounds on schedule until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}

			if err = cfg.requireBilling(); err != nil {
				return err
			}

			log, err := newLogger(cfg.logLevel)
			if err != nil {
				return err
			}

			defer func() { _ = log.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			b, err := dialBilling(ctx, cfg)
			if err != nil {
				return err
			}

			defer b.close()

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)

			node, err := paynode.New(cfg.node, cfg.authority, b.contract, b.actor,
				paynode.WithLogger(log),
				paynode.WithMetrics(paynode.NewMetrics(reg)))
			if err != nil {
				return err
			}

			var srv *http.Server
			if cfg.metricsAddress != "" {
				srv = &http.Server{
					Addr:              cfg.metricsAddress,
					Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
					ReadHeaderTimeout: 5 * time.Second,
				}

				go func() {
					log.Info("serving metrics", zap.String("address", cfg.metricsAddress))
					if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						log.Error("metrics server failure", zap.Error(err))
					}
				}()
			}

			err = node.Start(ctx)
			if err != nil {
				return fmt.Errorf("start payment node: %w", err)
			}

			<-ctx.Done()

			node.Stop()

			if srv != nil {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				_ = srv.Shutdown(shutdownCtx)
			}

			return nil
		},
	}
}

func newRoundCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "round",
		Short: "Run a single payment round and print its report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}

			if err = cfg.requireBilling(); err != nil {
				return err
			}

			log, err := newLogger(cfg.logLevel)
			if err != nil {
				return err
			}

			defer func() { _ = log.Sync() }()

			b, err := dialBilling(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			defer b.close()

			node, err := paynode.New(cfg.node, cfg.authority, b.contract, b.actor, paynode.WithLogger(log))
			if err != nil {
				return err
			}

			r, err := node.RunRound(cmd.Context())
			if err != nil {
				return err
			}

			printReport(cmd, r)

			return nil
		},
	}
}

func printReport(cmd *cobra.Command, r paynode.Report) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "round:     %s\n", r.ID)
	fmt.Fprintf(out, "due:       %d\n", r.Due)
	fmt.Fprintf(out, "charged:   %d\n", r.Charged)
	fmt.Fprintf(out, "cancelled: %d\n", r.Cancelled)
	fmt.Fprintf(out, "skipped:   %d\n", r.Skipped)
	fmt.Fprintf(out, "failed:    %d\n", r.Failed)
}
