package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/randalmurphal/llmconf/store"
)

func watchCmd(a *app) *cobra.Command {
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow the settings file and report reloads",
		Long: `Watch the settings file and reload it on every change, printing a line
per reload. With --metrics-addr, resolution counters are served at /metrics.

Runs until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.file == nil {
				return errors.New("watch needs a settings file; it cannot follow --sqlite")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			err := store.Watch(ctx, a.file, a.svc, func(err error) {
				if err != nil {
					fmt.Fprintf(out, "reload failed: %v\n", err)
					return
				}
				fmt.Fprintf(out, "reloaded %s (%d prompts, %d cost overrides)\n",
					a.file.Path(), len(a.svc.CustomPrompts()), len(a.svc.InputCosts()))
			})
			if err != nil {
				return err
			}

			if metricsAddr != "" {
				srv := &http.Server{
					Addr:              metricsAddr,
					Handler:           promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}),
					ReadHeaderTimeout: 5 * time.Second,
				}
				go func() {
					if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						fmt.Fprintf(out, "metrics server: %v\n", err)
					}
				}()
				defer func() {
					shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()
					srv.Shutdown(shutdownCtx)
				}()
			}

			fmt.Fprintf(out, "watching %s\n", a.file.Path())
			<-ctx.Done()
			return nil
		},
	}
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")

	return cmd
}
