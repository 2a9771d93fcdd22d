package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/financeassistant/authform/internal/infrastructure/config"
	"github.com/financeassistant/authform/pkg/logger"
)

var errNotSignedIn = errors.New("not signed in")

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the identity saved by the last successful sign-in or sign-up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			cfg, err := config.LoadClient(ctx)
			if err != nil {
				return err
			}
			logger.Init(logger.Options{
				Level:     cfg.LogLevel,
				Pretty:    cfg.IsDevelopment(),
				Component: "whoami",
			})

			store, closeStore, err := newIdentityStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			id, ok, err := store.Load(ctx)
			if err != nil {
				return err
			}
			if !ok {
				return errNotSignedIn
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", id.Email, id.ID)
			return nil
		},
	}
}
