package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davidbz/policybot/internal/domain"
)

func newReferenceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reference",
		Short: "Manage cached reference pages",
	}

	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Fetch every policy page from the wiki into the cache",
		RunE: func(cmd *cobra.Command, _ []string) error {
			container, err := buildContainer()
			if err != nil {
				return err
			}

			return container.Invoke(func(source domain.ReferenceSource, c *closers) error {
				defer func() { _ = c.Close() }()

				synced, err := source.Sync(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "synced %d pages\n", synced)
				return nil
			})
		},
	}

	cmd.AddCommand(syncCmd)
	return cmd
}
