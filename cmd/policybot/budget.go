package main

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/davidbz/policybot/internal/domain"
)

func newBudgetCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Inspect and provision monthly budget windows",
	}
	cmd.PersistentFlags().StringVar(&month, "month", "", "budget month as YYYY-MM (default: current month)")

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show spend against limits",
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := resolveMonth(month)
			if err != nil {
				return err
			}

			return withBudgetAdmin(func(admin domain.BudgetAdmin) error {
				windows, err := admin.GetWindows(cmd.Context(), key)
				if err != nil {
					return err
				}
				return printWindows(cmd, key, windows)
			})
		},
	}

	setCmd := &cobra.Command{
		Use:   "set <backend> <limit>",
		Short: "Set the monthly limit of a paid backend, keeping its spend",
		Args:  cobra.ExactArgs(2), //nolint:mnd // backend and limit
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := resolveMonth(month)
			if err != nil {
				return err
			}

			backend, limit, err := parseLimit(args[0], args[1])
			if err != nil {
				return err
			}

			return withBudgetAdmin(func(admin domain.BudgetAdmin) error {
				if err := admin.SetLimit(cmd.Context(), backend, key, limit); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s limit set to $%.2f\n", backend, key, limit)
				return nil
			})
		},
	}

	cmd.AddCommand(statusCmd, setCmd)
	return cmd
}

func withBudgetAdmin(fn func(domain.BudgetAdmin) error) error {
	container, err := buildContainer()
	if err != nil {
		return err
	}

	return container.Invoke(func(admin domain.BudgetAdmin, c *closers) error {
		defer func() { _ = c.Close() }()
		return fn(admin)
	})
}

func resolveMonth(month string) (string, error) {
	if month == "" {
		return domain.MonthKey(time.Now()), nil
	}
	if _, err := time.Parse("2006-01", month); err != nil {
		return "", fmt.Errorf("%w: month must be YYYY-MM, got %q", domain.ErrValidation, month)
	}
	return month, nil
}

func parseLimit(backendArg, limitArg string) (domain.BackendID, float64, error) {
	backend := domain.BackendID(backendArg)
	if backend != domain.BackendOpenAI && backend != domain.BackendAnthropic {
		return "", 0, fmt.Errorf("%w: %q is not a paid backend", domain.ErrValidation, backendArg)
	}

	limit, err := strconv.ParseFloat(limitArg, 64)
	if err != nil || limit < 0 {
		return "", 0, fmt.Errorf("%w: limit must be a non-negative amount, got %q", domain.ErrValidation, limitArg)
	}

	return backend, limit, nil
}

func printWindows(cmd *cobra.Command, month string, windows map[domain.BackendID]domain.BudgetWindow) error {
	out := cmd.OutOrStdout()
	if len(windows) == 0 {
		fmt.Fprintf(out, "No budget windows for %s.\n", month)
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0) //nolint:mnd // column padding
	fmt.Fprintln(w, "BACKEND\tMONTH\tLIMIT\tSPEND\tREMAINING\tOPEN")
	for _, id := range slices.Sorted(maps.Keys(windows)) {
		win := windows[id]
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.4f\t%.4f\t%t\n",
			id, win.Month, win.Limit, win.Spend, win.Remaining(), win.HasRoom())
	}
	return w.Flush()
}

