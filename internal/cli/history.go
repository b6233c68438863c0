package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"rodrierr/internal/history"
)

func historyCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect or reset the terminal search history",
	}
	cmd.AddCommand(historyListCmd(configPath), historyClearCmd(configPath))
	return cmd
}

func historyListCmd(configPath *string) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the history, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath, toWriter(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			defer a.Close()

			mgr, err := a.openHistory()
			if err != nil {
				return err
			}
			entries := mgr.Entries()

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := history.Encode(entries)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}
			if len(entries) == 0 {
				fmt.Fprintln(out, "No searches yet")
				return nil
			}
			for i, q := range entries {
				fmt.Fprintf(out, "%3d  %s\n", i+1, q)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the stored JSON array")
	return cmd
}

func historyClearCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every history entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath, toWriter(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			defer a.Close()

			mgr, err := a.openHistory()
			if err != nil {
				return err
			}
			n := mgr.Len()
			if err := mgr.Clear(); err != nil {
				return fmt.Errorf("clear history: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d entries\n", n)
			return nil
		},
	}
}
