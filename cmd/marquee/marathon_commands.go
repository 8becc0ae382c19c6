package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"marquee/internal/config"
	"marquee/internal/marathonstore"
)

func newMarathonCommand(ctx *commandContext) *cobra.Command {
	marathonCmd := &cobra.Command{
		Use:   "marathon",
		Short: "Manage stored marathons",
	}

	marathonCmd.AddCommand(newMarathonListCommand(ctx))
	marathonCmd.AddCommand(newMarathonShowCommand(ctx))
	marathonCmd.AddCommand(newMarathonRemoveCommand(ctx))
	marathonCmd.AddCommand(newMarathonExportCommand(ctx))

	return marathonCmd
}

func newMarathonListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored marathons, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			summaries, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, summaries)
			}
			if len(summaries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No marathons stored")
				return nil
			}
			rows := make([][]string, 0, len(summaries))
			for _, summary := range summaries {
				rows = append(rows, []string{
					summary.ID,
					summary.Name,
					summary.Holiday,
					summary.StartDate + " to " + summary.EndDate,
					strconv.Itoa(summary.EntryCount),
				})
			}
			writeRows(cmd.OutOrStdout(),
				[]string{"ID", "Name", "Holiday", "Span", "Nights"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight})
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit summaries as JSON")
	return cmd
}

func newMarathonShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a stored marathon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			m, err := store.Get(cmd.Context(), args[0])
			if err != nil {
				if errors.Is(err, marathonstore.ErrNotFound) {
					return fmt.Errorf("marathon %s not found", args[0])
				}
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, m)
			}
			// Titles resolve only when the index is still readable.
			idx, _ := ctx.loadLibrary("")
			printMarathon(cmd, m, idx)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the marathon as JSON")
	return cmd
}

func newMarathonRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a stored marathon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Delete(cmd.Context(), args[0]); err != nil {
				if errors.Is(err, marathonstore.ErrNotFound) {
					return fmt.Errorf("marathon %s not found", args[0])
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed marathon %s\n", args[0])
			return nil
		},
	}
}

func newMarathonExportCommand(ctx *commandContext) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Export a stored marathon as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			m, err := store.Get(cmd.Context(), args[0])
			if err != nil {
				if errors.Is(err, marathonstore.ErrNotFound) {
					return fmt.Errorf("marathon %s not found", args[0])
				}
				return err
			}
			if outputPath == "" {
				return writeJSON(cmd, m)
			}
			expanded, err := config.ExpandPath(outputPath)
			if err != nil {
				return err
			}
			file, err := os.Create(expanded)
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			defer file.Close()
			enc := newIndentedEncoder(file)
			if err := enc.Encode(m); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported marathon %s to %s\n", args[0], expanded)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write to a file instead of stdout")
	return cmd
}
