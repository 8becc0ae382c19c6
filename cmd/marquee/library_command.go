package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newLibraryCommand(ctx *commandContext) *cobra.Command {
	var (
		libraryPath string
		jsonOutput  bool
	)

	cmd := &cobra.Command{
		Use:   "library",
		Short: "Summarize the movie library index",
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := ctx.loadLibrary(libraryPath)
			if err != nil {
				return err
			}
			entries := idx.Entries()
			if jsonOutput {
				return writeJSON(cmd, entries)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d movies in library\n\n", len(entries))
			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				rows = append(rows, []string{
					entry.ID,
					entry.Title,
					strconv.Itoa(entry.Year),
					strings.Join(entry.Genres, ", "),
					entry.ContentRating,
					formatRuntime(entry.Runtime),
				})
			}
			writeRows(cmd.OutOrStdout(),
				[]string{"ID", "Title", "Year", "Genres", "Rating", "Runtime"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignLeft, alignRight})
			return nil
		},
	}

	cmd.Flags().StringVar(&libraryPath, "library", "", "Path to the library index (defaults to paths.library_index)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit entries as JSON")
	return cmd
}

func formatRuntime(minutes int) string {
	if minutes <= 0 {
		return "-"
	}
	return fmt.Sprintf("%dm", minutes)
}
