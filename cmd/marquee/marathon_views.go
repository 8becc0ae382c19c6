package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"marquee/internal/library"
	"marquee/internal/marathon"
)

// printMarathon renders a marathon's schedule followed by the pairing
// details for each night. idx may be nil; movie ids are shown verbatim then.
func printMarathon(cmd *cobra.Command, m *marathon.Marathon, idx *library.Index) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", m.Name, m.Holiday)
	fmt.Fprintf(out, "%s to %s, %d nights\n\n", m.StartDate, m.EndDate, len(m.Entries))

	rows := make([][]string, 0, len(m.Entries))
	for _, entry := range m.Entries {
		rows = append(rows, []string{
			entry.Date,
			movieLabel(idx, entry.MovieID),
			entry.Phase,
			firstDrinkName(entry.Pairings),
		})
	}
	writeRows(out, []string{"Date", "Movie", "Phase", "Drink"}, rows, nil)

	for _, entry := range m.Entries {
		if len(entry.Pairings.Drinks) == 0 && entry.Pairings.Food == nil {
			continue
		}
		fmt.Fprintf(out, "\n%s - %s\n", entry.Date, movieLabel(idx, entry.MovieID))
		if entry.Reason != "" {
			fmt.Fprintf(out, "  %s\n", entry.Reason)
		}
		for _, drink := range entry.Pairings.Drinks {
			fmt.Fprintf(out, "  Drink: %s (%s)", drink.Name, drink.Type)
			if drink.Description != "" {
				fmt.Fprintf(out, " - %s", drink.Description)
			}
			fmt.Fprintln(out)
			if len(drink.Ingredients) > 0 {
				fmt.Fprintf(out, "    Ingredients: %s\n", strings.Join(drink.Ingredients, ", "))
			}
			if drink.Instructions != "" {
				fmt.Fprintf(out, "    %s\n", drink.Instructions)
			}
		}
		if food := entry.Pairings.Food; food != nil {
			fmt.Fprintf(out, "  Food: %s", food.Name)
			if food.Difficulty != "" {
				fmt.Fprintf(out, " (%s)", food.Difficulty)
			}
			if food.Description != "" {
				fmt.Fprintf(out, " - %s", food.Description)
			}
			fmt.Fprintln(out)
		}
	}
}

func movieLabel(idx *library.Index, movieID string) string {
	if idx != nil {
		if entry, ok := idx.ByID(movieID); ok {
			if entry.Year > 0 {
				return fmt.Sprintf("%s (%d)", entry.Title, entry.Year)
			}
			return entry.Title
		}
	}
	return movieID
}

func firstDrinkName(pairings marathon.PairingSet) string {
	if len(pairings.Drinks) == 0 {
		return "-"
	}
	return pairings.Drinks[0].Name
}
