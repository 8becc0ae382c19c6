package planner

import (
	"fmt"
	"strings"

	"marquee/internal/library"
)

func buildPairingPrompt(movie library.Entry, occasion, drinkPrefs string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a drink and snack pairing expert for movie nights. Suggest pairings for one screening of %q (%d)", movie.Title, movie.Year)
	if len(movie.Genres) > 0 {
		fmt.Fprintf(&b, ", genres: %s", strings.Join(movie.Genres, ", "))
	}
	b.WriteString(".\n")
	if movie.Summary != "" {
		fmt.Fprintf(&b, "Plot: %s\n", movie.Summary)
	}
	fmt.Fprintf(&b, "\nOccasion: %s\n", orDefault(occasion, "movie night"))
	fmt.Fprintf(&b, "Drink preferences: %s\n", drinkPrefs)
	b.WriteString(`
Suggest 2-3 drinks that match both the movie and the drink preferences, and one optional themed snack.

Respond with ONLY a JSON object, no other text, shaped exactly like:
{"drinks": [{"name": "drink name", "type": "cocktail|wine-beer|non-alcoholic", "ingredients": ["..."], "instructions": "how to make it", "description": "why it fits", "vibe": "one or two words"}], "food": {"name": "snack name", "description": "why it fits", "difficulty": "easy|medium|fancy"}}
`)
	return b.String()
}

// drinkPreferenceList flattens the preference drink tags for the prompt,
// defaulting to "varied" when the user expressed none.
func drinkPreferenceList(tags []string) string {
	kept := make([]string, 0, len(tags))
	for _, tag := range tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	if len(kept) == 0 {
		return "varied"
	}
	return strings.Join(kept, ", ")
}
