package planner

import (
	"encoding/json"
	"fmt"
	"strings"

	"marquee/internal/library"
	"marquee/internal/marathon"
)

// moviePick is the minimized library projection sent with the schedule
// selection prompt. Keeping it small leaves token budget for the answer.
type moviePick struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Year          int    `json:"year,omitempty"`
	ContentRating string `json:"contentRating,omitempty"`
}

func buildSchedulePrompt(prefs marathon.Preferences, entries []library.Entry, target int) string {
	picks := make([]moviePick, 0, len(entries))
	for _, entry := range entries {
		picks = append(picks, moviePick{
			ID:            entry.ID,
			Title:         entry.Title,
			Year:          entry.Year,
			ContentRating: entry.ContentRating,
		})
	}
	catalog, _ := json.Marshal(picks)

	var b strings.Builder
	fmt.Fprintf(&b, "You are a movie marathon planner. Build a %s marathon schedule from %s to %s using ONLY movies from the library below.\n\n",
		orDefault(prefs.Occasion, "movie night"), prefs.StartDate, prefs.EndDate)
	fmt.Fprintf(&b, "Library (pick movies by their exact id):\n%s\n\n", catalog)
	fmt.Fprintf(&b, "Schedule exactly %d movies, one per day, covering the date range in order.\n", target)

	if len(prefs.Phases) > 0 {
		b.WriteString("\nThe marathon has phases; assign each scheduled movie the phase whose date range contains it and match its audience:\n")
		for _, phase := range prefs.Phases {
			fmt.Fprintf(&b, "- %q", phase.Name)
			if phase.StartDate != "" || phase.EndDate != "" {
				fmt.Fprintf(&b, " (%s to %s)", phase.StartDate, phase.EndDate)
			}
			if phase.Audience != "" {
				fmt.Fprintf(&b, " audience: %s", phase.Audience)
			}
			b.WriteByte('\n')
		}
	}
	if len(prefs.Vibes) > 0 {
		fmt.Fprintf(&b, "\nDesired vibes: %s\n", strings.Join(prefs.Vibes, ", "))
	}
	if prefs.MustInclude != "" {
		fmt.Fprintf(&b, "Must include: %s\n", prefs.MustInclude)
	}
	if prefs.Avoid != "" {
		fmt.Fprintf(&b, "Avoid: %s\n", prefs.Avoid)
	}
	if prefs.Notes != "" {
		fmt.Fprintf(&b, "Additional notes: %s\n", prefs.Notes)
	}

	b.WriteString("\nIf the occasion is tied to a holiday, schedule holiday-themed movies on or before the holiday date and save the rest for afterwards.\n")
	b.WriteString("\nRespond with ONLY a JSON object, no other text, shaped exactly like:\n")
	b.WriteString(`{"name": "marathon name", "holidayTag": "christmas", "entries": [{"movieId": "id from the library", "date": "YYYY-MM-DD", "phase": "optional phase name", "aiReason": "one sentence on why this movie on this night"}]}`)
	b.WriteByte('\n')
	return b.String()
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
