package planner

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"marquee/internal/marathon"
)

// defaultHoliday tags marathons whose occasion maps to no known holiday.
const defaultHoliday = "custom"

// assemble merges the selection metadata with the enriched entries into the
// final aggregate. Identity and timestamps are assigned here, exactly once.
func assemble(sel selection, entries []marathon.ScheduleEntry, prefs marathon.Preferences, now time.Time) *marathon.Marathon {
	name := strings.TrimSpace(sel.Name)
	if name == "" {
		name = defaultMarathonName(prefs.Occasion)
	}
	holiday := strings.TrimSpace(sel.Holiday)
	if holiday == "" {
		holiday = defaultHoliday
	}

	created := now.UTC()
	return &marathon.Marathon{
		ID:        uuid.NewString(),
		Name:      name,
		Holiday:   holiday,
		StartDate: prefs.StartDate,
		EndDate:   prefs.EndDate,
		Entries:   entries,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func defaultMarathonName(occasion string) string {
	occasion = strings.TrimSpace(occasion)
	if occasion == "" {
		return "Movie Marathon"
	}
	return cases.Title(language.Und).String(occasion) + " Marathon"
}
