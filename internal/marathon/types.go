package marathon

import "time"

// DateFormat is the civil date layout used throughout the domain model.
// Schedule dates coming back from the oracle are carried as opaque strings
// and are not re-parsed against this layout.
const DateFormat = "2006-01-02"

// Phase names a sub-range of the marathon span aimed at a specific audience,
// e.g. "family week" leading into "adults-only finale".
type Phase struct {
	Name      string `json:"name"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	Audience  string `json:"audience,omitempty"`
}

// Preferences captures the user's free-form wishes for a marathon. Dates are
// optional; the planner fills them in before any oracle call.
type Preferences struct {
	Occasion    string   `json:"occasion"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	Phases      []Phase  `json:"phases,omitempty"`
	Vibes       []string `json:"vibes,omitempty"`
	DrinkPrefs  []string `json:"drinkPrefs,omitempty"`
	MustInclude string   `json:"mustInclude,omitempty"`
	Avoid       string   `json:"avoid,omitempty"`
	Notes       string   `json:"notes,omitempty"`
}

// DrinkOption is a single drink suggestion attached to a schedule entry.
type DrinkOption struct {
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Ingredients  []string `json:"ingredients,omitempty"`
	Instructions string   `json:"instructions,omitempty"`
	Description  string   `json:"description,omitempty"`
	Vibe         string   `json:"vibe,omitempty"`
}

// Drink type values the enrichment prompt asks the oracle to choose from.
const (
	DrinkTypeCocktail     = "cocktail"
	DrinkTypeWineBeer     = "wine-beer"
	DrinkTypeNonAlcoholic = "non-alcoholic"
)

// FoodOption is the optional snack suggestion attached to a schedule entry.
type FoodOption struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Difficulty  string `json:"difficulty,omitempty"`
}

// Food difficulty values the enrichment prompt asks the oracle to choose from.
const (
	FoodDifficultyEasy   = "easy"
	FoodDifficultyMedium = "medium"
	FoodDifficultyFancy  = "fancy"
)

// PairingSet holds the drink and food suggestions for one scheduled night.
// Drinks is never nil on an assembled marathon; Food may be nil when
// enrichment failed or the oracle skipped it.
type PairingSet struct {
	Drinks []DrinkOption `json:"drinks"`
	Food   *FoodOption   `json:"food,omitempty"`
}

// ScheduleEntry assigns one library movie to one night of the marathon.
// MovieID always references an entry in the supplied library index; the
// selector drops anything else before the entry reaches a caller.
type ScheduleEntry struct {
	MovieID  string     `json:"movieId"`
	Date     string     `json:"date"`
	Phase    string     `json:"phase,omitempty"`
	Reason   string     `json:"aiReason,omitempty"`
	Pairings PairingSet `json:"pairings"`
}

// Marathon is the aggregate handed back to the caller. Identity and
// timestamps are assigned exactly once, at assembly.
type Marathon struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Holiday   string          `json:"holiday"`
	StartDate string          `json:"startDate"`
	EndDate   string          `json:"endDate"`
	Entries   []ScheduleEntry `json:"entries"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
