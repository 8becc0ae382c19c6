package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"marquee/internal/config"
	"marquee/internal/marathon"
	"marquee/internal/planner"
	"marquee/internal/services/oracle"
)

func newPlanCommand(ctx *commandContext) *cobra.Command {
	var (
		prefsPath   string
		libraryPath string
		apiKey      string
		occasion    string
		startDate   string
		endDate     string
		vibes       []string
		drinks      []string
		mustInclude string
		avoid       string
		notes       string
		save        bool
		jsonOutput  bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a marathon schedule with pairings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			prefs, err := resolvePreferences(prefsPath, marathon.Preferences{
				Occasion:    occasion,
				StartDate:   startDate,
				EndDate:     endDate,
				Vibes:       vibes,
				DrinkPrefs:  drinks,
				MustInclude: mustInclude,
				Avoid:       avoid,
				Notes:       notes,
			})
			if err != nil {
				return err
			}

			idx, err := ctx.loadLibrary(libraryPath)
			if err != nil {
				return err
			}

			// One generation at a time per data dir; concurrent runs would
			// double-spend the oracle quota for no benefit.
			lock := flock.New(filepath.Join(cfg.Paths.DataDir, "plan.lock"))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire plan lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another marquee plan run is already in progress")
			}
			defer func() { _ = lock.Unlock() }()

			oracleCfg := cfg.GetOracle()
			factory := oracle.NewFactory(oracle.Config{
				APIKey:         oracleCfg.APIKey,
				BaseURL:        oracleCfg.BaseURL,
				Model:          oracleCfg.Model,
				TimeoutSeconds: oracleCfg.TimeoutSeconds,
			})
			generator := planner.NewGenerator(factory, ctx.logger())

			result, err := generator.Generate(cmd.Context(), planner.Request{
				Preferences: prefs,
				Library:     idx,
				Credential:  apiKey,
			})
			if err != nil {
				return fmt.Errorf("generate marathon: %w", err)
			}

			if save {
				store, err := ctx.openStore()
				if err != nil {
					return err
				}
				defer store.Close()
				if err := store.Save(cmd.Context(), result); err != nil {
					return err
				}
			}

			if jsonOutput {
				return writeJSON(cmd, result)
			}
			printMarathon(cmd, result, idx)
			if save {
				fmt.Fprintf(cmd.OutOrStdout(), "\nSaved marathon %s\n", result.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&prefsPath, "prefs", "", "Path to a JSON preferences file")
	cmd.Flags().StringVar(&libraryPath, "library", "", "Path to the library index (defaults to paths.library_index)")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "Oracle API key override for this run")
	cmd.Flags().StringVar(&occasion, "occasion", "", "Occasion tag, e.g. christmas or halloween")
	cmd.Flags().StringVar(&startDate, "start", "", "Start date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVar(&endDate, "end", "", "End date (YYYY-MM-DD, defaults to start plus 7 days)")
	cmd.Flags().StringSliceVar(&vibes, "vibe", nil, "Desired vibe tags (repeatable)")
	cmd.Flags().StringSliceVar(&drinks, "drink", nil, "Drink preference tags (repeatable)")
	cmd.Flags().StringVar(&mustInclude, "must-include", "", "Free-text movies or themes to include")
	cmd.Flags().StringVar(&avoid, "avoid", "", "Free-text movies or themes to avoid")
	cmd.Flags().StringVar(&notes, "notes", "", "Additional free-text notes for the planner")
	cmd.Flags().BoolVar(&save, "save", false, "Persist the generated marathon")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the marathon as JSON")
	return cmd
}

// resolvePreferences loads preferences from a JSON file when given, with any
// explicitly set flag values layered on top.
func resolvePreferences(path string, flags marathon.Preferences) (marathon.Preferences, error) {
	prefs := flags
	if strings.TrimSpace(path) != "" {
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return prefs, err
		}
		data, err := os.ReadFile(expanded)
		if err != nil {
			return prefs, fmt.Errorf("read preferences: %w", err)
		}
		var fromFile marathon.Preferences
		if err := json.Unmarshal(data, &fromFile); err != nil {
			return prefs, fmt.Errorf("parse preferences: %w", err)
		}
		prefs = mergePreferences(fromFile, flags)
	}
	return prefs, nil
}

func mergePreferences(base, override marathon.Preferences) marathon.Preferences {
	if override.Occasion != "" {
		base.Occasion = override.Occasion
	}
	if override.StartDate != "" {
		base.StartDate = override.StartDate
	}
	if override.EndDate != "" {
		base.EndDate = override.EndDate
	}
	if len(override.Vibes) > 0 {
		base.Vibes = override.Vibes
	}
	if len(override.DrinkPrefs) > 0 {
		base.DrinkPrefs = override.DrinkPrefs
	}
	if override.MustInclude != "" {
		base.MustInclude = override.MustInclude
	}
	if override.Avoid != "" {
		base.Avoid = override.Avoid
	}
	if override.Notes != "" {
		base.Notes = override.Notes
	}
	return base
}
