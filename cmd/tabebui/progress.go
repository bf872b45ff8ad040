package main

import (
	"fmt"
	"io"
	"time"

	"github.com/limbo/tabebui/internal/tracker"
	"github.com/limbo/tabebui/pkg/entity"
	"github.com/spf13/cobra"
)

func newProgressCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "progress [animal]",
		Short: "Show completion per animal or overall",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, userID, err := opts.resolve()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				animal := entity.AnimalType(args[0])
				stats, err := a.serv.AnimalStats(cmd.Context(), userID, animal)
				if err != nil {
					return err
				}
				if opts.asJSON {
					return printJSON(out, stats)
				}
				printAnimalStats(out, animal, stats)
				return nil
			}
			stats, err := a.serv.OverallStats(cmd.Context(), userID)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return printJSON(out, stats)
			}
			for _, animal := range a.serv.Catalog().AnimalTypes() {
				printAnimalStats(out, animal, stats.Animals[animal])
			}
			fmt.Fprintf(out, "%-8s %3d/%-3d %3d%%\n", "total", stats.Eaten, stats.Total, stats.CompletionRate)
			return nil
		},
	}
}

func printAnimalStats(w io.Writer, animal entity.AnimalType, s entity.AnimalStats) {
	fmt.Fprintf(w, "%-8s %3d/%-3d %3d%%  (%d to go)\n", animal, s.Eaten, s.Total, s.CompletionRate, s.Remaining)
}

func newStatsCmd(opts *rootOptions) *cobra.Command {
	var (
		year  int
		month int
	)
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show statistics for one calendar month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, userID, err := opts.resolve()
			if err != nil {
				return err
			}
			now := time.Now().In(a.cfg.Location())
			if !cmd.Flags().Changed("year") {
				year = now.Year()
			}
			if !cmd.Flags().Changed("month") {
				month = int(now.Month())
			}
			if month < 1 || month > 12 {
				return fmt.Errorf("invalid --month %d", month)
			}
			stats, err := a.serv.MonthlyStats(cmd.Context(), userID, year, time.Month(month))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if opts.asJSON {
				return printJSON(out, stats)
			}
			fmt.Fprintf(out, "%s .. %s\n", stats.From, stats.To)
			fmt.Fprintf(out, "records: %d, unique parts: %d, average rating: %.2f\n",
				stats.RecordCount, stats.UniquePartCount, stats.AverageRating)
			for i, r := range stats.TopRated {
				fmt.Fprintf(out, "%d. %s  %.2f (%d records)\n", i+1, partLabel(a, r.PartID), r.AverageRating, r.RecordCount)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "Year (default current)")
	cmd.Flags().IntVar(&month, "month", 0, "Month 1-12 (default current)")
	return cmd
}

func newBadgesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "badges",
		Short: "List all badges and which ones you have earned",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, userID, err := opts.resolve()
			if err != nil {
				return err
			}
			views, err := a.serv.Badges(cmd.Context(), userID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if opts.asJSON {
				return printJSON(out, views)
			}
			for _, v := range views {
				mark := "[ ]"
				if v.Earned {
					mark = "[x]"
				}
				fmt.Fprintf(out, "%s %-20s %s: %s\n", mark, v.ID, v.Name, v.Description)
			}
			return nil
		},
	}
}

func newStreakCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "streak",
		Short: "Show how many consecutive days you have recorded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, userID, err := opts.resolve()
			if err != nil {
				return err
			}
			p, err := a.serv.Progression(cmd.Context(), userID)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), map[string]int{"streak_days": p.StreakDays})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d day streak\n", p.StreakDays)
			return nil
		},
	}
}

func newLevelCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "level",
		Short: "Show level and experience",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, userID, err := opts.resolve()
			if err != nil {
				return err
			}
			p, err := a.serv.Progression(cmd.Context(), userID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if opts.asJSON {
				return printJSON(out, p)
			}
			fmt.Fprintf(out, "level %d, %d XP (%d/100 into this level, %d to next)\n",
				p.Level, p.Experience, p.CurrentLevelProgress, p.ExperienceToNextLevel)
			fmt.Fprintf(out, "%d day streak, %d badges\n", p.StreakDays, len(p.Badges))
			return nil
		},
	}
}

func newRecommendCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "recommend",
		Short: "Suggest the rarest part you have not eaten yet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, userID, err := opts.resolve()
			if err != nil {
				return err
			}
			part, ok, err := a.serv.Recommend(cmd.Context(), userID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if opts.asJSON {
				if !ok {
					return printJSON(out, nil)
				}
				return printJSON(out, part)
			}
			if !ok {
				fmt.Fprintln(out, "You have eaten every part. Nothing left to recommend.")
				return nil
			}
			fmt.Fprintf(out, "Try %s %s (%s, %s %s)\n", part.ID, part.Name, part.Animal, stars(part.Rarity), part.Rarity)
			if part.Description != "" {
				fmt.Fprintln(out, part.Description)
			}
			return nil
		},
	}
}

func newXPCmd(opts *rootOptions) *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:       "xp <action>",
		Short:     "Award experience for an action such as daily_login or streak_bonus",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(tracker.ActionDailyLogin), string(tracker.ActionStreakBonus)},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, userID, err := opts.resolve()
			if err != nil {
				return err
			}
			outcome, err := a.serv.AwardAction(cmd.Context(), userID, tracker.ExperienceAction(args[0]), days)
			if outcome == nil {
				return err
			}
			out := cmd.OutOrStdout()
			if opts.asJSON {
				if jsonErr := printJSON(out, outcome); jsonErr != nil {
					return jsonErr
				}
				return err
			}
			fmt.Fprintf(out, "+%d XP for %s, level %d\n", outcome.ExperienceGained, outcome.Action, outcome.Level)
			if outcome.LevelUp {
				fmt.Fprintf(out, "Level up! You are now level %d\n", outcome.Level)
			}
			printNewBadges(out, outcome.NewBadges)
			return err
		},
	}
	cmd.Flags().IntVar(&days, "days", 0, "Streak length for streak_bonus")
	return cmd
}
