package main

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/tabebui/internal/error_values"
	"github.com/limbo/tabebui/internal/service"
	"github.com/spf13/cobra"
)

func parseEventID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid record id %q", raw)
	}
	return id, nil
}

func newRecordCmd(opts *rootOptions) *cobra.Command {
	var (
		date       string
		memo       string
		rating     int
		restaurant string
	)
	cmd := &cobra.Command{
		Use:   "record <part-id>",
		Short: "Record a part you ate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, userID, err := opts.resolve()
			if err != nil {
				return err
			}
			req := &service.RecordMealRequest{
				PartID:     args[0],
				Date:       date,
				Memo:       memo,
				Restaurant: restaurant,
			}
			if cmd.Flags().Changed("rating") {
				req.Rating = &rating
			}
			outcome, err := a.serv.RecordMeal(cmd.Context(), userID, req)
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
			fmt.Fprintf(out, "Recorded %s on %s (id %s)\n", partLabel(a, outcome.Event.PartID), outcome.Event.Date, outcome.Event.ID)
			if outcome.IsNewPart {
				fmt.Fprintln(out, "New part!")
			}
			fmt.Fprintf(out, "+%d XP, level %d\n", outcome.ExperienceGained, outcome.Level)
			if outcome.LevelUp {
				fmt.Fprintf(out, "Level up! You are now level %d\n", outcome.Level)
			}
			printNewBadges(out, outcome.NewBadges)
			if errors.Is(err, errorvalues.ErrStorage) {
				return fmt.Errorf("recorded but not saved: %w", err)
			}
			return err
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Date eaten (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&memo, "memo", "", "Free-form note")
	cmd.Flags().IntVar(&rating, "rating", 0, "Rating from 1 to 5")
	cmd.Flags().StringVar(&restaurant, "restaurant", "", "Where you ate it")
	return cmd
}

func newEditCmd(opts *rootOptions) *cobra.Command {
	var (
		partID      string
		date        string
		memo        string
		rating      int
		clearRating bool
		restaurant  string
	)
	cmd := &cobra.Command{
		Use:   "edit <record-id>",
		Short: "Change fields of a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eventID, err := parseEventID(args[0])
			if err != nil {
				return err
			}
			a, userID, err := opts.resolve()
			if err != nil {
				return err
			}
			req := &service.UpdateMealRequest{ClearRating: clearRating}
			flags := cmd.Flags()
			if flags.Changed("part") {
				req.PartID = &partID
			}
			if flags.Changed("date") {
				req.Date = &date
			}
			if flags.Changed("memo") {
				req.Memo = &memo
			}
			if flags.Changed("rating") {
				req.Rating = &rating
			}
			if flags.Changed("restaurant") {
				req.Restaurant = &restaurant
			}
			outcome, err := a.serv.UpdateMeal(cmd.Context(), userID, eventID, req)
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
			fmt.Fprintf(out, "Updated record %s: %s on %s\n", outcome.Event.ID, partLabel(a, outcome.Event.PartID), outcome.Event.Date)
			printNewBadges(out, outcome.NewBadges)
			return err
		},
	}
	cmd.Flags().StringVar(&partID, "part", "", "New part id")
	cmd.Flags().StringVar(&date, "date", "", "New date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&memo, "memo", "", "New note")
	cmd.Flags().IntVar(&rating, "rating", 0, "New rating from 1 to 5")
	cmd.Flags().BoolVar(&clearRating, "clear-rating", false, "Remove the rating")
	cmd.Flags().StringVar(&restaurant, "restaurant", "", "New restaurant")
	return cmd
}

func newDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <record-id>",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eventID, err := parseEventID(args[0])
			if err != nil {
				return err
			}
			a, userID, err := opts.resolve()
			if err != nil {
				return err
			}
			if err := a.serv.DeleteMeal(cmd.Context(), userID, eventID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted record %s\n", eventID)
			return nil
		},
	}
}

func newRecordsCmd(opts *rootOptions) *cobra.Command {
	var filter service.RecordsFilter
	cmd := &cobra.Command{
		Use:   "records",
		Short: "List your records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, userID, err := opts.resolve()
			if err != nil {
				return err
			}
			events, err := a.serv.Records(cmd.Context(), userID, filter)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), events)
			}
			printEvents(cmd.OutOrStdout(), a, events)
			return nil
		},
	}
	cmd.Flags().StringVar(&filter.PartID, "part", "", "Only records of this part")
	cmd.Flags().StringVar(&filter.From, "from", "", "First date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&filter.To, "to", "", "Last date (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&filter.Today, "today", false, "Only today's records")
	cmd.Flags().BoolVar(&filter.ThisMonth, "month", false, "Only this month's records")
	return cmd
}
