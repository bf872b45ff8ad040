package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/tabebui/pkg/entity"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	load   func() (*app, error)
	app    *app
	user   string
	asJSON bool
}

// resolve builds the app on first use and picks the user the command acts
// for.
func (o *rootOptions) resolve() (*app, uuid.UUID, error) {
	if o.app == nil {
		a, err := o.load()
		if err != nil {
			return nil, uuid.Nil, err
		}
		o.app = a
	}
	userID := o.app.defaultUser
	if strings.TrimSpace(o.user) != "" {
		id, err := uuid.Parse(strings.TrimSpace(o.user))
		if err != nil {
			return nil, uuid.Nil, fmt.Errorf("invalid --user %q (expected a UUID)", o.user)
		}
		userID = id
	}
	return o.app, userID, nil
}

func newRootCmd(load func() (*app, error)) *cobra.Command {
	opts := &rootOptions{load: load}
	cmd := &cobra.Command{
		Use:           "tabebui",
		Short:         "tabebui tracks which meat parts you have eaten",
		Long:          "tabebui is a gamified food log: record the beef, pork and chicken parts you eat, level up, earn badges and keep your streak.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.user, "user", "", "User ID to act for (defaults to TABEBUI_USER_ID)")
	cmd.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "Print JSON instead of text")
	cmd.AddCommand(
		newPartsCmd(opts),
		newRecordCmd(opts),
		newEditCmd(opts),
		newDeleteCmd(opts),
		newRecordsCmd(opts),
		newProgressCmd(opts),
		newStatsCmd(opts),
		newBadgesCmd(opts),
		newStreakCmd(opts),
		newLevelCmd(opts),
		newRecommendCmd(opts),
		newXPCmd(opts),
		newExportCmd(opts),
		newImportCmd(opts),
		newResetCmd(opts),
		newChatCmd(opts),
		newMigrateCmd(opts),
	)
	return cmd
}

func printJSON(w io.Writer, v any) error {
	b, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func stars(r entity.Rarity) string {
	n := r.Stars()
	return strings.Repeat("★", n) + strings.Repeat("☆", int(entity.RarityLegendary)-n)
}

func partLabel(a *app, partID string) string {
	if p, ok := a.serv.Catalog().Part(partID); ok {
		return fmt.Sprintf("%s %s", partID, p.Name)
	}
	return partID
}

func printNewBadges(w io.Writer, badges []entity.Badge) {
	for _, b := range badges {
		fmt.Fprintf(w, "Badge earned: %s (%s)\n", b.Name, b.Description)
	}
}

func printEvents(w io.Writer, a *app, events []entity.EatingEvent) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No records.")
		return
	}
	for _, e := range events {
		line := fmt.Sprintf("%s  %s  %s", e.Date, e.ID, partLabel(a, e.PartID))
		if e.Rating != nil {
			line += fmt.Sprintf("  %d/5", *e.Rating)
		}
		if e.Restaurant != "" {
			line += "  @" + e.Restaurant
		}
		if e.Memo != "" {
			line += "  " + e.Memo
		}
		fmt.Fprintln(w, line)
	}
}
