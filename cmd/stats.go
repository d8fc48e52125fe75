package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/rushil/prepd/internal/cli"
	"github.com/rushil/prepd/internal/mastery"
	"github.com/rushil/prepd/internal/streaks"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show mastery levels, points, and streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		userID := currentUser(cmd)

		tracker := mastery.NewTracker(mastery.DefaultConfig(), st.MasteryRepo(), st.EventRepo())
		records, err := tracker.ForUser(ctx, userID)
		if err != nil {
			return err
		}

		summary, err := streaks.NewService(st.EventRepo()).Summarize(ctx, userID)
		if err != nil {
			return err
		}

		fmt.Println(cli.Card.Render(fmt.Sprintf("%s\n%s",
			cli.Title.Render(fmt.Sprintf("%d points", summary.TotalPoints)),
			cli.Subtitle.Render(fmt.Sprintf("Streak %d, next bonus at %d",
				summary.CurrentStreak, summary.NextMilestone)))))

		if len(records) == 0 {
			fmt.Println(cli.Hint.Render("\nNo topics practiced yet."))
			return nil
		}

		sort.Slice(records, func(i, j int) bool {
			if records[i].Level != records[j].Level {
				return records[i].Level > records[j].Level
			}
			return records[i].Key.String() < records[j].Key.String()
		})

		rows := make([][]string, len(records))
		for i, rec := range records {
			stuck := ""
			if rec.IsStuck(mastery.DefaultConfig()) {
				stuck = cli.Bad.Render("stuck")
			}
			rows[i] = []string{
				cli.LevelStyle(int(rec.Level)).Render(rec.Level.DisplayName()),
				rec.Key.Subject,
				rec.Key.Chapter,
				rec.Key.Topic,
				fmt.Sprintf("%.0f%%", rec.Accuracy),
				fmt.Sprintf("%d", rec.QuestionsAttempted),
				stuck,
			}
		}
		fmt.Println()
		fmt.Print(cli.Table([]string{"Level", "Subject", "Chapter", "Topic", "Accuracy", "Attempts", ""}, rows))
		return nil
	},
}
