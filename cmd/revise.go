package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rushil/prepd/internal/cli"
	"github.com/rushil/prepd/internal/mastery"
	"github.com/rushil/prepd/internal/revision"
)

var reviseCmd = &cobra.Command{
	Use:   "revise",
	Short: "Show the revision queue, or mark a topic reviewed",
	Long:  "Lists topics due for revision, most urgent first. With --done, records a finished review for one topic instead.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		userID := currentUser(cmd)
		tracker := mastery.NewTracker(mastery.DefaultConfig(), st.MasteryRepo(), st.EventRepo())

		if done, _ := cmd.Flags().GetBool("done"); done {
			if len(args) != 3 {
				return fmt.Errorf("usage: prepd revise --done <subject> <chapter> <topic>")
			}
			key := mastery.TopicKey{Subject: args[0], Chapter: args[1], Topic: args[2]}
			rec, err := tracker.MarkReviewed(ctx, userID, key)
			if err != nil {
				return err
			}
			fmt.Printf("Reviewed %s (%d reviews so far)\n", key.Topic, rec.ReviewCount)
			return nil
		}

		records, err := tracker.ForUser(ctx, userID)
		if err != nil {
			return err
		}

		sched := revision.NewScheduler()
		var items []revision.Item
		if all, _ := cmd.Flags().GetBool("all"); all {
			items = sched.Schedule(records)
		} else {
			items = sched.DueToday(records)
		}
		if len(items) == 0 {
			fmt.Println(cli.Hint.Render("Nothing due. Nice."))
			return nil
		}

		rows := make([][]string, len(items))
		for i, item := range items {
			rows[i] = []string{
				cli.UrgencyStyle(item.Urgency.String()).Render(item.Urgency.String()),
				item.Key.Subject,
				item.Key.Chapter,
				item.Key.Topic,
				fmt.Sprintf("%.0f%%", item.Retention),
				fmt.Sprintf("%.0fd ago", item.DaysSince),
			}
		}
		fmt.Print(cli.Table([]string{"Urgency", "Subject", "Chapter", "Topic", "Retention", "Reviewed"}, rows))
		return nil
	},
}

func init() {
	reviseCmd.Flags().Bool("done", false, "Mark a topic's review as completed")
	reviseCmd.Flags().Bool("all", false, "Show the full queue, not just today's")
}
