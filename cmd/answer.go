package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rushil/prepd/internal/cli"
	"github.com/rushil/prepd/internal/mastery"
	"github.com/rushil/prepd/internal/streaks"
)

var answerCmd = &cobra.Command{
	Use:   "answer <subject> <chapter> <topic>",
	Short: "Record an answered practice question",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		correct, _ := cmd.Flags().GetBool("correct")
		wrong, _ := cmd.Flags().GetBool("wrong")
		if correct == wrong {
			return fmt.Errorf("pass exactly one of --correct or --wrong")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		userID := currentUser(cmd)
		key := mastery.TopicKey{Subject: args[0], Chapter: args[1], Topic: args[2]}

		tracker := mastery.NewTracker(mastery.DefaultConfig(), st.MasteryRepo(), st.EventRepo())
		result, err := tracker.RecordAnswer(ctx, userID, key, correct)
		if err != nil {
			return err
		}

		points := streaks.NewService(st.EventRepo())
		award, err := points.RecordAnswer(ctx, userID, correct)
		if err != nil {
			return err
		}

		rec := result.Record
		if correct {
			fmt.Println(cli.Good.Render("Correct!"))
		} else {
			fmt.Println(cli.Bad.Render("Wrong."))
		}
		fmt.Printf("%s  %s, %.1f%% over %d questions\n",
			cli.LevelStyle(int(rec.Level)).Render(rec.Level.DisplayName()),
			key.Topic, rec.Accuracy, rec.QuestionsAttempted)

		if result.Message != "" {
			fmt.Println(cli.Title.Render(result.Message))
		}
		if award.Points > 0 {
			msg := fmt.Sprintf("+%d points", award.Points)
			if award.MilestoneHit {
				msg += fmt.Sprintf("  (%s)", award.Reason)
			}
			fmt.Println(cli.Hint.Render(msg))
		}
		return nil
	},
}

func init() {
	answerCmd.Flags().Bool("correct", false, "The answer was correct")
	answerCmd.Flags().Bool("wrong", false, "The answer was wrong")
}
