package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rushil/prepd/internal/cli"
	"github.com/rushil/prepd/internal/reminder"
	"github.com/rushil/prepd/internal/revision"
)

// terminalNotifier prints due revisions to stdout.
type terminalNotifier struct{}

func (terminalNotifier) NotifyDueRevisions(userID string, items []revision.Item) error {
	fmt.Println(cli.Title.Render(fmt.Sprintf("%d topics due for revision:", len(items))))
	for _, item := range items {
		fmt.Printf("  %s  %s / %s / %s\n",
			cli.UrgencyStyle(item.Urgency.String()).Render(item.Urgency.String()),
			item.Key.Subject, item.Key.Chapter, item.Key.Topic)
	}
	return nil
}

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Run the daily revision reminder",
	Long:  "With --now, checks once and exits. Otherwise stays in the foreground and fires a reminder every day at the configured hour.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		userID := currentUser(cmd)
		svc := reminder.New(st.MasteryRepo(), revision.NewScheduler(), terminalNotifier{})

		if now, _ := cmd.Flags().GetBool("now"); now {
			return svc.Check(cmd.Context(), userID)
		}

		hour, _ := cmd.Flags().GetInt("hour")
		if err := svc.Start(userID, hour); err != nil {
			return err
		}
		defer svc.Stop()

		fmt.Printf("Reminder running daily at %02d:00. Ctrl-C to stop.\n", hour)
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		return nil
	},
}

func init() {
	remindCmd.Flags().Bool("now", false, "Check once and exit")
	remindCmd.Flags().Int("hour", reminder.DefaultCheckHour, "Hour of day for the daily check (0-23)")
}
