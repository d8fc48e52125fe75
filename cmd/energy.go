package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rushil/prepd/internal/burnout"
	"github.com/rushil/prepd/internal/cli"
	"github.com/rushil/prepd/internal/store"
)

var energyCmd = &cobra.Command{
	Use:   "energy",
	Short: "Log study activity and watch for burnout",
}

var energyLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Record today's study session",
	RunE: func(cmd *cobra.Command, args []string) error {
		hours, _ := cmd.Flags().GetFloat64("hours")
		questions, _ := cmd.Flags().GetInt("questions")
		accuracy, _ := cmd.Flags().GetFloat64("accuracy")
		lateNight, _ := cmd.Flags().GetBool("late-night")

		if hours < 0 || hours > 24 {
			return fmt.Errorf("hours %v out of range", hours)
		}
		if accuracy < 0 || accuracy > 100 {
			return fmt.Errorf("accuracy %v out of range", accuracy)
		}
		if questions < 0 {
			return fmt.Errorf("questions %d out of range", questions)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		err = st.EnergyRepo().Append(cmd.Context(), currentUser(cmd), &store.EnergyLogData{
			Date:               time.Now().UTC(),
			StudyHours:         hours,
			QuestionsAttempted: questions,
			Accuracy:           accuracy,
			LateNightStudy:     lateNight,
		})
		if err != nil {
			return err
		}
		fmt.Println("Logged.")
		return nil
	},
}

var energyReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the weekly energy score",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		logs, err := st.EnergyRepo().Recent(cmd.Context(), currentUser(cmd), 7, time.Now().UTC())
		if err != nil {
			return err
		}

		score, signals := burnout.EnergyScore(toDayLogs(logs))
		style := cli.Good
		if score < 60 {
			style = cli.Bad
		}
		fmt.Printf("Energy score: %s\n", style.Render(fmt.Sprintf("%.0f / 100", score)))

		for _, sig := range signals {
			fmt.Printf("  [%s] %s\n", sig.Severity, sig.Detail)
		}
		if burnout.ShouldSuggestRest(score, signals) {
			fmt.Println(cli.Bad.Render("Take a rest day."))
		}
		return nil
	},
}

func toDayLogs(logs []*store.EnergyLogData) []burnout.DayLog {
	out := make([]burnout.DayLog, len(logs))
	for i, l := range logs {
		out[i] = burnout.DayLog{
			Date:               l.Date,
			StudyHours:         l.StudyHours,
			QuestionsAttempted: l.QuestionsAttempted,
			Accuracy:           l.Accuracy,
			LateNightStudy:     l.LateNightStudy,
		}
	}
	return out
}

func init() {
	energyLogCmd.Flags().Float64("hours", 0, "Hours studied today")
	energyLogCmd.Flags().Int("questions", 0, "Questions attempted today")
	energyLogCmd.Flags().Float64("accuracy", 0, "Accuracy percentage today")
	energyLogCmd.Flags().Bool("late-night", false, "Studied past midnight")

	energyCmd.AddCommand(energyLogCmd)
	energyCmd.AddCommand(energyReportCmd)
}
