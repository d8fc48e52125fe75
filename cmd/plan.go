package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rushil/prepd/internal/burnout"
	"github.com/rushil/prepd/internal/cli"
	"github.com/rushil/prepd/internal/mastery"
	"github.com/rushil/prepd/internal/planner"
)

// keptPlans is how many old plan snapshots survive a regeneration.
const keptPlans = 5

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate or show the weekly study plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		userID := currentUser(cmd)

		if show, _ := cmd.Flags().GetBool("show"); show {
			snap, err := st.PlanRepo().Latest(ctx, userID)
			if err != nil {
				return err
			}
			if snap == nil {
				fmt.Println(cli.Hint.Render("No plan yet. Run `prepd plan --exam <date>` first."))
				return nil
			}
			plan, err := planner.FromSnapshot(snap)
			if err != nil {
				return err
			}
			printPlan(plan)
			return nil
		}

		examStr, _ := cmd.Flags().GetString("exam")
		if examStr == "" {
			return fmt.Errorf("--exam <YYYY-MM-DD> is required to generate a plan")
		}
		examDate, err := time.Parse("2006-01-02", examStr)
		if err != nil {
			return fmt.Errorf("bad exam date %q: %w", examStr, err)
		}
		hours, _ := cmd.Flags().GetFloat64("hours")

		tracker := mastery.NewTracker(mastery.DefaultConfig(), st.MasteryRepo(), st.EventRepo())
		records, err := tracker.ForUser(ctx, userID)
		if err != nil {
			return err
		}

		logs, err := st.EnergyRepo().Recent(ctx, userID, 7, time.Now().UTC())
		if err != nil {
			return err
		}
		score, signals := burnout.EnergyScore(toDayLogs(logs))
		rest := burnout.ShouldSuggestRest(score, signals)

		builder := planner.NewBuilder()
		plan, err := builder.Build(userID, planner.Settings{DailyHours: hours, ExamDate: examDate}, records, rest)
		if err != nil {
			return err
		}

		snap, err := planner.Snapshot(plan)
		if err != nil {
			return err
		}
		if err := st.PlanRepo().Save(ctx, snap); err != nil {
			return err
		}
		if err := st.PlanRepo().Prune(ctx, userID, keptPlans); err != nil {
			return err
		}

		if rest {
			fmt.Println(cli.Bad.Render(fmt.Sprintf("Energy score %.0f: a rest day is built in.", score)))
		}
		printPlan(plan)
		return nil
	},
}

func printPlan(plan *planner.WeeklyPlan) {
	fmt.Println(cli.Title.Render(fmt.Sprintf("Week of %s, exam in %d days",
		plan.Days[0].Date.Format("Jan 2"), plan.DaysToExam)))
	fmt.Println(cli.Subtitle.Render(fmt.Sprintf("Mix: %d%% study / %d%% revision / %d%% mocks",
		plan.Allocation.StudyPct, plan.Allocation.RevisionPct, plan.Allocation.MockPct)))

	for _, day := range plan.Days {
		fmt.Printf("\n%s\n", cli.Body.Render(day.Date.Format("Mon Jan 2")))
		if day.Rest {
			fmt.Println(cli.Hint.Render("  Rest day"))
			continue
		}
		for _, s := range day.Sessions {
			fmt.Printf("  %-9s %-8s %3dm", s.Slot, s.Kind, s.Minutes)
			for _, t := range s.Topics {
				fmt.Printf("  %s (%dm)", t.Key.Topic, t.Minutes)
			}
			fmt.Println()
		}
	}
}

func init() {
	planCmd.Flags().String("exam", "", "Exam date (YYYY-MM-DD)")
	planCmd.Flags().Float64("hours", 4, "Study hours per day")
	planCmd.Flags().Bool("show", false, "Show the latest saved plan instead of generating")
}
