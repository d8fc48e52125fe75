package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rushil/prepd/internal/cli"
	"github.com/rushil/prepd/internal/syllabus"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import the syllabus from a CSV or Excel file",
	Long:  "Loads topics from a spreadsheet with Subject, Chapter, Topic, and Weightage columns. Re-importing updates existing topics in place.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		cfg := syllabus.DefaultImportConfig(args[0])
		if sheet, _ := cmd.Flags().GetString("sheet"); sheet != "" {
			cfg.SheetName = sheet
		}

		result, err := syllabus.Import(cmd.Context(), st.TopicRepo(), cfg)
		if err != nil {
			return err
		}

		fmt.Printf("Processed %d rows: %d created, %d updated, %d skipped\n",
			result.TotalProcessed, result.Created, result.Updated, result.Skipped)
		for _, e := range result.Errors {
			fmt.Println(cli.Hint.Render("  " + e))
		}
		return nil
	},
}

func init() {
	importCmd.Flags().String("sheet", "", "Excel sheet name (default Sheet1)")
}
