package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all mastery data for a profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID := currentUser(cmd)

		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			fmt.Printf("Delete all mastery records for %q? [y/N] ", userID)
			reader := bufio.NewReader(os.Stdin)
			line, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(line)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.MasteryRepo().DeleteForUser(cmd.Context(), userID); err != nil {
			return err
		}
		fmt.Printf("Mastery data for %q deleted.\n", userID)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}
