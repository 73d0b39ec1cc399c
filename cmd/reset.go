package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verbly-app/verbly/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete generated exercise deliverables",
	Long:  "Deletes persisted deliverables so fresh ones can be generated. With --topic only that topic's deliverables are removed; without it, all of them (requires --all).",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		all, _ := cmd.Flags().GetBool("all")

		if topic == "" && !all {
			return fmt.Errorf("pass --topic to reset one topic, or --all to reset everything")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		n, err := st.DeliverableRepo().Purge(cmd.Context(), topic)
		if err != nil {
			return fmt.Errorf("reset deliverables: %w", err)
		}

		if topic != "" {
			fmt.Printf("Deleted %d deliverable(s) for topic %q.\n", n, topic)
		} else {
			fmt.Printf("Deleted %d deliverable(s).\n", n)
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().String("topic", "", "Only delete deliverables for this topic")
	resetCmd.Flags().Bool("all", false, "Delete all deliverables")
}
