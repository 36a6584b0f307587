package cmd

import (
	"fmt"

	"github.com/abhisek/prepdeck/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all practice history",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		n, err := st.Client().HistoryRecord.Delete().Exec(cmd.Context())
		if err != nil {
			return fmt.Errorf("delete history: %w", err)
		}
		if n == 0 {
			fmt.Println("No history to delete.")
		} else {
			fmt.Println("Practice history deleted.")
		}
		return nil
	},
}
