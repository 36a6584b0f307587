package cmd

import (
	"fmt"
	"sort"

	"github.com/abhisek/prepdeck/internal/bank"
	"github.com/abhisek/prepdeck/internal/practice"
	"github.com/abhisek/prepdeck/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print practice statistics without launching the TUI",
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

		catalog, err := bank.Load()
		if err != nil {
			return fmt.Errorf("load question bank: %w", err)
		}

		stats := practice.NewManager(catalog, st.HistoryRepo()).Stats()
		if stats.TotalSessions == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		fmt.Printf("Sessions:            %d\n", stats.TotalSessions)
		fmt.Printf("Questions practiced: %d\n", stats.QuestionsPracticed)
		fmt.Printf("Average score:       %d%%\n", stats.AverageScore)

		ids := make([]string, 0, len(stats.ByCategory))
		for id := range stats.ByCategory {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		fmt.Println("\nBy topic:")
		for _, id := range ids {
			cs := stats.ByCategory[id]
			fmt.Printf("  %-16s %d sessions, avg %d%%\n", cs.CategoryName, cs.Sessions, cs.AverageScore)
		}
		return nil
	},
}
