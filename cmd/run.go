package cmd

import (
	"fmt"

	"github.com/abhisek/prepdeck/internal/app"
	"github.com/abhisek/prepdeck/internal/bank"
	"github.com/abhisek/prepdeck/internal/practice"
	"github.com/abhisek/prepdeck/internal/resume"
	"github.com/abhisek/prepdeck/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	// A broken question bank is a packaging bug; refuse to start.
	catalog, err := bank.Load()
	if err != nil {
		return fmt.Errorf("load question bank: %w", err)
	}

	opts := app.Options{
		Manager:   practice.NewManager(catalog, st.HistoryRepo()),
		Catalog:   catalog,
		ResumeSvc: resume.NewService(st.ResumeRepo()),
	}

	return app.Run(opts)
}
