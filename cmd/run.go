package cmd

import (
	"context"
	"fmt"

	"github.com/amical-najul/SumasRestas/internal/api"
	"github.com/amical-najul/SumasRestas/internal/app"
	"github.com/amical-najul/SumasRestas/internal/questions"
	"github.com/amical-najul/SumasRestas/internal/store"
	"github.com/spf13/cobra"
)

// runApp resolves configuration, opens the persistence backend, loads the
// player, and launches the TUI. With tables set it drops straight into a
// multiplication free-practice session.
func runApp(cmd *cobra.Command, tables bool) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	ctx := context.Background()
	user, err := st.Users().Ensure(ctx, cfg.Player)
	if err != nil {
		return fmt.Errorf("load player %q: %w", cfg.Player, err)
	}
	if user.Status == store.StatusBanned {
		return fmt.Errorf("player %q is banned", user.Username)
	}

	opts := app.Options{
		Generator:   questions.NewGenerator(nil),
		User:        user,
		Scores:      st.Scores(),
		Progress:    st.Progress(),
		StartTables: tables,
	}

	// A configured backend URL switches scores and progress to the remote
	// API; accounts stay local either way.
	if cfg.APIURL != "" {
		client := api.New(cfg.APIURL)
		opts.Scores = client
		opts.Progress = client
	}

	return app.Run(opts)
}
