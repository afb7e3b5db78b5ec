package cmd

import (
	"context"
	"fmt"

	"github.com/amical-najul/SumasRestas/internal/questions"
	"github.com/amical-najul/SumasRestas/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Mostrar el progreso por categoría",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		rows, err := st.Progress().ForUser(context.Background(), cfg.Player)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		if len(rows) == 0 {
			fmt.Printf("%s todavía no tiene partidas guardadas.\n", cfg.Player)
			return nil
		}

		fmt.Printf("Progreso de %s\n\n", cfg.Player)
		fmt.Printf("%-16s %-8s %-9s %-10s %-10s\n",
			"Categoría", "Nivel", "Partidas", "Precisión", "Punt. media")
		for _, row := range rows {
			fmt.Printf("%-16s %-8d %-9d %9d%% %-10d\n",
				questions.CategoryDisplayName(row.Category),
				row.UnlockedLevel+1,
				row.TotalGames,
				row.AccuracyRate(),
				row.AvgScore(),
			)
		}
		return nil
	},
}
