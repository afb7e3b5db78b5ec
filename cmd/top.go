package cmd

import (
	"context"
	"fmt"

	"github.com/amical-najul/SumasRestas/internal/questions"
	"github.com/amical-najul/SumasRestas/internal/store"
	"github.com/spf13/cobra"
)

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Mostrar las mejores partidas del jugador",
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

		limit, _ := cmd.Flags().GetInt("limit")
		recs, err := st.Scores().TopByUser(context.Background(), cfg.Player, limit)
		if err != nil {
			return fmt.Errorf("load scores: %w", err)
		}
		if len(recs) == 0 {
			fmt.Printf("%s todavía no tiene partidas guardadas.\n", cfg.Player)
			return nil
		}

		fmt.Printf("Mejores partidas de %s\n\n", cfg.Player)
		fmt.Printf("%-3s %-16s %-10s %6s %9s %7s %9s\n",
			"#", "Categoría", "Nivel", "Punt.", "Aciertos", "Fallos", "T. medio")
		for i, rec := range recs {
			diff := rec.Difficulty
			if diff == "mixed" {
				diff = "Mixto"
			} else {
				diff = questions.DifficultyDisplayName(questions.Difficulty(diff))
			}
			fmt.Printf("%-3d %-16s %-10s %6d %9d %7d %8.2fs\n",
				i+1,
				questions.CategoryDisplayName(questions.Category(rec.Category)),
				diff,
				rec.Score,
				rec.CorrectCount,
				rec.ErrorCount,
				rec.AvgTime,
			)
		}
		return nil
	},
}

func init() {
	topCmd.Flags().Int("limit", 5, "How many records to show")
}
