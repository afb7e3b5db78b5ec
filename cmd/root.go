package cmd

import (
	"github.com/amical-najul/SumasRestas/internal/config"
	"github.com/amical-najul/SumasRestas/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sumasrestas",
	Short: "Juego de cálculo mental por niveles",
	Long:  "SumasRestas — terminal drill game for mental arithmetic: sumas, restas, tablas, división y desafíos progresivos.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SUMAS_DB env var)")
	rootCmd.PersistentFlags().String("api", "", "Base URL of the remote backend (overrides SUMAS_API_URL env var)")
	rootCmd.PersistentFlags().String("user", "", "Player name (overrides SUMAS_PLAYER env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig loads the layered configuration and applies command-line
// flags on top, which take the highest priority.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if u, _ := cmd.Flags().GetString("api"); u != "" {
		cfg.APIURL = u
	}
	if n, _ := cmd.Flags().GetString("user"); n != "" {
		cfg.Player = n
	}
	return cfg, nil
}

// resolveDBPath returns the database path from the resolved config, falling
// back to the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
