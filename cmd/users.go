package cmd

import (
	"context"
	"fmt"

	"github.com/amical-najul/SumasRestas/internal/store"
	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Listar las cuentas de jugador",
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

		users, err := st.Users().List(context.Background())
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}
		if len(users) == 0 {
			fmt.Println("No hay cuentas todavía.")
			return nil
		}

		fmt.Printf("%-16s %-6s %-8s %-6s\n", "Jugador", "Rol", "Estado", "Nivel")
		for _, u := range users {
			fmt.Printf("%-16s %-6s %-8s %-6d\n",
				u.Username, u.Role, u.Status, u.UnlockedLevel+1)
		}
		return nil
	},
}
