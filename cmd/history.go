package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/storelens/storelens/pkg/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent analyses recorded in the history database",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, _ := cmd.Flags().GetString("dbpath")
		if dbPath == "" {
			dbPath = viper.GetString("dbpath")
		}
		if dbPath == "" {
			dbPath = "storelens.sqlite"
		}
		if _, err := os.Stat(dbPath); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("history database not found: %s", dbPath)
			}
			return err
		}

		db, err := storage.Open(dbPath)
		if err != nil {
			return err
		}
		defer db.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		entries, err := db.ListRecent(context.Background(), limit)
		if err != nil {
			return err
		}

		for _, e := range entries {
			switch e.Kind {
			case storage.KindTheme:
				name := e.ThemeName
				if name == "" {
					name = "(unknown)"
				}
				fmt.Printf("%s  theme  %s  %s (%s)\n", e.CreatedAt.Format("2006-01-02 15:04"), e.StoreURL, name, e.ThemeType)
			case storage.KindApps:
				fmt.Printf("%s  apps   %s  %d app(s)\n", e.CreatedAt.Format("2006-01-02 15:04"), e.StoreURL, e.TotalApps)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().String("dbpath", "", "SQLite history file (default from config, storelens.sqlite)")
	historyCmd.Flags().Int("limit", 50, "Maximum entries to print")
}
