package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/storelens/storelens/internal/server"
	"github.com/storelens/storelens/internal/utils"
	"github.com/storelens/storelens/pkg/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the storelens JSON API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		listenAddr, _ := cmd.Flags().GetString("listen")
		if listenAddr == "" {
			listenAddr = viper.GetString("server.listen")
		}

		var history *storage.DB
		dbPath, _ := cmd.Flags().GetString("dbpath")
		if dbPath == "" {
			dbPath = viper.GetString("dbpath")
		}
		if dbPath != "" {
			db, err := storage.Open(dbPath)
			if err != nil {
				return err
			}
			defer db.Close()
			history = db
			utils.Log.Info("Recording analysis history to ", dbPath)
		}

		return server.New(newAnalyzer(), history).Start(listenAddr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("listen", "", "HTTP listen address (default from config, :8080)")
	serveCmd.Flags().String("dbpath", "", "SQLite file for analysis history (empty disables recording)")
}
