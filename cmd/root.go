package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"github.com/storelens/storelens/internal/utils"
	"github.com/storelens/storelens/pkg/detector"
	"github.com/storelens/storelens/pkg/signatures"
)

var cfgFile string

const (
	LOGO = `     _                 _
 ___| |_ ___  _ __ ___| | ___ _ __  ___
/ __| __/ _ \| '__/ _ \ |/ _ \ '_ \/ __|
\__ \ || (_) | | |  __/ |  __/ | | \__ \
|___/\__\___/|_|  \___|_|\___|_| |_|___/

`
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "storelens",
	Short: "Detect the theme and apps behind any Shopify storefront.",
	Long: LOGO + `storelens analyzes a storefront URL and reports whether it runs on Shopify,
which theme powers it (official theme store listing or custom), and which
third-party apps are installed, using a curated signature database.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.storelens.yaml)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".storelens")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; create it with defaults.
			home, _ := homedir.Dir()
			configPath := home + "/.storelens.yaml"
			if err := viper.SafeWriteConfigAs(configPath); err != nil {
				fmt.Printf("Error creating config file: %s", err)
			}
		}
	}

	viper.SetDefault("fetch.timeout_seconds", 10)
	viper.SetDefault("fetch.useragent", "")
	viper.SetDefault("server.listen", ":8080")
	viper.SetDefault("dbpath", "")

	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	utils.SetLogLevel(levelString)
}

// newAnalyzer builds an analyzer from the configured fetch settings.
func newAnalyzer() *detector.Analyzer {
	timeout := time.Duration(viper.GetInt("fetch.timeout_seconds")) * time.Second
	fetcher := detector.NewFetcher(timeout, viper.GetString("fetch.useragent"))
	return detector.NewAnalyzer(signatures.Default(), fetcher)
}
