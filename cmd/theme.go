package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme <url>",
	Short: "Detect the Shopify theme powering a storefront",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := newAnalyzer().AnalyzeTheme(context.Background(), args[0])
		if err != nil {
			return err
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}

		fmt.Println("Store:", report.StoreURL)
		if report.StoreTitle != "" {
			fmt.Println("Title:", report.StoreTitle)
		}
		if report.Theme.Name != nil {
			fmt.Println("Theme:", *report.Theme.Name)
		} else {
			fmt.Println("Theme: (name not detected)")
		}
		fmt.Println("Type:", report.Theme.Type)
		if report.Theme.ThemeStoreID != nil {
			fmt.Println("Theme store id:", *report.Theme.ThemeStoreID)
		}
		if report.Theme.SchemaName != nil {
			fmt.Println("Base theme:", *report.Theme.SchemaName)
		}
		if report.ThemeStoreURL != "" {
			fmt.Println("Theme store:", report.ThemeStoreURL)
		}
		if report.Recommendation != "" {
			fmt.Println(report.Recommendation)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.Flags().Bool("json", false, "Print the full report as JSON")
}
