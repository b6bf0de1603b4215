package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var appsCmd = &cobra.Command{
	Use:   "apps <url>",
	Short: "Detect third-party apps installed on a Shopify storefront",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := newAnalyzer().AnalyzeApps(context.Background(), args[0])
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
		fmt.Printf("Detected %d app(s)\n", report.TotalApps)
		for _, d := range report.DetectedApps {
			fmt.Printf("  %s [%s] (confidence: %s, weight: %d)\n", d.App.Name, d.App.Category, d.Confidence, d.Weight)
			for _, sig := range d.Signals {
				fmt.Println("    -", sig)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(appsCmd)
	appsCmd.Flags().Bool("json", false, "Print the full report as JSON")
}
