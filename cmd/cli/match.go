package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fieldquote/pricing-service/internal/matching"
	"github.com/fieldquote/pricing-service/internal/pricelist"
)

var (
	matchPriceList string
	matchUnit      string
	matchOutput    string
)

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match <name>",
	Short: "Find the best price-list match for an item name",
	Long: `Find the single best match for a free-text item name in a price list
file. Prints nothing but "no match" when no entry clears the auto-apply
threshold; a miss is a result, not an error.`,
	Example: `  pricing-service match "drywall installation" --pricelist ./prices.json
  pricing-service match "paint" --unit liter --pricelist ./prices.csv --output json`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringVar(&matchPriceList, "pricelist", "", "Price list file: .json, .csv, or .xlsx (required)")
	matchCmd.Flags().StringVar(&matchUnit, "unit", "", "Unit hint from the quote row")
	matchCmd.Flags().StringVar(&matchOutput, "output", "table", "Output format: table or json")
	matchCmd.MarkFlagRequired("pricelist")
}

func runMatch(cmd *cobra.Command, args []string) error {
	entries, err := pricelist.Load(matchPriceList)
	if err != nil {
		return fmt.Errorf("failed to load price list: %w", err)
	}
	logger.Info().Str("file", matchPriceList).Int("entries", len(entries)).Msg("Loaded price list")

	best := matching.FindBestMatch(args[0], matchUnit, entries)

	if matchOutput == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(best)
	}

	if best == nil {
		fmt.Println("no match")
		return nil
	}

	fmt.Printf("%s  %.2f per %s  (score %.2f)\n",
		best.Entry.Source.Name, best.Entry.Source.Price, displayUnit(best.Entry.NormalizedUnit), best.Score)
	return nil
}

func displayUnit(unit string) string {
	if unit == "" {
		return "each"
	}
	return unit
}
