package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/fieldquote/pricing-service/internal/matching"
	"github.com/fieldquote/pricing-service/internal/pricelist"
	"github.com/fieldquote/pricing-service/internal/types"
)

var (
	applyPriceList  string
	applyOutput     string
	applyOutFile    string
	applyOverwrite  bool
	applyNoFillUnit bool
)

// applyCmd represents the apply command
var applyCmd = &cobra.Command{
	Use:   "apply <quote.json>",
	Short: "Fill prices onto a quote from a price list file",
	Long: `Enrich every line item in a quote file with the best price-list match.
Items that already carry a price are left alone unless --overwrite is set, and
blank units are filled from the matched entry unless --no-fill-unit is set.`,
	Example: `  pricing-service apply ./quote.json --pricelist ./prices.json
  pricing-service apply ./quote.json --pricelist ./prices.xlsx --overwrite --out ./priced.json`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().StringVar(&applyPriceList, "pricelist", "", "Price list file: .json, .csv, or .xlsx (required)")
	applyCmd.Flags().StringVar(&applyOutput, "output", "table", "Output format: table or json")
	applyCmd.Flags().StringVar(&applyOutFile, "out", "", "Write the enriched quote to this file instead of stdout")
	applyCmd.Flags().BoolVar(&applyOverwrite, "overwrite", false, "Re-price items that already have a price")
	applyCmd.Flags().BoolVar(&applyNoFillUnit, "no-fill-unit", false, "Leave blank units blank")
	applyCmd.MarkFlagRequired("pricelist")
}

func runApply(cmd *cobra.Command, args []string) error {
	quotePath := args[0]

	var (
		items   []types.LineItem
		entries []types.CatalogEntry
	)

	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		items, err = pricelist.LoadLineItems(quotePath)
		if err != nil {
			return fmt.Errorf("failed to load quote: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		entries, err = pricelist.Load(applyPriceList)
		if err != nil {
			return fmt.Errorf("failed to load price list: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info().
		Int("items", len(items)).
		Int("entries", len(entries)).
		Msg("Applying saved prices")

	opts := matching.DefaultApplyOptions()
	opts.OnlyMissingPrice = !applyOverwrite
	opts.FillEmptyUnit = !applyNoFillUnit

	result := matching.ApplyToLineItems(items, entries, opts)
	logger.Info().Int("matched", result.MatchedCount).Msg("Done")

	if applyOutFile != "" {
		data, err := json.MarshalIndent(result.Items, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		if err := os.WriteFile(applyOutFile, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Printf("Wrote %d items (%d priced) to %s\n", len(result.Items), result.MatchedCount, applyOutFile)
		return nil
	}

	if applyOutput == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result.Items)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "Name\tQty\tUnit\tPrice\tTotal\n")
	fmt.Fprintf(w, "----\t---\t----\t-----\t-----\n")
	for _, item := range result.Items {
		price := "-"
		if item.Price != nil {
			price = fmt.Sprintf("%.2f", *item.Price)
		}
		total := "-"
		if item.LineTotal != nil {
			total = fmt.Sprintf("%.2f", *item.LineTotal)
		}
		fmt.Fprintf(w, "%s\t%g\t%s\t%s\t%s\n", item.Name, item.Quantity, item.Unit, price, total)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\nMatched %d of %d items\n", result.MatchedCount, len(result.Items))
	return nil
}
