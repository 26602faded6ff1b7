package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fieldquote/pricing-service/internal/matching"
	"github.com/fieldquote/pricing-service/internal/pricelist"
)

var (
	candidatesPriceList string
	candidatesUnit      string
	candidatesOutput    string
	candidatesMax       int
	candidatesMinScore  float64
)

// candidatesCmd represents the candidates command
var candidatesCmd = &cobra.Command{
	Use:   "candidates <name>",
	Short: "List ranked price-list matches for an item name",
	Long: `List ranked match suggestions for a free-text item name, best first.
Useful for reviewing what the matcher would pick before applying prices to a
whole quote.`,
	Example: `  pricing-service candidates "wall paint" --pricelist ./prices.json
  pricing-service candidates "tile" --pricelist ./prices.xlsx --max 5 --min-score 0.4`,
	Args: cobra.ExactArgs(1),
	RunE: runCandidates,
}

func init() {
	rootCmd.AddCommand(candidatesCmd)

	candidatesCmd.Flags().StringVar(&candidatesPriceList, "pricelist", "", "Price list file: .json, .csv, or .xlsx (required)")
	candidatesCmd.Flags().StringVar(&candidatesUnit, "unit", "", "Unit hint from the quote row")
	candidatesCmd.Flags().StringVar(&candidatesOutput, "output", "table", "Output format: table or json")
	candidatesCmd.Flags().IntVar(&candidatesMax, "max", 0, "Maximum suggestions to return (0 = config default)")
	candidatesCmd.Flags().Float64Var(&candidatesMinScore, "min-score", 0, "Minimum score to include (0 = config default)")
	candidatesCmd.MarkFlagRequired("pricelist")
}

func runCandidates(cmd *cobra.Command, args []string) error {
	entries, err := pricelist.Load(candidatesPriceList)
	if err != nil {
		return fmt.Errorf("failed to load price list: %w", err)
	}
	logger.Info().Str("file", candidatesPriceList).Int("entries", len(entries)).Msg("Loaded price list")

	opts := matching.CandidateOptions{
		MaxResults: candidatesMax,
		MinScore:   candidatesMinScore,
	}
	if cfg != nil {
		if opts.MaxResults == 0 {
			opts.MaxResults = cfg.Matching.MaxCandidates
		}
		if opts.MinScore == 0 {
			opts.MinScore = cfg.Matching.MinScore
		}
	}

	results := matching.Candidates(args[0], candidatesUnit, entries, opts)

	if candidatesOutput == "json" {
		if results == nil {
			results = []matching.MatchCandidate{}
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("no candidates")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "Score\tName\tPrice\tUnit\n")
	fmt.Fprintf(w, "-----\t----\t-----\t----\n")
	for _, c := range results {
		fmt.Fprintf(w, "%.2f\t%s\t%.2f\t%s\n",
			c.Score, c.Entry.Source.Name, c.Entry.Source.Price, displayUnit(c.Entry.NormalizedUnit))
	}
	return w.Flush()
}
