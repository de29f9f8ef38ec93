package main

import (
	"github.com/spf13/cobra"

	"github.com/mihira/jyotish/internal/yoga"
)

var flagCategory string

var yogasCmd = &cobra.Command{
	Use:   "yogas",
	Short: "Detect classical yogas and doshas",
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := compute()
		if err != nil {
			return err
		}
		matches := k.Matches
		if flagCategory != "" {
			var filtered []yoga.Match
			for _, m := range matches {
				if string(m.Category) == flagCategory {
					filtered = append(filtered, m)
				}
			}
			matches = filtered
		}
		return emit(struct {
			ID        string       `json:"id"`
			Strengths any          `json:"strengths"`
			Matches   []yoga.Match `json:"matches"`
		}{k.ID, k.Strengths, matches})
	},
}

func init() {
	yogasCmd.Flags().StringVar(&flagCategory, "category", "", "filter by category (e.g. RAJA, DOSHA, NABHASA)")
	rootCmd.AddCommand(yogasCmd)
}
