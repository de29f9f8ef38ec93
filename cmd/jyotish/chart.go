package main

import (
	"github.com/spf13/cobra"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Compute the sidereal birth chart and divisional charts",
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := compute()
		if err != nil {
			return err
		}
		return emit(struct {
			ID     string `json:"id"`
			Chart  any    `json:"chart"`
			Vargas any    `json:"vargas"`
		}{k.ID, k.Chart, k.Vargas})
	},
}

func init() {
	rootCmd.AddCommand(chartCmd)
}
