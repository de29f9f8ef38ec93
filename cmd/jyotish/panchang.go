package main

import (
	"github.com/spf13/cobra"
)

var panchangCmd = &cobra.Command{
	Use:   "panchang",
	Short: "Compute the panchang for the given instant",
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := compute()
		if err != nil {
			return err
		}
		return emit(k.Panchang)
	},
}

func init() {
	rootCmd.AddCommand(panchangCmd)
}
