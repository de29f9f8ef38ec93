package main

import (
	"time"

	"github.com/spf13/cobra"
)

var flagAt string

var dashaCmd = &cobra.Command{
	Use:   "dasha",
	Short: "Compute the Vimshottari dasha timeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := compute()
		if err != nil {
			return err
		}
		if flagAt == "" {
			return emit(k.Dashas)
		}
		at, err := time.Parse(time.RFC3339, flagAt)
		if err != nil {
			return err
		}
		return emit(k.Dashas.Active(at))
	},
}

func init() {
	dashaCmd.Flags().StringVar(&flagAt, "at", "", "print only the periods active at this RFC3339 instant")
	rootCmd.AddCommand(dashaCmd)
}
