package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mihira/jyotish/internal/muhurta"
)

var (
	flagFrom     string
	flagTo       string
	flagStep     time.Duration
	flagParallel int
	flagTop      int
)

var muhurtaCmd = &cobra.Command{
	Use:   "muhurta",
	Short: "Scan a window for auspicious instants",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		defer a.Close()

		from, err := time.Parse(time.RFC3339, flagFrom)
		if err != nil {
			return err
		}
		to, err := time.Parse(time.RFC3339, flagTo)
		if err != nil {
			return err
		}

		// Scan candidates are throwaway instants; they bypass the kundli
		// cache rather than flooding it.
		scanner := muhurta.NewScanner(a.engine, a.log)
		res, err := scanner.Scan(cmd.Context(), muhurta.Request{
			From:        from,
			To:          to,
			Step:        flagStep,
			Latitude:    flagLat,
			Longitude:   flagLon,
			Options:     options(a.cfg),
			Parallelism: flagParallel,
		})
		if err != nil {
			return err
		}
		if flagTop > 0 && flagTop < len(res.Candidates) {
			res.Candidates = res.Candidates[:flagTop]
		}
		return emit(res)
	},
}

func init() {
	muhurtaCmd.Flags().StringVar(&flagFrom, "from", "", "window start, RFC3339")
	muhurtaCmd.Flags().StringVar(&flagTo, "to", "", "window end, RFC3339")
	muhurtaCmd.Flags().DurationVar(&flagStep, "step", 30*time.Minute, "candidate step")
	muhurtaCmd.Flags().IntVar(&flagParallel, "parallel", 4, "concurrent evaluations")
	muhurtaCmd.Flags().IntVar(&flagTop, "top", 10, "print only the best N candidates")
	_ = muhurtaCmd.MarkFlagRequired("from")
	_ = muhurtaCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(muhurtaCmd)
}
