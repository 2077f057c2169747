package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/robert-malhotra/go-dv/ive"
)

const titleStream = 1

var (
	titleText          string
	titleAppend        bool
	titleMin, titleMax float32
	titleMean          float32
)

var titleCmd = &cobra.Command{
	Use:   "title <file>",
	Short: "Rewrite the title and intensity statistics",
	Long: `title replaces the first title of a volume (or, with --append, prefixes
it) and stores min/max/mean. Statistics not given on the command line keep
their stored values.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table := ive.NewTable(ive.WithLogger(log))
		defer table.CloseAll()

		if table.Open(titleStream, args[0], ive.ModeReadOnly) != 0 {
			return errOpen(args[0])
		}

		s, err := table.ReadHeaderSummary(titleStream)
		if err != nil {
			return err
		}
		dmin, dmax, dmean := s.Min, s.Max, s.Mean
		if cmd.Flags().Changed("min") {
			dmin = titleMin
		}
		if cmd.Flags().Changed("max") {
			dmax = titleMax
		}
		if cmd.Flags().Changed("mean") {
			dmean = titleMean
		}

		ntflag := ive.TitleReplace
		if titleAppend {
			ntflag = ive.TitleAppend
		}
		if err := table.WriteHeader(titleStream, titleText, ntflag, dmin, dmax, dmean); err != nil {
			return err
		}
		log.Info("header updated", zap.String("file", args[0]), zap.Int("ntflag", ntflag))
		return table.Close(titleStream)
	},
}

func init() {
	titleCmd.Flags().StringVar(&titleText, "title", "", "title text (at most 80 bytes are kept)")
	titleCmd.Flags().BoolVar(&titleAppend, "append", false, "prefix the existing title instead of replacing it")
	titleCmd.Flags().Float32Var(&titleMin, "min", 0, "minimum intensity")
	titleCmd.Flags().Float32Var(&titleMax, "max", 0, "maximum intensity")
	titleCmd.Flags().Float32Var(&titleMean, "mean", 0, "mean intensity")
}
