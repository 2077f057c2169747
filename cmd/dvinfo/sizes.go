package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-dv/dv"
)

var sizesCmd = &cobra.Command{
	Use:   "sizes <file>",
	Short: "Print axis sizes in declared order and the frame size",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := dv.Open(args[0], dv.WithLogger(log))
		if err != nil {
			return err
		}
		defer f.Close()

		h := f.Header()
		sizes := f.AxisSizes()
		out := cmd.OutOrStdout()
		for _, axis := range h.AxisOrder() {
			fmt.Fprintf(out, "%c: %d\n", axis, sizes[string(axis)])
		}

		frame, err := f.FrameSize()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "frame bytes: %d\n", frame)
		return nil
	},
}

var offsetZ, offsetW, offsetT int

var offsetCmd = &cobra.Command{
	Use:   "offset <file>",
	Short: "Print the byte offset of section (z, w, t)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := dv.Open(args[0], dv.WithLogger(log))
		if err != nil {
			return err
		}
		defer f.Close()

		off, err := f.ComputeSectionOffset(offsetZ, offsetW, offsetT)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), off)
		return nil
	},
}

func init() {
	offsetCmd.Flags().IntVarP(&offsetZ, "z", "z", 0, "z section")
	offsetCmd.Flags().IntVarP(&offsetW, "w", "w", 0, "wavelength")
	offsetCmd.Flags().IntVarP(&offsetT, "t", "t", 0, "time point")
}
