package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/robert-malhotra/go-dv/dv"
	"github.com/robert-malhotra/go-dv/ive"
)

const createStream = 2

var (
	createNX, createNY, createNZ int32
	createWaves, createTimes     int16
	createMode                   int32
)

var createCmd = &cobra.Command{
	Use:   "create <file>",
	Short: "Create a zero-filled volume",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		order, err := cfg.Order()
		if err != nil {
			return err
		}

		h := dv.NewHeader()
		h.NX, h.NY, h.NZ = createNX, createNY, createNZ
		h.MX, h.MY, h.MZ = createNX, createNY, createNZ
		h.NumWaves, h.NumTimes = createWaves, createTimes
		h.Mode = dv.PixelType(createMode)
		if !h.Mode.Valid() {
			return fmt.Errorf("%w: --mode %d", dv.ErrUnknownPixelType, createMode)
		}

		frame, err := h.FrameSize()
		if err != nil {
			return err
		}

		table := ive.NewTable(ive.WithLogger(log))
		defer table.CloseAll()

		if table.Open(createStream, args[0], ive.ModeNew, dv.WithByteOrder(order), dv.WithLogger(log)) != 0 {
			return errOpen(args[0])
		}
		if err := table.PutHeader(createStream, h); err != nil {
			return err
		}

		buf := make([]byte, frame)
		for i := int32(0); i < h.NZ; i++ {
			if err := table.WriteSection(createStream, buf); err != nil {
				return err
			}
		}

		log.Info("volume created",
			zap.String("file", args[0]),
			zap.Stringer("byte_order", order),
			zap.Int("planes", h.PlaneCount()),
			zap.Int64("frame_bytes", frame))
		return table.Close(createStream)
	},
}

func init() {
	createCmd.Flags().Int32Var(&createNX, "nx", 64, "columns")
	createCmd.Flags().Int32Var(&createNY, "ny", 64, "rows")
	createCmd.Flags().Int32Var(&createNZ, "nz", 1, "total sections (planes × waves × times)")
	createCmd.Flags().Int16Var(&createWaves, "waves", 1, "number of wavelengths")
	createCmd.Flags().Int16Var(&createTimes, "times", 1, "number of time points")
	createCmd.Flags().Int32Var(&createMode, "mode", int32(dv.Short), "pixel type code")
}

func errOpen(path string) error {
	return fmt.Errorf("could not open %s", path)
}
