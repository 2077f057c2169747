package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/robert-malhotra/go-dv/dv"
)

var headerOutput string

var headerCmd = &cobra.Command{
	Use:   "header <file>",
	Short: "Print the volume header",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := dv.Open(args[0], dv.WithLogger(log))
		if err != nil {
			return err
		}
		defer f.Close()

		h := f.Header()
		output := cfg.Output
		if cmd.Flags().Changed("output") {
			output = headerOutput
		}

		switch output {
		case "text":
			return h.Dump(cmd.OutOrStdout())
		case "yaml":
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(newHeaderView(f.Path(), f.ByteOrder().String(), &h)); err != nil {
				return err
			}
			return enc.Close()
		default:
			return fmt.Errorf("unknown output format %q", output)
		}
	},
}

func init() {
	headerCmd.Flags().StringVarP(&headerOutput, "output", "o", "text", "Output format: text or yaml")
}

// headerView is the YAML rendering of a header.
type headerView struct {
	Path        string     `yaml:"path"`
	ByteOrder   string     `yaml:"byte_order"`
	Size        [3]int32   `yaml:"size"`
	Planes      int        `yaml:"planes"`
	Mode        string     `yaml:"mode"`
	Start       [3]int32   `yaml:"start"`
	Sampling    [3]int32   `yaml:"sampling"`
	Spacing     [3]float32 `yaml:"spacing"`
	CellAngles  [3]float32 `yaml:"cell_angles"`
	AxisMap     [3]int32   `yaml:"axis_map"`
	Min         float32    `yaml:"min"`
	Max         float32    `yaml:"max"`
	Mean        float32    `yaml:"mean"`
	ExtHeader   int32      `yaml:"extended_header_bytes"`
	ImageType   string     `yaml:"image_type"`
	Lens        int16      `yaml:"lens"`
	NumTimes    int16      `yaml:"num_times"`
	NumWaves    int16      `yaml:"num_waves"`
	Wavelengths []int16    `yaml:"wavelengths"`
	Sequence    string     `yaml:"sequence"`
	Tilt        [3]float32 `yaml:"tilt"`
	Origin      [3]float32 `yaml:"origin"`
	Title       string     `yaml:"title"`
	Titles      []string   `yaml:"titles,omitempty"`
}

func newHeaderView(path, order string, h *dv.Header) headerView {
	return headerView{
		Path:        path,
		ByteOrder:   order,
		Size:        [3]int32{h.NX, h.NY, h.NZ},
		Planes:      h.PlaneCount(),
		Mode:        h.Mode.String(),
		Start:       [3]int32{h.NXStart, h.NYStart, h.NZStart},
		Sampling:    [3]int32{h.MX, h.MY, h.MZ},
		Spacing:     [3]float32{h.XLen, h.YLen, h.ZLen},
		CellAngles:  [3]float32{h.Alpha, h.Beta, h.Gamma},
		AxisMap:     [3]int32{h.MapC, h.MapR, h.MapS},
		Min:         h.AMin,
		Max:         h.AMax,
		Mean:        h.AMean,
		ExtHeader:   h.InBSym,
		ImageType:   h.ImageType(),
		Lens:        h.Lens,
		NumTimes:    h.NumTimes,
		NumWaves:    h.NumWaves,
		Wavelengths: h.Wavelengths(),
		Sequence:    h.Sequence(),
		Tilt:        [3]float32{h.TiltX, h.TiltY, h.TiltZ},
		Origin:      [3]float32{h.XOrig, h.YOrig, h.ZOrig},
		Title:       h.Title(),
		Titles:      h.Titles(),
	}
}
