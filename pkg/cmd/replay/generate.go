package replay

import (
	"github.com/spf13/cobra"

	"github.com/mpapenbr/ghostreplay/log"
	"github.com/mpapenbr/ghostreplay/pkg/recording"
)

func NewGenerateCmd() *cobra.Command {
	circle := recording.DefaultCircleConfig()
	var kartName string
	cmd := &cobra.Command{
		Use:   "generate <recording>",
		Short: "writes a synthetic recording of a kart driving in circles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data := recording.Circle(circle)
			if err := recording.Save(args[0], recording.FromSamples(kartName, data)); err != nil {
				return err
			}
			log.Info("Recording written",
				log.String("file", args[0]),
				log.Int("samples", len(data)))
			return nil
		},
	}
	cmd.Flags().StringVar(&kartName, "kart", "tux", "kart identifier stored in the recording")
	cmd.Flags().Float64Var(&circle.Radius, "radius", circle.Radius, "radius of the circle in m")
	cmd.Flags().Float64Var(&circle.LapTime, "lap-time", circle.LapTime, "duration of a lap in s")
	cmd.Flags().Float64Var(&circle.Rate, "rate", circle.Rate, "samples per second")
	cmd.Flags().IntVar(&circle.Laps, "laps", circle.Laps, "number of laps")
	cmd.Flags().Float64Var(&circle.MaxSteer, "steer", circle.MaxSteer, "steering angle")
	return cmd
}
