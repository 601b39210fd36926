package replay

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/ghostreplay/log"
	"github.com/mpapenbr/ghostreplay/pkg/config"
	"github.com/mpapenbr/ghostreplay/pkg/ghost/headless"
	"github.com/mpapenbr/ghostreplay/pkg/ghost/kart"
	"github.com/mpapenbr/ghostreplay/pkg/recording"
)

func NewPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play <recording>",
		Short: "replays a recorded ghost without graphics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return play(ctx, args[0])
		},
	}
	cmd.Flags().Float64Var(&config.TickRate,
		"tick-rate",
		60,
		"number of updates per replay second")
	cmd.Flags().Float64Var(&config.Speed,
		"speed",
		1,
		"playback speed (0 means: go as fast as possible)")
	cmd.Flags().Float64Var(&config.EngineMaxSpeed,
		"engine-max-speed",
		30,
		"engine max speed of the kart in m/s (used for nitro intensity)")
	cmd.Flags().Float64Var(&config.LowestPoint,
		"lowest-point",
		0.05,
		"lowest point of the kart model")
	cmd.Flags().Float64Var(&config.KartLength,
		"kart-length",
		1.5,
		"length of the kart model")
	cmd.Flags().BoolVar(&config.EnableTelemetry,
		"enable-telemetry",
		false,
		"enables telemetry (metrics are written to stderr)")
	cmd.Flags().DurationVar(&config.TelemetryInterval,
		"telemetry-interval",
		10*time.Second,
		"interval for writing metrics")
	return cmd
}

//nolint:funlen // summary logging
func play(ctx context.Context, path string) error {
	if config.EnableTelemetry {
		log.Info("Enabling telemetry")
		telemetry, err := config.SetupTelemetry(ctx)
		if err != nil {
			log.Warn("Could not setup telemetry", log.ErrorField(err))
		} else {
			defer func() {
				//nolint:contextcheck // ctx may already be cancelled here
				if err := telemetry.Shutdown(context.Background()); err != nil {
					log.Warn("Could not shutdown telemetry", log.ErrorField(err))
				}
			}()
		}
	}

	rec, err := recording.Open(path)
	if err != nil {
		return fmt.Errorf("could not read recording: %w", err)
	}

	stats := &headless.Stats{}
	k, err := kart.NewGhostKart(headless.NewDeps(
		config.LowestPoint, config.KartLength, config.EngineMaxSpeed, stats))
	if err != nil {
		return err
	}
	n, err := recording.Feed(k, rec)
	if err != nil {
		return fmt.Errorf("could not load recording: %w", err)
	}
	log.Info("Recording loaded",
		log.String("file", path),
		log.String("kart", rec.Kart),
		log.String("ghost", k.ID().String()),
		log.Int("samples", n))

	start := time.Now()
	ticks, err := NewRunner(k,
		WithTickRate(config.TickRate),
		WithSpeed(config.Speed)).Run(ctx)
	if errors.Is(err, context.Canceled) {
		log.Info("Replay interrupted", log.Int("ticks", ticks))
		return nil
	}
	if err != nil {
		return err
	}
	log.Info("Replay finished",
		log.Int("ticks", ticks),
		log.Int("frames", stats.Frames),
		log.Int("zippers", stats.Zippers),
		log.Int("nitroFrames", stats.NitroFrames),
		log.Float64("maxNitro", stats.MaxNitro),
		log.Float64("distance", stats.Distance),
		log.Elapsed(start))
	return nil
}
