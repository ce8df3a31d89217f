package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iburimskiy/radial-morph/internal/animation"
	"github.com/iburimskiy/radial-morph/internal/config"
	"github.com/iburimskiy/radial-morph/internal/export"
	"github.com/iburimskiy/radial-morph/internal/game"
	"github.com/iburimskiy/radial-morph/internal/geom"
	"github.com/iburimskiy/radial-morph/internal/logging"
)

var (
	configFile string
	seed       int64
	logLevel   string
	devLog     bool

	// export flags
	at     time.Duration
	out    string
	width  int
	height int
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "radialmorph",
		Short:         "morphing radial line and ribbon animation",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runWindow,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "yaml config file")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&devLog, "dev-log", false, "human readable console logs")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "open the animation window",
		Args:  cobra.NoArgs,
		RunE:  runWindow,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render one frame to a PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(export.PNG, "frame.png")
		},
	}
	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "render one frame to an SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(export.SVG, "frame.svg")
		},
	}
	for _, c := range []*cobra.Command{snapshotCmd, svgCmd} {
		c.Flags().DurationVar(&at, "at", 3*time.Second, "elapsed animation time of the frame")
		c.Flags().StringVarP(&out, "out", "o", "", "output file (default frame.png / frame.svg)")
		c.Flags().IntVar(&width, "width", 800, "frame width")
		c.Flags().IntVar(&height, "height", 600, "frame height")
	}

	rootCmd.AddCommand(runCmd, snapshotCmd, svgCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup loads config and flag overrides, then builds the logger and random source.
func setup() (*config.Config, *zap.Logger, geom.Source, error) {
	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, nil, nil, err
		}
		cfg = loaded
	}
	if seed != 0 {
		cfg.Animation.Seed = seed
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if devLog {
		cfg.Log.Development = true
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, nil, err
	}
	rnd, used := animation.NewSource(cfg.Animation.Seed)
	log.Info("starting",
		zap.Int64("seed", used),
		zap.Duration("cycle", cfg.Animation.Duration),
		zap.String("easing", cfg.Animation.Easing))
	return cfg, log, rnd, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, log, rnd, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()
	return game.Run(cfg, rnd, log)
}

type exporter func(io.Writer, *config.Config, export.Options, geom.Source, *zap.Logger) error

func runExport(render exporter, defaultOut string) error {
	cfg, log, rnd, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	path := out
	if path == "" {
		path = defaultOut
	}
	opts := export.Options{Width: width, Height: height, At: at}
	if err := writeFrame(path, render, cfg, opts, rnd, log); err != nil {
		return err
	}
	log.Info("frame written", zap.String("path", path), zap.Duration("at", at), zap.Int("width", width), zap.Int("height", height))
	return nil
}

// writeFrame renders into path, removing the file if rendering fails.
func writeFrame(path string, render exporter, cfg *config.Config, opts export.Options, rnd geom.Source, log *zap.Logger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := render(f, cfg, opts, rnd, log); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
