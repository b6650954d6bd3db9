package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	"github.com/iburimskiy/fortune-wheel/internal/config"
	"github.com/iburimskiy/fortune-wheel/internal/game"
	"github.com/iburimskiy/fortune-wheel/internal/headless"
	"github.com/iburimskiy/fortune-wheel/internal/snapshot"
	"github.com/iburimskiy/fortune-wheel/internal/sound"
	"github.com/iburimskiy/fortune-wheel/internal/wheel"
)

const snapshotSize = 512

func main() {
	labels := flag.String("labels", "", "text file with one label per line (overrides WHEEL_LABELS_FILE)")
	noWindow := flag.Bool("headless", false, "spin once without a window and print the winner")
	snapshotPath := flag.String("snapshot", "", "write a PNG of the wheel after every spin (overrides WHEEL_SNAPSHOT)")
	seed := flag.Uint64("seed", 0, "random seed (overrides WHEEL_SEED)")
	flag.Parse()

	setupLogging()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("config")
	}
	if *labels != "" {
		cfg.LabelsFile = *labels
	}
	if *snapshotPath != "" {
		cfg.Snapshot = *snapshotPath
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	model, err := buildModel(cfg)
	if err != nil {
		log.WithError(err).Fatal("wheel")
	}
	rng := wheel.NewSource(cfg.SeedOrClock())

	var observers []wheel.Observer
	if cfg.Snapshot != "" {
		observers = append(observers, &snapshot.Saver{
			Path:     cfg.Snapshot,
			Model:    model,
			Geometry: snapshot.DefaultGeometry(snapshotSize),
		})
	}

	if *noWindow {
		if err := runHeadless(cfg, model, rng, observers); err != nil {
			log.WithError(err).Fatal("headless spin")
		}
		return
	}

	player, err := sound.NewPlayer(sound.Options{
		Enabled:   cfg.Sound,
		Volume:    cfg.Volume,
		ClickFile: cfg.ClickSound,
	})
	if err != nil {
		log.WithError(err).Warn("sound disabled")
		player = nil
	}
	defer player.Close()

	g := game.New(cfg, model, rng, player, observers...)

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Wheel of Fortune")
	ebiten.SetTPS(cfg.TPS)

	log.WithFields(log.Fields{
		"segments": model.SegmentCount(),
		"tps":      cfg.TPS,
		"policy":   cfg.Policy.String(),
	}).Info("wheel ready")

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.WithError(err).Fatal("window")
	}
}

func buildModel(cfg *config.Config) (*wheel.Model, error) {
	palette := wheel.DefaultPalette()
	if cfg.PaletteFile != "" {
		p, err := config.LoadPalette(cfg.PaletteFile)
		if err != nil {
			return nil, err
		}
		palette = p
	}

	model := wheel.NewModel(palette)
	if cfg.LabelsFile != "" {
		lines, err := wheel.LoadFile(cfg.LabelsFile)
		if err != nil {
			return nil, err
		}
		if err := model.LoadFromLines(lines); err != nil {
			return nil, err
		}
	}
	return model, nil
}

func runHeadless(cfg *config.Config, model *wheel.Model, rng wheel.Source, observers []wheel.Observer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	observers = append(observers, &headless.ProgressLogger{Every: 50})
	ctrl := wheel.NewController(model, rng,
		wheel.WithPolicy(cfg.Policy),
		wheel.WithLogger(log.StandardLogger()),
		wheel.WithObserver(wheel.Observers(observers)),
	)

	res, err := headless.Run(ctx, ctrl, cfg.TickInterval())
	if err != nil {
		return err
	}
	fmt.Printf("Winner: %s\n", res.Label)
	return nil
}

// setupLogging configures the log format.
func setupLogging() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	log.SetOutput(os.Stderr)
	log.SetLevel(log.InfoLevel)
}
