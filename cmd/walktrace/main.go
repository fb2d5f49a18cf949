// Command walktrace records a walking trajectory over a floor-plan image.
//
// A reference floor plan is shown scaled to the window; pressing space
// arms a short countdown and then records the mouse position over the
// plan at 60 Hz, mapping pixels into the configured logical coordinate
// system. Pressing space again stops the recording and writes the
// trajectory to a CSV file.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	walktrace "github.com/kajiLabTeam/corrent-trajectory-creation-app"
	"github.com/kajiLabTeam/corrent-trajectory-creation-app/internal/config"
	"github.com/kajiLabTeam/corrent-trajectory-creation-app/internal/imutil"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file (optional)")
		imagePath  = flag.String("image", "", "floor-plan image (PNG or JPEG)")
		maxX       = flag.Float64("maxx", 0, "logical width (0 = image pixel width)")
		maxY       = flag.Float64("maxy", 0, "logical height (0 = image pixel height)")
		output     = flag.String("out", "", "CSV output path")
		countdown  = flag.Int("countdown", 0, "start delay in milliseconds")
		snapshot   = flag.Bool("snapshot", false, "also save a PNG of the traced surface")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	walktrace.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	cfg := config.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	// Flags override file values.
	if *imagePath != "" {
		cfg.Image = *imagePath
	}
	if *maxX > 0 {
		cfg.MaxX = *maxX
	}
	if *maxY > 0 {
		cfg.MaxY = *maxY
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *countdown > 0 {
		cfg.CountdownMS = *countdown
	}
	if *snapshot {
		cfg.Snapshot = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	rec := walktrace.NewRecorder(
		walktrace.WithCountdown(time.Duration(cfg.CountdownMS)*time.Millisecond),
		walktrace.WithTraceStyle(walktrace.TraceStyle{
			Width: cfg.Trace.Width,
			Color: walktrace.Hex(cfg.Trace.Color),
		}),
		walktrace.WithExporter(&walktrace.CSVExporter{Path: cfg.Output}),
	)

	if cfg.Image != "" {
		img, err := imutil.Load(cfg.Image)
		if err != nil {
			// Surface the decode failure but keep the window usable in
			// the "no image loaded" state.
			walktrace.Logger().Warn("image load failed", "path", cfg.Image, "err", err)
		} else if err := rec.SetImage(img); err != nil {
			log.Fatalf("Failed to install image: %v", err)
		}
	}
	if cfg.MaxX > 0 && cfg.MaxY > 0 {
		if err := rec.SetBounds(walktrace.Bounds{MaxX: cfg.MaxX, MaxY: cfg.MaxY}); err != nil {
			log.Fatalf("Invalid logical bounds: %v", err)
		}
	}

	app := NewApp(rec, cfg.Snapshot)

	ebiten.SetWindowTitle("walktrace")
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatalf("walktrace exited: %v", err)
	}
}
