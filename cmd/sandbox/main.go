package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hubastard/pointpixel"
	"github.com/hubastard/pointpixel/engine/assets"
	"github.com/hubastard/pointpixel/engine/core"
	"github.com/hubastard/pointpixel/engine/geom"
	"github.com/hubastard/pointpixel/engine/platform"
	"github.com/hubastard/pointpixel/engine/profiler"
	"github.com/hubastard/pointpixel/engine/text"
)

type options struct {
	backend string
	title   string
	x, y    int
	w, h    int
	scale   int
	join    bool
	lazy    bool
	vsync   bool
	frames  int
	out     string
	sprite  string
	font    string
	fbdev   string
	profile string
	verbose bool
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.backend, "backend", "glfw", "glfw, term, fb or headless")
	flag.StringVar(&o.title, "title", "PointRenderPixel sandbox", "window title")
	flag.IntVar(&o.x, "x", 33, "window x position")
	flag.IntVar(&o.y, "y", 33, "window y position")
	flag.IntVar(&o.w, "w", 160, "width in points")
	flag.IntVar(&o.h, "h", 100, "height in points")
	flag.IntVar(&o.scale, "scale", 4, "pixels per point")
	flag.BoolVar(&o.join, "join", true, "block in Start until the window closes")
	flag.BoolVar(&o.lazy, "lazy", false, "wait for events instead of polling")
	flag.BoolVar(&o.vsync, "vsync", true, "sync buffer swaps to the display (glfw)")
	flag.IntVar(&o.frames, "frames", 120, "frames to render (headless)")
	flag.StringVar(&o.out, "out", "", "write the last frame as PNG (headless)")
	flag.StringVar(&o.sprite, "sprite", "", "PNG drawn point by point")
	flag.StringVar(&o.font, "font", "", "TTF used for the overlay text")
	flag.StringVar(&o.fbdev, "fbdev", "/dev/fb0", "framebuffer device (fb)")
	flag.StringVar(&o.profile, "profile", "", "write a speedscope profile of the frame loop")
	flag.BoolVar(&o.verbose, "v", false, "debug logging")
	flag.Parse()
	return o
}

func main() {
	o := parseFlags()

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	// the terminal backend owns the screen while it runs
	if o.backend == "term" {
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	core.SetLogger(logger)

	var headless *platform.Headless
	var backend core.Backend
	switch o.backend {
	case "glfw":
		backend = platform.GLFW(o.vsync)
	case "term":
		backend = platform.Terminal()
	case "fb":
		backend = platform.Framebuffer(o.fbdev)
	case "headless":
		headless = platform.NewHeadless(o.frames)
		backend = headless.Backend()
	default:
		fatal(fmt.Errorf("unknown backend %q", o.backend))
	}

	r := pointpixel.Instance(backend)
	if err := r.Construct(o.title, geom.V(o.x, o.y), geom.V(o.w, o.h), o.scale); err != nil {
		fatal(err)
	}
	r.SetJoinOnStart(o.join)
	r.SetAutoClear(true)
	r.SetWaitEvents(o.lazy)

	app := &App{title: o.title}
	if o.sprite != "" {
		img, err := assets.LoadPNG(o.sprite)
		if err != nil {
			fatal(err)
		}
		app.sprite = img
	}
	app.font = text.Default()
	if o.font != "" {
		f, err := text.LoadTTF(o.font, 10)
		if err != nil {
			fatal(err)
		}
		defer f.Close()
		app.font = f
	}

	var layers core.LayerStack
	layers.Push(&Layer2D{app: app})
	layers.Push(&LayerDebug{app: app})
	r.SetHooks(&layers)
	r.SetOnTickLate(app.OnTickLate)

	if o.profile != "" {
		profiler.Enable(0)
	}
	if err := r.Start(); err != nil {
		fatal(err)
	}
	if !o.join {
		slog.Info("render loop running in the background")
		if err := r.Wait(); err != nil {
			fatal(err)
		}
	}

	if o.profile != "" {
		profiler.Disable()
		if err := profiler.Write(o.profile); err != nil {
			fatal(err)
		}
		slog.Info("profile written", "path", o.profile)
	}

	if headless != nil && o.out != "" {
		frame := headless.Window().Frame()
		if frame == nil {
			fatal(errors.New("no frame rendered"))
		}
		if err := assets.SavePNG(o.out, frame); err != nil {
			fatal(err)
		}
		slog.Info("frame written", "path", o.out)
	}
}

func fatal(err error) {
	if errors.Is(err, core.ErrWindowCreation) {
		slog.Error("cannot open a window", "err", err)
	} else {
		slog.Error("sandbox", "err", err)
	}
	os.Exit(1)
}
