package cmd

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-drift/multistate/pkg/animation"
	"github.com/go-drift/multistate/pkg/config"
	"github.com/go-drift/multistate/pkg/multistate"
	"github.com/go-drift/multistate/pkg/snapshot"
	"github.com/go-drift/multistate/pkg/view"
)

// frameInterval is the simulated time between demo frames.
const frameInterval = 16 * time.Millisecond

// maxFramesPerState bounds pumping in case a fade never completes.
const maxFramesPerState = 1000

func init() {
	RegisterCommand(&Command{
		Name:  "demo",
		Short: "Switch a container through states",
		Long: `Build a MultiStateView and apply each state in order.

The container gets a "content" view plus the loading, empty and error
templates named in the config (built-in templates by default). Every
state change prints a line. Fades are driven frame by frame on a
simulated clock, so the demo runs instantly.

Flags:
  --config FILE    Read options from FILE (default: ./multistate.yaml if present)
  --animate        Fade between states
  --frames DIR     Write a PNG per frame into DIR
  --size WxH       Frame size in pixels (default 160x120)
  --max WxH        Scale written frames down to fit within WxH`,
		Usage: "msv demo [--config FILE] [--animate] [--frames DIR] <state>...",
		Run:   runDemo,
	})
}

type demoOptions struct {
	configPath string
	animate    bool
	framesDir  string
	width      int
	height     int
	maxWidth   int
	maxHeight  int
	states     []string
}

func parseDemoArgs(args []string) (demoOptions, error) {
	opts := demoOptions{}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--animate":
			opts.animate = true
		case "--config":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--config requires a file path")
			}
			opts.configPath = args[i+1]
			i++
		case "--frames":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--frames requires a directory")
			}
			opts.framesDir = args[i+1]
			i++
		case "--size":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--size requires WxH")
			}
			if _, err := fmt.Sscanf(args[i+1], "%dx%d", &opts.width, &opts.height); err != nil {
				return opts, fmt.Errorf("invalid --size %q: %w", args[i+1], err)
			}
			i++
		case "--max":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--max requires WxH")
			}
			if _, err := fmt.Sscanf(args[i+1], "%dx%d", &opts.maxWidth, &opts.maxHeight); err != nil ||
				opts.maxWidth <= 0 || opts.maxHeight <= 0 {
				return opts, fmt.Errorf("invalid --max %q", args[i+1])
			}
			i++
		default:
			if strings.HasPrefix(args[i], "--") {
				return opts, fmt.Errorf("unknown flag %s", args[i])
			}
			opts.states = append(opts.states, args[i])
		}
	}
	if len(opts.states) == 0 {
		return opts, fmt.Errorf("at least one state is required\n\nUsage: msv demo [flags] <state>...")
	}
	return opts, nil
}

func runDemo(args []string) error {
	opts, err := parseDemoArgs(args)
	if err != nil {
		return err
	}
	return demo(opts)
}

// frameClock is the simulated clock demo pumps fades with.
type frameClock struct {
	now time.Time
}

func (c *frameClock) Now() time.Time { return c.now }

func loadDemoConfig(path string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadOptional(".")
	}
	if err != nil {
		return nil, err
	}
	if cfg.LoadingView == "" {
		cfg.LoadingView = "loading"
	}
	if cfg.EmptyView == "" {
		cfg.EmptyView = "empty"
	}
	if cfg.ErrorView == "" {
		cfg.ErrorView = "error"
	}
	return cfg, nil
}

// stateChangePrinter prints every state change, one per line.
type stateChangePrinter struct{}

func (stateChangePrinter) OnStateChanged(state multistate.ViewState) {
	fmt.Fprintf(stdout, "State changed, current state is STATE_%s\n", strings.ToUpper(state.String()))
}

func demo(opts demoOptions) error {
	cfg, err := loadDemoConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.animate {
		cfg.AnimateViewChanges = true
	}
	msOpts, err := cfg.Options(builtinTemplates())
	if err != nil {
		return err
	}
	// Fades go through the frame-driven Fader; the wrapper counts them for
	// the summary.
	fader := animation.NewFader()
	if msOpts.FadeCurve != nil {
		fader.Curve = msOpts.FadeCurve
	}
	fades := 0
	msOpts.Animator = multistate.AnimatorFunc(func(target animation.Alpha, from, to float64, d time.Duration, done func()) func() {
		fades++
		return fader.Fade(target, from, to, d, done)
	})
	msv, err := multistate.New(msOpts)
	if err != nil {
		return err
	}
	if err := msv.AddView(view.NewBox("content")); err != nil {
		return err
	}
	msv.SetOnStateChangeListener(stateChangePrinter{})

	clock := &frameClock{now: time.Unix(0, 0)}
	prev := animation.SetClock(clock)
	defer animation.SetClock(prev)
	defer animation.StopAllTickers()

	if opts.framesDir != "" {
		if err := os.MkdirAll(opts.framesDir, 0o755); err != nil {
			return fmt.Errorf("failed to create frames directory: %w", err)
		}
	}
	frame := 0
	writeFrame := func() error {
		if opts.framesDir == "" {
			return nil
		}
		var img image.Image = snapshot.Render(msv, snapshot.Options{Width: opts.width, Height: opts.height})
		if opts.maxWidth > 0 {
			img = snapshot.Fit(img, opts.maxWidth, opts.maxHeight)
		}
		path := filepath.Join(opts.framesDir, fmt.Sprintf("frame_%04d.png", frame))
		frame++
		return snapshot.WriteFile(path, img)
	}

	if err := msv.Attach(); err != nil {
		return err
	}
	defer msv.Detach()
	if err := writeFrame(); err != nil {
		return err
	}

	for _, name := range opts.states {
		state, err := multistate.ParseViewState(name)
		if err != nil {
			return err
		}
		if err := msv.SetViewState(state); err != nil {
			return err
		}
		pumped := 0
		for animation.HasActiveTickers() && pumped < maxFramesPerState {
			clock.now = clock.now.Add(frameInterval)
			animation.StepTickers()
			pumped++
			if err := writeFrame(); err != nil {
				return err
			}
		}
		if pumped == 0 {
			if err := writeFrame(); err != nil {
				return err
			}
		}
	}

	fmt.Fprintln(stdout)
	fmt.Fprint(stdout, snapshot.Text(msv))
	if fades > 0 {
		fmt.Fprintf(stdout, "\nran %d fades\n", fades)
	}
	if opts.framesDir != "" {
		fmt.Fprintf(stdout, "\nwrote %d frames to %s\n", frame, opts.framesDir)
	}
	return nil
}
