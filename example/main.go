// Example opens a window with one component of every kind and runs the
// dispatcher against it.
//
// Prerequisites:
//
//	devbox shell              # provides Go + OpenGL/X11 headers
//	go run ./example/ --log-level debug
//
// Scroll to zoom, drag with the right button to pan.
package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/go-theft-auto/guinness"
	"github.com/go-theft-auto/guinness/backend/opengl"
	"github.com/go-theft-auto/guinness/config"
	"github.com/go-theft-auto/guinness/glyph"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

type rootFlags struct {
	configPath  string
	logLevel    string
	width       int
	height      int
	metricsAddr string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "example",
		Short:         "Interactive demo of every guinness component kind",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "YAML configuration file")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Override the configured log level")
	cmd.Flags().IntVar(&flags.width, "width", 800, "Window width")
	cmd.Flags().IntVar(&flags.height, "height", 600, "Window height")
	cmd.Flags().StringVar(&flags.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9090")

	return cmd
}

func run(ctx context.Context, flags *rootFlags) error {
	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if flags.logLevel != "" {
		cfg.Dispatcher.LogLevel = flags.logLevel
	}

	logger, err := guinness.NewLogger(guinness.LogOptions{
		Level:         cfg.Dispatcher.LogLevel,
		HumanReadable: cfg.Dispatcher.HumanLogs,
	})
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(flags.width, flags.height, "guinness example", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(flags.width, flags.height)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	design, err := cfg.Theme.Design()
	if err != nil {
		return err
	}
	design.SetLogger(logger.With().Str("component", "design").Logger())

	atlas, err := glyph.Default()
	if err != nil {
		return fmt.Errorf("glyph atlas: %w", err)
	}
	if err := renderer.Upload(atlas.Atlas()); err != nil {
		return fmt.Errorf("upload atlas: %w", err)
	}
	font := atlas.Font(cfg.Theme.FontSize, guinness.ColorNone)

	display := guinness.NewDisplay(guinness.WithDisplayLogger(logger.With().Str("component", "display").Logger()))
	display.Viewport().SetScale(cfg.Viewport.Scale)
	display.Viewport().SetOffset(guinness.Vec2{X: cfg.Viewport.OffsetX, Y: cfg.Viewport.OffsetY})

	input := opengl.NewGLFWInputAdapter(window, display)
	defer input.Destroy()

	demo, err := buildDemo(display, design, font, input.Input(), logger)
	if err != nil {
		return err
	}
	for _, img := range demo.images {
		if err := renderer.Upload(img); err != nil {
			return fmt.Errorf("upload image: %w", err)
		}
	}

	reg := prometheus.NewRegistry()
	dispatcher := guinness.NewDispatcher(display, input.Input(),
		guinness.WithPoolSize(cfg.Dispatcher.PoolSize),
		guinness.WithTickInterval(time.Duration(cfg.Dispatcher.TickIntervalMs)*time.Millisecond),
		guinness.WithLogger(logger.With().Str("component", "dispatcher").Logger()),
		guinness.WithMetrics(reg),
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := dispatcher.Run(gctx)
		dispatcher.Wait()
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	if flags.metricsAddr != "" {
		srv := &http.Server{
			Addr:              flags.metricsAddr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			logger.Info().Str("addr", flags.metricsAddr).Msg("serving metrics")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, done := context.WithTimeout(context.Background(), time.Second)
			defer done()
			return srv.Shutdown(shutdownCtx)
		})
	}

	dl := guinness.AcquireDrawList()
	defer guinness.ReleaseDrawList(dl)

	last := glfw.GetTime()
	var dragFrom guinness.Vec2
	dragging := false

	for !window.ShouldClose() && gctx.Err() == nil {
		glfw.PollEvents()
		now := glfw.GetTime()
		in := input.Update(float32(now - last))
		last = now

		if wheel := in.TakeMouseWheel(); wheel.Y != 0 {
			display.Viewport().Zoom(1 + 0.1*wheel.Y)
		}
		if in.MouseDown(guinness.MouseButtonRight) {
			pos := in.MousePos()
			if dragging {
				display.Viewport().Pan(pos.Sub(dragFrom).Mul(1 / display.Viewport().Scale()))
			}
			dragFrom, dragging = pos, true
		} else {
			dragging = false
		}

		w, h := window.GetFramebufferSize()
		renderer.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		dl.Clear()
		dl.PushClipRect(0, 0, float32(w), float32(h))
		display.Render(dl)
		dl.PopClipRect()
		if err := renderer.Render(dl); err != nil {
			cancel()
			_ = g.Wait()
			return fmt.Errorf("render: %w", err)
		}

		window.SwapBuffers()
	}

	cancel()
	return g.Wait()
}

type demo struct {
	images []*guinness.Image
}

// buildDemo attaches one component of every kind to display.
func buildDemo(display *guinness.Display, design *guinness.Design, font *guinness.Font, input *guinness.InputState, logger zerolog.Logger) (*demo, error) {
	base := []guinness.ComponentOption{guinness.WithDesign(design), guinness.WithFont(font)}
	with := func(opts ...guinness.ComponentOption) []guinness.ComponentOption {
		return append(append([]guinness.ComponentOption{}, base...), opts...)
	}

	background := guinness.NewLayer("background")
	controls := guinness.NewLayer("controls")
	overlay := guinness.NewLayer("overlay")
	overlay.SetVisible(false)

	var clicks atomic.Int64

	status, err := guinness.NewDescription("clicks: 0", with(
		guinness.WithLength(24),
		guinness.WithLocation(40, 20),
	)...)
	if err != nil {
		return nil, err
	}

	button, err := guinness.NewButton("Click me", with(
		guinness.WithLocation(40, 70),
		guinness.OnClick(func(c *guinness.Component) {
			n := clicks.Add(1)
			status.SetValue(fmt.Sprintf("clicks: %d", n))
			logger.Info().Object("component", c).Int64("clicks", n).Msg("button clicked")
		}),
	)...)
	if err != nil {
		return nil, err
	}

	slow, err := guinness.NewButton("Slow job", with(
		guinness.WithLocation(240, 70),
		guinness.WithLogic(func(l *guinness.Logic) {
			l.SetMultithreading(true)
			l.SetDelayMs(150)
		}),
		guinness.OnClick(func(c *guinness.Component) {
			time.Sleep(time.Second)
			logger.Info().Object("component", c).Msg("slow job finished")
		}),
	)...)
	if err != nil {
		return nil, err
	}

	name, err := guinness.NewTextfield(16, with(guinness.WithLocation(40, 130))...)
	if err != nil {
		return nil, err
	}

	toggle, err := guinness.NewCheckbox(false, with(
		guinness.WithLocation(40, 190),
		guinness.OnClick(func(c *guinness.Component) {
			checked := c.Kind().(*guinness.CheckboxKind).Checked()
			overlay.SetVisible(checked)
		}),
	)...)
	if err != nil {
		return nil, err
	}
	toggleLabel, err := guinness.NewDescription("show overlay", with(guinness.WithLocation(70, 186))...)
	if err != nil {
		return nil, err
	}

	choices, err := guinness.NewSelectionBox(true, []string{"small", "medium", "large"}, with(
		guinness.WithLocation(40, 240),
		guinness.WithLogic(func(l *guinness.Logic) { l.SetActsOnHover(false) }),
		guinness.OnClick(func(c *guinness.Component) {
			if i := c.SelectAt(input.MousePos()); i >= 0 {
				logger.Info().Int("option", i).Msg("size selected")
			}
		}),
	)...)
	if err != nil {
		return nil, err
	}

	arrow, err := guinness.NewPolyButton("Go", guinness.Polygon{
		{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 130, Y: 25}, {X: 100, Y: 50}, {X: 0, Y: 50},
	}, with(
		guinness.WithLocation(420, 70),
		guinness.WithTextAlign(guinness.AlignCenter, guinness.Vec2{X: -10}),
		guinness.WithPrimaryColor(guinness.RGBA(0x70, 0xA0, 0xD0, 0xFF)),
	)...)
	if err != nil {
		return nil, err
	}

	panel, err := guinness.NewRectangle(guinness.Rect{X: 20, Y: 10, W: 560, H: 380},
		guinness.RGBA(0x30, 0x30, 0x38, 0xFF), guinness.WithDesign(design))
	if err != nil {
		return nil, err
	}

	gradient := guinness.NewImage(gradientImage(96, 96))
	picture, err := guinness.NewImageComponent(gradient, guinness.Rect{X: 420, Y: 160, W: 96, H: 96}, guinness.WithDesign(design))
	if err != nil {
		return nil, err
	}

	hint, err := guinness.NewDescription("overlay layer", with(
		guinness.WithLocation(400, 300),
		guinness.WithMovable(false),
		guinness.WithScalable(false),
	)...)
	if err != nil {
		return nil, err
	}

	// Paths ignore pan and zoom; the design logs a warning once when they
	// are painted under a transformed viewport.
	underline, err := guinness.NewPath(guinness.Polygon{{X: 40, Y: 46}, {X: 220, Y: 46}, {X: 220, Y: 48}, {X: 40, Y: 48}},
		true, guinness.RGBA(0xE0, 0xC0, 0x40, 0xFF), guinness.WithDesign(design))
	if err != nil {
		return nil, err
	}

	badge, err := guinness.NewComponent(guinness.UnknownKind{Name: "badge"}, with(
		guinness.WithValue("v1"),
		guinness.WithLocation(520, 20),
	)...)
	if err != nil {
		return nil, err
	}

	if err := display.Attach(background, panel, picture, underline); err != nil {
		return nil, err
	}
	if err := display.Attach(controls, status, button, slow, name, toggle, toggleLabel, choices, arrow, badge); err != nil {
		return nil, err
	}
	if err := display.Attach(overlay, hint); err != nil {
		return nil, err
	}

	return &demo{images: []*guinness.Image{gradient}}, nil
}

func gradientImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(255 * x / w),
				G: uint8(255 * y / h),
				B: 160,
				A: 255,
			})
		}
	}
	return img
}
