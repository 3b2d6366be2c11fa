package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/ocean/internal/config"
	"github.com/Faultbox/ocean/internal/engine/control"
	"github.com/Faultbox/ocean/internal/engine/debug"
	"github.com/Faultbox/ocean/internal/engine/input"
	"github.com/Faultbox/ocean/internal/engine/loop"
	"github.com/Faultbox/ocean/internal/engine/renderer"
	"github.com/Faultbox/ocean/internal/engine/scene"
	"github.com/Faultbox/ocean/internal/engine/window"
	"github.com/Faultbox/ocean/internal/logger"
)

// Title is the window title.
const Title = "Ocean"

// Viewer hosts the pipeline in an SDL window with keyboard controls.
type Viewer struct {
	config *config.Config
	log    *zap.Logger

	window   *window.Window
	input    *input.Input
	state    *State
	scene    *scene.Scene
	keyboard *control.Keyboard
	capture  *debug.ScreenshotCapture
	loop     *loop.Loop

	showStatus  bool
	showFPS     bool
	shownFPS    float32
	pendingShot bool
}

// NewViewer opens the window, builds the pipeline and uploads it to the GPU.
func NewViewer(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		config:     cfg,
		log:        logger.Named("viewer"),
		input:      input.New(),
		capture:    debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "ocean"),
		showStatus: cfg.Debug.ShowPanel,
		showFPS:    cfg.Debug.ShowFPS,
	}

	var err error
	v.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	// GL entry points need the context created above.
	if _, err := renderer.Init(); err != nil {
		v.window.Close()
		return nil, err
	}

	width, height := v.window.Size()
	v.state, err = NewState(cfg, width, height, v.window.PixelRatio())
	if err != nil {
		v.window.Close()
		return nil, err
	}

	manager, err := NewAssets(cfg.Assets)
	if err != nil {
		v.window.Close()
		return nil, err
	}
	defer manager.Close()

	sources, err := LoadSources(manager)
	if err != nil {
		v.window.Close()
		return nil, err
	}

	v.scene, err = scene.New(scene.Config{
		Grid:       v.state.Grid,
		Noise:      v.state.Noise,
		Material:   v.state.Material,
		Rig:        v.state.Rig,
		Background: LoadBackground(manager, cfg.Assets),
		Sources:    sources,
		Offscreen:  true,
	}, v.state.Viewport.State())
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("create scene: %w", err)
	}
	v.state.Viewport.OnResize(v.scene.Resize)

	v.keyboard = control.NewKeyboard(v.state.Store)
	v.loop = loop.New(loop.Config{
		Clock:     v.state.Clock,
		Uniforms:  v.state.Material,
		Camera:    v.state.Rig,
		Drawer:    v,
		Presenter: v.window,
		Poll:      v.poll,
	})

	v.updateTitle()
	return v, nil
}

// Run renders until the window closes, Esc is pressed or ctx is cancelled.
func (v *Viewer) Run(ctx context.Context) error {
	return v.loop.Run(ctx)
}

// Close releases GPU resources and the window.
func (v *Viewer) Close() {
	v.loop.Stop()
	if v.scene != nil {
		v.scene.Destroy()
	}
	if v.window != nil {
		v.window.Close()
	}
}

// Draw renders the scene at the capped resolution and stretches it over the
// window's drawable area.
func (v *Viewer) Draw() error {
	if err := v.scene.Draw(); err != nil {
		return err
	}
	v.scene.Blit(v.window.DrawableSize())
	if v.showFPS && v.loop.FPS() != v.shownFPS {
		v.shownFPS = v.loop.FPS()
		v.updateTitle()
	}
	if v.pendingShot {
		v.pendingShot = false
		v.screenshot()
	}
	return nil
}

func (v *Viewer) poll() {
	if v.input.Update() {
		v.loop.Stop()
		return
	}

	for _, ev := range v.input.Events() {
		switch ev.Type {
		case input.EventQuit:
			v.loop.Stop()

		case input.EventWindowResize:
			v.resize(ev.Width, ev.Height)

		case input.EventKeyDown:
			v.handleKey(ev)
		}
	}
}

func (v *Viewer) resize(width, height int) {
	v.state.Viewport.Resize(width, height, v.window.PixelRatio())
}

func (v *Viewer) handleKey(ev input.Event) {
	switch KeyCommand(ev.Key) {
	case CommandQuit:
		v.loop.Stop()
		return
	case CommandScreenshot:
		if !ev.Repeat {
			v.pendingShot = true
		}
		return
	case CommandToggleStatus:
		if !ev.Repeat {
			v.showStatus = !v.showStatus
			v.updateTitle()
		}
		return
	}

	action := KeyAction(ev.Key, ev.Shift)
	if action == control.ActionNone {
		return
	}
	// Tab and reset keys act once per press; nudges auto-repeat.
	if ev.Repeat && action != control.ActionIncrease && action != control.ActionDecrease {
		return
	}
	// Shift on a nudge selects the fine step.
	if err := v.keyboard.Apply(action, ev.Shift); err != nil {
		v.log.Warn("control action failed", zap.Error(err))
		return
	}
	v.updateTitle()
}

func (v *Viewer) updateTitle() {
	title := Title
	if v.showFPS {
		title += fmt.Sprintf("  |  %.0f fps", v.shownFPS)
	}
	if v.showStatus {
		title += "  |  " + v.keyboard.Status()
	}
	v.window.SetTitle(title)
}

func (v *Viewer) screenshot() {
	img, err := v.scene.Snapshot()
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	path, err := v.capture.Capture(img)
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}
