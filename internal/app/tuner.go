package app

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/ocean/internal/config"
	"github.com/Faultbox/ocean/internal/engine/debug"
	"github.com/Faultbox/ocean/internal/engine/loop"
	"github.com/Faultbox/ocean/internal/engine/scene"
	"github.com/Faultbox/ocean/internal/engine/ui"
	"github.com/Faultbox/ocean/internal/logger"
)

// Tuner hosts the pipeline behind an ImGui parameter panel. The scene is
// drawn offscreen and shown as the viewport background.
type Tuner struct {
	log *zap.Logger

	backend *ui.Backend
	state   *State
	scene   *scene.Scene
	panel   *ui.Panel
	capture *debug.ScreenshotCapture
	loop    *loop.Loop

	showFPS  bool
	shownFPS float32
	err      error
}

// NewTuner creates the ImGui window and the offscreen pipeline.
func NewTuner(cfg *config.Config) (*Tuner, error) {
	t := &Tuner{
		log:     logger.Named("tuner"),
		capture: debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "ocean"),
		showFPS: cfg.Debug.ShowFPS,
	}

	var err error
	t.backend, err = ui.NewBackend(tunerTitle(t.showFPS, 0), cfg.Graphics.Width, cfg.Graphics.Height)
	if err != nil {
		return nil, err
	}

	// Sized for the configured window; the first frame corrects it.
	t.state, err = NewState(cfg, cfg.Graphics.Width, cfg.Graphics.Height, 1)
	if err != nil {
		return nil, err
	}

	manager, err := NewAssets(cfg.Assets)
	if err != nil {
		return nil, err
	}
	defer manager.Close()

	sources, err := LoadSources(manager)
	if err != nil {
		return nil, err
	}

	t.scene, err = scene.New(scene.Config{
		Grid:       t.state.Grid,
		Noise:      t.state.Noise,
		Material:   t.state.Material,
		Rig:        t.state.Rig,
		Background: LoadBackground(manager, cfg.Assets),
		Sources:    sources,
		Offscreen:  true,
	}, t.state.Viewport.State())
	if err != nil {
		return nil, fmt.Errorf("create scene: %w", err)
	}
	t.state.Viewport.OnResize(t.scene.Resize)

	t.panel = ui.NewPanel(t.state.Store)
	if !cfg.Debug.ShowPanel {
		t.panel.Toggle()
	}

	// The backend presents; the loop only draws.
	t.loop = loop.New(loop.Config{
		Clock:    t.state.Clock,
		Uniforms: t.state.Material,
		Camera:   t.state.Rig,
		Drawer:   t.scene,
	})
	return t, nil
}

// Run blocks until the window closes. It returns the first frame error.
func (t *Tuner) Run() error {
	if err := t.loop.Start(); err != nil {
		return err
	}
	t.backend.Run(t.frame)
	t.loop.Stop()
	return t.err
}

// Close releases GPU resources.
func (t *Tuner) Close() {
	if t.scene != nil {
		t.scene.Destroy()
	}
}

func (t *Tuner) frame() {
	w, h, ratio := ui.DisplayMetrics()
	t.state.Viewport.Resize(w, h, ratio)

	if t.loop.State() == loop.StateRunning {
		if err := t.loop.Step(); err != nil {
			t.log.Error("frame failed, rendering stopped", zap.Error(err))
			t.err = err
			t.loop.Stop()
		}
	}
	if t.showFPS && t.loop.FPS() != t.shownFPS {
		t.shownFPS = t.loop.FPS()
		t.backend.SetWindowTitle(tunerTitle(true, t.shownFPS))
	}

	if ui.IsKeyPressed(imgui.KeyF1) {
		t.panel.Toggle()
	}
	if ui.IsKeyPressed(imgui.KeyF12) {
		t.screenshot()
	}
	if ui.IsChordPressed(imgui.ModShift, imgui.KeyR) && !imgui.IsAnyItemActive() {
		t.state.Store.ResetAll()
	}

	ui.DrawSceneBackground(t.scene.ColorTexture())
	t.panel.Render(ui.Framerate(), float64(t.loop.Time()))
}

func (t *Tuner) screenshot() {
	img, err := t.scene.Snapshot()
	if err == nil {
		var path string
		if path, err = t.capture.Capture(img); err == nil {
			t.log.Info("screenshot saved", zap.String("path", path))
			t.panel.SetStatus("Saved " + path)
			return
		}
	}
	t.log.Error("screenshot failed", zap.Error(err))
	t.panel.SetStatus("Screenshot failed")
}

func tunerTitle(showFPS bool, fps float32) string {
	title := Title + " Tuner"
	if showFPS {
		title += fmt.Sprintf("  |  %.0f fps", fps)
	}
	return title
}
