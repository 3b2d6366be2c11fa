package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/ocean/internal/engine/params"
	"github.com/Faultbox/ocean/internal/logger"
)

// PanelWidth is the fixed width of the parameter panel in logical pixels.
const PanelWidth = 400

// Panel shows one widget per store parameter. Widgets write straight back
// into the store, so every edit is visible on the next frame.
type Panel struct {
	store   *params.Store
	visible bool
	status  string
	log     *zap.Logger
}

// NewPanel creates a visible panel bound to store.
func NewPanel(store *params.Store) *Panel {
	return &Panel{
		store:   store,
		visible: true,
		log:     logger.Named("panel"),
	}
}

// Toggle shows or hides the panel.
func (p *Panel) Toggle() {
	p.visible = !p.visible
}

// SetStatus sets the footer line, e.g. the last screenshot path.
func (p *Panel) SetStatus(s string) {
	p.status = s
}

// Render draws the panel at the right edge of the viewport.
func (p *Panel) Render(fps float32, elapsed float64) {
	if !p.visible {
		return
	}

	viewport := imgui.MainViewport()
	workPos := viewport.WorkPos()
	workSize := viewport.WorkSize()

	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X+workSize.X-PanelWidth-10, workPos.Y+10))
	imgui.SetNextWindowSize(imgui.NewVec2(PanelWidth, 0))
	imgui.SetNextWindowBgAlpha(0.85)

	flags := imgui.WindowFlagsNoResize | imgui.WindowFlagsNoMove | imgui.WindowFlagsNoCollapse
	if imgui.BeginV("Ocean", nil, flags) {
		imgui.Text(fmt.Sprintf("%.0f fps  t=%.1fs", fps, elapsed))
		imgui.Separator()

		p.store.Each(p.widget)

		imgui.Separator()
		if imgui.ButtonV("Reset All", imgui.NewVec2(-1, 0)) {
			p.store.ResetAll()
			p.log.Info("parameters reset")
		}
		imgui.Text("F1 panel  F12 screenshot  Shift+R reset all")
		if p.status != "" {
			imgui.Text(p.status)
		}
	}
	imgui.End()
}

func (p *Panel) widget(param params.Parameter) {
	format := fmt.Sprintf("%%.%df", param.Decimals())

	switch param.Kind {
	case params.KindScalar:
		v := param.Scalar
		if imgui.SliderFloatV(param.Name, &v, param.Min, param.Max, format, imgui.SliderFlagsNone) {
			p.apply(param.Name, p.store.SetScalar(param.Name, v))
		}

	case params.KindVector2:
		x, y := param.Vec2.X(), param.Vec2.Y()
		if imgui.SliderFloatV(param.Name+" X", &x, param.Min, param.Max, format, imgui.SliderFlagsNone) {
			p.apply(param.Name, p.store.SetVec2Component(param.Name, 0, x))
		}
		if imgui.SliderFloatV(param.Name+" Y", &y, param.Min, param.Max, format, imgui.SliderFlagsNone) {
			p.apply(param.Name, p.store.SetVec2Component(param.Name, 1, y))
		}

	case params.KindColor:
		col := param.Color.Array()
		if imgui.ColorEdit3(param.Name, &col) {
			// Round-trip through hex so the store holds what the picker shows.
			hex := params.Color{R: col[0], G: col[1], B: col[2]}.Hex()
			p.apply(param.Name, p.store.SetColorHex(param.Name, hex))
		}
	}
}

func (p *Panel) apply(name string, err error) {
	if err != nil {
		p.log.Warn("parameter update failed", zap.String("name", name), zap.Error(err))
	}
}
