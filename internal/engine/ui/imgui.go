// Package ui provides the ImGui host for the parameter tuner.
package ui

import (
	"fmt"
	"os"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/ocean/internal/engine/renderer"
	"github.com/Faultbox/ocean/internal/logger"
)

// fontPaths are tried in order; the built-in ImGui font is used if none exist.
var fontPaths = []string{
	"/System/Library/Fonts/SFNS.ttf",
	"/Library/Fonts/Arial Unicode.ttf",
	"C:\\Windows\\Fonts\\segoeui.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
}

const fontSize = 15.0

// Backend wraps the ImGui SDL backend. It owns the window and GL context.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
	log     *zap.Logger
}

// NewBackend creates the window and initialises OpenGL.
func NewBackend(title string, width, height int) (*Backend, error) {
	b := &Backend{log: logger.Named("ui")}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	b.backend.SetAfterCreateContextHook(func() {
		b.loadFont()
	})

	b.backend.SetBgColor(imgui.NewVec4(0.05, 0.07, 0.1, 1.0))
	b.backend.CreateWindow(title, width, height)

	if _, err := renderer.Init(); err != nil {
		return nil, err
	}

	return b, nil
}

func (b *Backend) loadFont() {
	var fontPath string
	for _, path := range fontPaths {
		if _, err := os.Stat(path); err == nil {
			fontPath = path
			break
		}
	}
	if fontPath == "" {
		b.log.Debug("no system font found, using default")
		return
	}

	fontCfg := imgui.NewFontConfig()
	defer fontCfg.Destroy()

	imgui.CurrentIO().Fonts().AddFontFromFileTTFV(fontPath, fontSize, fontCfg, nil)
	b.log.Debug("font loaded", zap.String("path", fontPath))
}

// Run drives frames until the window closes. frame runs between NewFrame
// and Render, so it may issue both GL and ImGui calls.
func (b *Backend) Run(frame func()) {
	b.backend.Run(frame)
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// DisplayMetrics returns the logical display size and the framebuffer scale.
func DisplayMetrics() (width, height int, pixelRatio float32) {
	io := imgui.CurrentIO()
	size := io.DisplaySize()
	scale := io.DisplayFramebufferScale()
	return int(size.X), int(size.Y), scale.X
}

// Framerate returns ImGui's smoothed frames per second.
func Framerate() float32 {
	return imgui.CurrentIO().Framerate()
}

// DrawSceneBackground fills the main viewport with tex, drawn behind every
// other window. GL textures have a bottom-left origin, so V is flipped.
func DrawSceneBackground(tex uint32) {
	viewport := imgui.MainViewport()
	workPos := viewport.WorkPos()
	workSize := viewport.WorkSize()

	imgui.SetNextWindowPos(workPos)
	imgui.SetNextWindowSize(workSize)

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsNoScrollWithMouse | imgui.WindowFlagsNoBringToFrontOnFocus |
		imgui.WindowFlagsNoInputs

	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(0, 0))
	if imgui.BeginV("##SceneBackground", nil, flags) {
		texRef := imgui.NewTextureRefTextureID(imgui.TextureID(tex))
		imgui.ImageV(*texRef, workSize, imgui.NewVec2(0, 1), imgui.NewVec2(1, 0))
	}
	imgui.End()
	imgui.PopStyleVar()
}

// IsKeyPressed checks if a key was pressed this frame.
func IsKeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}

// IsChordPressed checks a modifier+key combination.
func IsChordPressed(mod, key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(mod) | imgui.KeyChord(key))
}
