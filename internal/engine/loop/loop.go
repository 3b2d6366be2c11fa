// Package loop drives the per-frame update: read the clock, push uniforms,
// move the camera, draw, and wait for the display.
package loop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/ocean/internal/logger"
)

var (
	// ErrNotIdle is returned by Start on a loop that already started.
	ErrNotIdle = errors.New("loop already started")
	// ErrNotRunning is returned by Step before Start.
	ErrNotRunning = errors.New("loop not running")
	// ErrStopped is returned by Step after Stop.
	ErrStopped = errors.New("loop stopped")
)

// State is the loop lifecycle stage.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Clock is the frame time source.
type Clock interface {
	Start()
	Elapsed() float64
}

// Uniforms receives the frame time and refreshes shader inputs.
type Uniforms interface {
	Push(t float32)
}

// Camera recomputes its pose for the frame time.
type Camera interface {
	Update(t float32)
}

// Drawer issues the frame's draw calls.
type Drawer interface {
	Draw() error
}

// Presenter hands the finished frame to the display and blocks until the
// next refresh. It is the loop's only suspension point.
type Presenter interface {
	Present() error
}

// Config wires a loop to its collaborators. Presenter may be nil when the
// host calls Step once per refresh itself. Poll may be nil; when set, Run
// calls it before each iteration to apply queued input and resize events.
type Config struct {
	Clock     Clock
	Uniforms  Uniforms
	Camera    Camera
	Drawer    Drawer
	Presenter Presenter
	Poll      func()
}

// Loop is the render loop state machine: Idle -> Running -> Stopped.
// It is not safe for concurrent use; every method runs on the render thread.
type Loop struct {
	cfg   Config
	state State
	log   *zap.Logger

	frames    uint64
	lastTime  float32
	fpsFrames int
	fpsTimer  time.Time
	fps       float32
}

// New creates an idle loop.
func New(cfg Config) *Loop {
	return &Loop{
		cfg: cfg,
		log: logger.Named("loop"),
	}
}

// State returns the current lifecycle stage.
func (l *Loop) State() State {
	return l.state
}

// Frames returns the number of completed iterations.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Time returns the elapsed time used by the last iteration.
func (l *Loop) Time() float32 {
	return l.lastTime
}

// FPS returns the frame rate measured over the last full second, or 0
// before the first second has passed.
func (l *Loop) FPS() float32 {
	return l.fps
}

// Start starts the clock and moves the loop to Running.
func (l *Loop) Start() error {
	if l.state != StateIdle {
		return fmt.Errorf("%w: %v", ErrNotIdle, l.state)
	}
	l.cfg.Clock.Start()
	l.fpsTimer = time.Now()
	l.state = StateRunning
	l.log.Info("render loop started")
	return nil
}

// Stop moves the loop to Stopped. A frame in progress completes; no further
// frame is started. Stop is idempotent.
func (l *Loop) Stop() {
	if l.state == StateStopped {
		return
	}
	l.state = StateStopped
	l.log.Info("render loop stopped", zap.Uint64("frames", l.frames))
}

// Step runs one iteration. Hosts with their own refresh callback call Step
// from it; Run calls it in a loop.
func (l *Loop) Step() error {
	switch l.state {
	case StateIdle:
		return ErrNotRunning
	case StateStopped:
		return ErrStopped
	}

	t := float32(l.cfg.Clock.Elapsed())
	l.lastTime = t

	l.cfg.Uniforms.Push(t)
	l.cfg.Camera.Update(t)

	if err := l.cfg.Drawer.Draw(); err != nil {
		return fmt.Errorf("draw frame %d: %w", l.frames, err)
	}
	if l.cfg.Presenter != nil {
		if err := l.cfg.Presenter.Present(); err != nil {
			return fmt.Errorf("present frame %d: %w", l.frames, err)
		}
	}

	l.frames++
	l.countFPS()
	return nil
}

// Run starts the loop if needed and iterates until Stop is called, ctx is
// cancelled, or a frame fails. The loop is Stopped when Run returns.
func (l *Loop) Run(ctx context.Context) error {
	if l.state == StateIdle {
		if err := l.Start(); err != nil {
			return err
		}
	}
	defer l.Stop()

	for {
		if l.cfg.Poll != nil {
			l.cfg.Poll()
		}
		if l.state != StateRunning {
			return nil
		}
		if err := ctx.Err(); err != nil {
			l.log.Debug("render loop cancelled", zap.Error(err))
			return nil
		}
		if err := l.Step(); err != nil {
			return err
		}
	}
}

func (l *Loop) countFPS() {
	l.fpsFrames++
	if elapsed := time.Since(l.fpsTimer); elapsed >= time.Second {
		l.fps = float32(float64(l.fpsFrames) / elapsed.Seconds())
		l.log.Debug("fps",
			zap.Int("count", l.fpsFrames),
			zap.Float32("t", l.lastTime),
			zap.Duration("window", elapsed),
		)
		l.fpsFrames = 0
		l.fpsTimer = time.Now()
	}
}
