// Package control implements a keyboard control surface over a parameter
// store, for hosts without a widget toolkit.
package control

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/ocean/internal/engine/params"
)

// Action is a control-surface command, independent of the key that
// triggered it.
type Action int

const (
	ActionNone Action = iota
	ActionNext
	ActionPrev
	ActionIncrease
	ActionDecrease
	ActionReset
	ActionResetAll
)

// CoarseSteps is how many parameter steps one unmodified key press moves.
const CoarseSteps = 10

// HueStep is the hue rotation in degrees applied to colours per press.
const HueStep = 10.0

// Slot is one editable value: a scalar, one axis of a vector, or a colour.
type Slot struct {
	Name string
	Kind params.Kind
	Axis int
}

func (s Slot) String() string {
	if s.Kind == params.KindVector2 {
		return fmt.Sprintf("%s.%c", s.Name, "xy"[s.Axis])
	}
	return s.Name
}

// Keyboard edits one selected slot at a time. All writes go through the
// store's setters, so values stay within bounds.
type Keyboard struct {
	store *params.Store
	slots []Slot
	sel   int
}

// NewKeyboard builds slots for every parameter in definition order.
func NewKeyboard(s *params.Store) *Keyboard {
	k := &Keyboard{store: s}
	s.Each(func(p params.Parameter) {
		if p.Kind == params.KindVector2 {
			k.slots = append(k.slots, Slot{Name: p.Name, Kind: p.Kind, Axis: 0}, Slot{Name: p.Name, Kind: p.Kind, Axis: 1})
			return
		}
		k.slots = append(k.slots, Slot{Name: p.Name, Kind: p.Kind})
	})
	return k
}

// Slots returns the editable slots in selection order.
func (k *Keyboard) Slots() []Slot {
	return k.slots
}

// Selected returns the current slot. ok is false when the store is empty.
func (k *Keyboard) Selected() (Slot, bool) {
	if len(k.slots) == 0 {
		return Slot{}, false
	}
	return k.slots[k.sel], true
}

// Apply performs a. fine moves by a single step instead of CoarseSteps.
func (k *Keyboard) Apply(a Action, fine bool) error {
	if len(k.slots) == 0 {
		return nil
	}
	slot := k.slots[k.sel]

	switch a {
	case ActionNext:
		k.sel = (k.sel + 1) % len(k.slots)
	case ActionPrev:
		k.sel = (k.sel - 1 + len(k.slots)) % len(k.slots)
	case ActionIncrease:
		return k.nudge(slot, 1, fine)
	case ActionDecrease:
		return k.nudge(slot, -1, fine)
	case ActionReset:
		return k.store.Reset(slot.Name)
	case ActionResetAll:
		k.store.ResetAll()
	}
	return nil
}

// Status describes the selected slot and its value.
func (k *Keyboard) Status() string {
	slot, ok := k.Selected()
	if !ok {
		return "no parameters"
	}
	p, _ := k.store.Get(slot.Name)
	switch slot.Kind {
	case params.KindVector2:
		return fmt.Sprintf("%s = %.4f", slot, p.Vec2[slot.Axis])
	case params.KindColor:
		return fmt.Sprintf("%s = %s", slot, p.Hex)
	default:
		return fmt.Sprintf("%s = %.4f", slot, p.Scalar)
	}
}

func (k *Keyboard) nudge(slot Slot, dir float32, fine bool) error {
	p, ok := k.store.Get(slot.Name)
	if !ok {
		return fmt.Errorf("%w: %s", params.ErrUnknown, slot.Name)
	}

	steps := float32(CoarseSteps)
	if fine {
		steps = 1
	}
	delta := dir * steps * p.Step

	switch slot.Kind {
	case params.KindScalar:
		return k.store.SetScalar(slot.Name, p.Scalar+delta)
	case params.KindVector2:
		return k.store.SetVec2Component(slot.Name, slot.Axis, p.Vec2[slot.Axis]+delta)
	case params.KindColor:
		step := HueStep * float64(dir)
		if fine {
			step /= CoarseSteps
		}
		// Small rotations of dark colours can round back to the same hex;
		// keep turning until the stored form moves. Greys have no hue.
		for deg := step; math.Abs(deg) < 360; deg += step {
			if next := rotateHue(p.Color, deg).Hex(); next != p.Hex {
				return k.store.SetColorHex(slot.Name, next)
			}
		}
	}
	return nil
}

// rotateHue shifts a colour's hue, keeping saturation and value.
func rotateHue(c params.Color, deg float64) params.Color {
	h, s, v := colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}.Hsv()
	h += deg
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	out := colorful.Hsv(h, s, v).Clamped()
	return params.Color{R: float32(out.R), G: float32(out.G), B: float32(out.B)}
}
