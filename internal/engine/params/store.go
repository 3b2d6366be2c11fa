// Package params holds the live tunable values shared by the control
// surfaces and the shading pipeline.
//
// A Store has exactly one writer (the control surface) and is read by the
// render loop on the same thread, between edits. It does no locking.
package params

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrUnknown is returned for a name that was never defined.
	ErrUnknown = errors.New("unknown parameter")
	// ErrKind is returned when a setter does not match the parameter kind.
	ErrKind = errors.New("parameter kind mismatch")
	// ErrDuplicate is returned when a name is defined twice.
	ErrDuplicate = errors.New("parameter already defined")
)

// Kind is the value shape of a parameter.
type Kind int

const (
	KindScalar Kind = iota
	KindVector2
	KindColor
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindVector2:
		return "vector2"
	case KindColor:
		return "color"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Parameter is one named tunable. Only the field matching Kind is meaningful.
// Min and Max bound scalars and each Vector2 component; colours are bounded
// to [0,1] per channel.
type Parameter struct {
	Name string
	Kind Kind
	Min  float32
	Max  float32
	Step float32

	Scalar float32
	Vec2   mgl32.Vec2
	Color  Color
	Hex    string // textual form of Color
}

// ChangeFunc receives the parameter after a write changed its value.
type ChangeFunc func(Parameter)

// Store is the single source of truth for tunable values.
type Store struct {
	params    map[string]*Parameter
	defaults  map[string]Parameter
	order     []string
	listeners map[string][]ChangeFunc
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		params:    make(map[string]*Parameter),
		defaults:  make(map[string]Parameter),
		listeners: make(map[string][]ChangeFunc),
	}
}

// Define registers a parameter. The initial value is clamped into range and
// becomes the parameter's reset value.
func (s *Store) Define(p Parameter) error {
	if _, ok := s.params[p.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, p.Name)
	}
	if p.Min > p.Max {
		return fmt.Errorf("parameter %s: min %.4f above max %.4f", p.Name, p.Min, p.Max)
	}

	switch p.Kind {
	case KindScalar:
		p.Scalar = clamp(p.Scalar, p.Min, p.Max)
	case KindVector2:
		p.Vec2 = clampVec2(p.Vec2, p.Min, p.Max)
	case KindColor:
		if p.Hex != "" {
			c, err := ParseHex(p.Hex)
			if err != nil {
				return fmt.Errorf("parameter %s: %w", p.Name, err)
			}
			p.Color = c
		}
		p.Min, p.Max = 0, 1
		p.Color = p.Color.clamped().quantized()
		p.Hex = p.Color.Hex()
	default:
		return fmt.Errorf("parameter %s: %w: %v", p.Name, ErrKind, p.Kind)
	}

	stored := p
	s.params[p.Name] = &stored
	s.defaults[p.Name] = p
	s.order = append(s.order, p.Name)
	return nil
}

// Get returns a copy of the named parameter.
func (s *Store) Get(name string) (Parameter, bool) {
	p, ok := s.params[name]
	if !ok {
		return Parameter{}, false
	}
	return *p, true
}

// Len returns the number of defined parameters.
func (s *Store) Len() int {
	return len(s.order)
}

// Each visits parameters in definition order.
func (s *Store) Each(fn func(Parameter)) {
	for _, name := range s.order {
		fn(*s.params[name])
	}
}

// Names returns parameter names in definition order.
func (s *Store) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Scalar returns a scalar value, or 0 for an unknown name.
func (s *Store) Scalar(name string) float32 {
	if p, ok := s.params[name]; ok && p.Kind == KindScalar {
		return p.Scalar
	}
	return 0
}

// Vec2 returns a vector value, or the zero vector for an unknown name.
func (s *Store) Vec2(name string) mgl32.Vec2 {
	if p, ok := s.params[name]; ok && p.Kind == KindVector2 {
		return p.Vec2
	}
	return mgl32.Vec2{}
}

// Color returns a colour value, or black for an unknown name.
func (s *Store) Color(name string) Color {
	if p, ok := s.params[name]; ok && p.Kind == KindColor {
		return p.Color
	}
	return Color{}
}

// SetScalar stores v clamped to the parameter's range.
func (s *Store) SetScalar(name string, v float32) error {
	p, err := s.lookup(name, KindScalar)
	if err != nil {
		return err
	}
	v = clamp(v, p.Min, p.Max)
	if v == p.Scalar {
		return nil
	}
	p.Scalar = v
	s.notify(p)
	return nil
}

// SetVec2 stores v with each component clamped to the parameter's range.
func (s *Store) SetVec2(name string, v mgl32.Vec2) error {
	p, err := s.lookup(name, KindVector2)
	if err != nil {
		return err
	}
	v = clampVec2(v, p.Min, p.Max)
	if v == p.Vec2 {
		return nil
	}
	p.Vec2 = v
	s.notify(p)
	return nil
}

// SetVec2Component stores one axis (0 = x, 1 = y) of a vector parameter.
func (s *Store) SetVec2Component(name string, axis int, v float32) error {
	if axis < 0 || axis > 1 {
		return fmt.Errorf("parameter %s: axis %d out of range", name, axis)
	}
	p, err := s.lookup(name, KindVector2)
	if err != nil {
		return err
	}
	next := p.Vec2
	next[axis] = v
	return s.SetVec2(name, next)
}

// SetColor stores c with channels clamped to [0,1] and rounded to its hex
// form, so Hex and Color always agree.
func (s *Store) SetColor(name string, c Color) error {
	p, err := s.lookup(name, KindColor)
	if err != nil {
		return err
	}
	c = c.clamped().quantized()
	if c == p.Color {
		return nil
	}
	p.Color = c
	p.Hex = c.Hex()
	s.notify(p)
	return nil
}

// SetColorHex parses a textual colour and stores it. The stored Color is the
// parsed value, so setting the same text twice is a no-op.
func (s *Store) SetColorHex(name, hex string) error {
	if _, err := s.lookup(name, KindColor); err != nil {
		return err
	}
	c, err := ParseHex(hex)
	if err != nil {
		return fmt.Errorf("parameter %s: %w", name, err)
	}
	return s.SetColor(name, c)
}

// Reset restores a parameter to the value it was defined with.
func (s *Store) Reset(name string) error {
	def, ok := s.defaults[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknown, name)
	}
	switch def.Kind {
	case KindScalar:
		return s.SetScalar(name, def.Scalar)
	case KindVector2:
		return s.SetVec2(name, def.Vec2)
	default:
		return s.SetColor(name, def.Color)
	}
}

// ResetAll restores every parameter to its defined value.
func (s *Store) ResetAll() {
	for _, name := range s.order {
		_ = s.Reset(name)
	}
}

// OnChange registers fn to run after every write that changes name.
func (s *Store) OnChange(name string, fn ChangeFunc) error {
	if _, ok := s.params[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknown, name)
	}
	s.listeners[name] = append(s.listeners[name], fn)
	return nil
}

func (s *Store) lookup(name string, kind Kind) (*Parameter, error) {
	p, ok := s.params[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknown, name)
	}
	if p.Kind != kind {
		return nil, fmt.Errorf("%w: %s is %v, not %v", ErrKind, name, p.Kind, kind)
	}
	return p, nil
}

func (s *Store) notify(p *Parameter) {
	for _, fn := range s.listeners[p.Name] {
		fn(*p)
	}
}

func clamp(v, lo, hi float32) float32 {
	if v != v { // NaN
		return lo
	}
	return mgl32.Clamp(v, lo, hi)
}

func clampVec2(v mgl32.Vec2, lo, hi float32) mgl32.Vec2 {
	return mgl32.Vec2{clamp(v[0], lo, hi), clamp(v[1], lo, hi)}
}

// Decimals returns how many fractional digits display the parameter's Step.
// Parameters without a step use three.
func (p Parameter) Decimals() int {
	if p.Step <= 0 {
		return 3
	}
	d := 0
	for s := float64(p.Step); d < 6 && s < 0.999999; s *= 10 {
		d++
	}
	return d
}
