package params

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	defs := []Parameter{
		{Name: "waveLength", Kind: KindScalar, Min: 0, Max: 1, Step: 0.001, Scalar: 0.5},
		{Name: "frequency", Kind: KindVector2, Min: 0, Max: 10, Step: 0.001, Vec2: mgl32.Vec2{8, 6}},
		{Name: "surfaceColor", Kind: KindColor, Hex: "#655a43"},
	}
	for _, p := range defs {
		if err := s.Define(p); err != nil {
			t.Fatalf("define %s: %v", p.Name, err)
		}
	}
	return s
}

func TestDefineAndGet(t *testing.T) {
	s := newTestStore(t)

	if s.Len() != 3 {
		t.Fatalf("expected 3 parameters, got %d", s.Len())
	}
	p, ok := s.Get("waveLength")
	if !ok {
		t.Fatal("waveLength not found")
	}
	if p.Kind != KindScalar || p.Scalar != 0.5 || p.Max != 1 {
		t.Errorf("unexpected parameter: %+v", p)
	}
	if _, ok := s.Get("missing"); ok {
		t.Error("Get should report unknown names")
	}

	names := s.Names()
	want := []string{"waveLength", "frequency", "surfaceColor"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("order[%d] = %s, want %s", i, names[i], want[i])
		}
	}
}

func TestDefineDuplicate(t *testing.T) {
	s := newTestStore(t)
	err := s.Define(Parameter{Name: "waveLength", Kind: KindScalar, Max: 1})
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}

func TestDefineClampsInitialValue(t *testing.T) {
	s := NewStore()
	if err := s.Define(Parameter{Name: "speed", Kind: KindScalar, Min: 0, Max: 6, Scalar: 9}); err != nil {
		t.Fatal(err)
	}
	if got := s.Scalar("speed"); got != 6 {
		t.Errorf("expected initial value clamped to 6, got %f", got)
	}
}

func TestDefineRejectsBadInput(t *testing.T) {
	s := NewStore()
	if err := s.Define(Parameter{Name: "inverted", Kind: KindScalar, Min: 2, Max: 1}); err == nil {
		t.Error("expected error for min > max")
	}
	if err := s.Define(Parameter{Name: "badHex", Kind: KindColor, Hex: "teal"}); err == nil {
		t.Error("expected error for unparsable colour")
	}
	if err := s.Define(Parameter{Name: "odd", Kind: Kind(9)}); !errors.Is(err, ErrKind) {
		t.Errorf("expected ErrKind, got %v", err)
	}
}

func TestSetScalarClamps(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want float32
	}{
		{"inside", 0.25, 0.25},
		{"below min", -3, 0},
		{"above max", 42, 1},
		{"at max", 1, 1},
		{"nan", float32(math.NaN()), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			if err := s.SetScalar("waveLength", tt.in); err != nil {
				t.Fatal(err)
			}
			if got := s.Scalar("waveLength"); got != tt.want {
				t.Errorf("got %f, want %f", got, tt.want)
			}
		})
	}
}

func TestSetVec2Clamps(t *testing.T) {
	s := newTestStore(t)

	if err := s.SetVec2("frequency", mgl32.Vec2{-1, 12}); err != nil {
		t.Fatal(err)
	}
	if got := s.Vec2("frequency"); got != (mgl32.Vec2{0, 10}) {
		t.Errorf("expected (0, 10), got %v", got)
	}

	if err := s.SetVec2Component("frequency", 0, 3.5); err != nil {
		t.Fatal(err)
	}
	if got := s.Vec2("frequency"); got != (mgl32.Vec2{3.5, 10}) {
		t.Errorf("expected (3.5, 10), got %v", got)
	}
	if err := s.SetVec2Component("frequency", 2, 1); err == nil {
		t.Error("expected error for axis 2")
	}
}

func TestSetErrors(t *testing.T) {
	s := newTestStore(t)

	if err := s.SetScalar("nope", 1); !errors.Is(err, ErrUnknown) {
		t.Errorf("expected ErrUnknown, got %v", err)
	}
	if err := s.SetScalar("frequency", 1); !errors.Is(err, ErrKind) {
		t.Errorf("expected ErrKind, got %v", err)
	}
	if err := s.SetColorHex("waveLength", "#ffffff"); !errors.Is(err, ErrKind) {
		t.Errorf("expected ErrKind, got %v", err)
	}
	if err := s.SetColorHex("surfaceColor", "#zzzzzz"); err == nil {
		t.Error("expected parse error")
	}
	if got := s.Color("surfaceColor").Hex(); got != "#655a43" {
		t.Errorf("failed write must not change the colour, got %s", got)
	}
}

func TestUnknownReadsAreZero(t *testing.T) {
	s := newTestStore(t)
	if s.Scalar("missing") != 0 {
		t.Error("unknown scalar should read 0")
	}
	if s.Vec2("waveLength") != (mgl32.Vec2{}) {
		t.Error("kind mismatch should read the zero vector")
	}
	if s.Color("frequency") != (Color{}) {
		t.Error("kind mismatch should read black")
	}
}

func TestSetColorHex(t *testing.T) {
	s := newTestStore(t)

	if err := s.SetColorHex("surfaceColor", "#d2940f"); err != nil {
		t.Fatal(err)
	}
	p, _ := s.Get("surfaceColor")
	if p.Hex != "#d2940f" {
		t.Errorf("expected hex #d2940f, got %s", p.Hex)
	}
	want := Color{R: 210.0 / 255, G: 148.0 / 255, B: 15.0 / 255}
	if !colorNear(p.Color, want, 1e-6) {
		t.Errorf("expected %v, got %v", want, p.Color)
	}
}

func TestOnChange(t *testing.T) {
	s := newTestStore(t)

	var seen []Parameter
	if err := s.OnChange("surfaceColor", func(p Parameter) { seen = append(seen, p) }); err != nil {
		t.Fatal(err)
	}
	if err := s.OnChange("ghost", func(Parameter) {}); !errors.Is(err, ErrUnknown) {
		t.Errorf("expected ErrUnknown, got %v", err)
	}

	_ = s.SetColorHex("surfaceColor", "#000000")
	_ = s.SetColorHex("surfaceColor", "#000000") // unchanged, no event
	_ = s.SetColorHex("surfaceColor", "#ffffff")

	if len(seen) != 2 {
		t.Fatalf("expected 2 change events, got %d", len(seen))
	}
	if seen[0].Hex != "#000000" || seen[1].Hex != "#ffffff" {
		t.Errorf("unexpected events: %s, %s", seen[0].Hex, seen[1].Hex)
	}
}

func TestEditVisibleToNextRead(t *testing.T) {
	s := newTestStore(t)
	_ = s.SetScalar("waveLength", 0.1)
	if got := s.Scalar("waveLength"); got != 0.1 {
		t.Errorf("read after write should see 0.1, got %f", got)
	}
}

func TestReset(t *testing.T) {
	s := newTestStore(t)
	_ = s.SetScalar("waveLength", 0.9)
	_ = s.SetVec2("frequency", mgl32.Vec2{1, 1})
	_ = s.SetColorHex("surfaceColor", "#ffffff")

	if err := s.Reset("waveLength"); err != nil {
		t.Fatal(err)
	}
	if s.Scalar("waveLength") != 0.5 {
		t.Errorf("expected 0.5 after reset, got %f", s.Scalar("waveLength"))
	}

	s.ResetAll()
	if s.Vec2("frequency") != (mgl32.Vec2{8, 6}) {
		t.Errorf("expected (8, 6) after reset, got %v", s.Vec2("frequency"))
	}
	if s.Color("surfaceColor").Hex() != "#655a43" {
		t.Errorf("expected #655a43 after reset, got %s", s.Color("surfaceColor").Hex())
	}
	if err := s.Reset("missing"); !errors.Is(err, ErrUnknown) {
		t.Errorf("expected ErrUnknown, got %v", err)
	}
}

func TestEachVisitsInOrder(t *testing.T) {
	s := newTestStore(t)
	var kinds []Kind
	s.Each(func(p Parameter) { kinds = append(kinds, p.Kind) })
	want := []Kind{KindScalar, KindVector2, KindColor}
	if len(kinds) != len(want) {
		t.Fatalf("expected %d visits, got %d", len(want), len(kinds))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("visit %d: got %v, want %v", i, kinds[i], want[i])
		}
	}
}

func colorNear(a, b Color, eps float32) bool {
	d := func(x, y float32) bool { return x-y < eps && y-x < eps }
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B)
}

func TestDecimals(t *testing.T) {
	tests := []struct {
		step float32
		want int
	}{
		{0, 3},
		{1, 0},
		{0.1, 1},
		{0.001, 3},
		{0.0001, 4},
		{0.5, 1},
	}
	for _, tt := range tests {
		if got := (Parameter{Step: tt.step}).Decimals(); got != tt.want {
			t.Errorf("step %g: got %d, want %d", tt.step, got, tt.want)
		}
	}
}

func TestColorMatchesHexForm(t *testing.T) {
	s := NewStore()
	if err := s.Define(Parameter{Name: "tint", Kind: KindColor, Color: Color{R: 0.3, G: 0.35516, B: 0.9}}); err != nil {
		t.Fatal(err)
	}
	check := func(when string) {
		t.Helper()
		p, _ := s.Get("tint")
		parsed, err := ParseHex(p.Hex)
		if err != nil {
			t.Fatalf("%s: ParseHex(%q): %v", when, p.Hex, err)
		}
		if parsed != p.Color {
			t.Errorf("%s: stored %v, hex %s parses to %v", when, p.Color, p.Hex, parsed)
		}
	}
	check("define")

	if err := s.SetColor("tint", Color{R: 0.39607844, G: 0.3551634, B: 0.2627451}); err != nil {
		t.Fatal(err)
	}
	check("set")

	// Values rounding to the stored level are not a change.
	fired := 0
	_ = s.OnChange("tint", func(Parameter) { fired++ })
	p, _ := s.Get("tint")
	_ = s.SetColor("tint", Color{R: p.Color.R + 0.001, G: p.Color.G, B: p.Color.B})
	if fired != 0 {
		t.Errorf("sub-level change fired %d events", fired)
	}
}
