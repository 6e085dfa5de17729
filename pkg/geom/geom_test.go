package geom

import "testing"

func TestRectContainsEdges(t *testing.T) {
	r := NewRect(10, 10, 20, 20)
	tests := []struct {
		x, y float64
		want bool
	}{
		{10, 10, true},
		{29.9, 29.9, true},
		{30, 20, false},
		{20, 30, false},
		{9.9, 20, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if (Rect{Width: 0, Height: 10}).Contains(0, 0) {
		t.Error("empty rect should contain nothing")
	}
}

func TestRectInsetOutset(t *testing.T) {
	r := NewRect(0, 0, 100, 50)
	in := r.Inset(EdgeTRBL(1, 2, 3, 4))
	if in != NewRect(4, 1, 94, 46) {
		t.Errorf("Inset = %v", in)
	}
	if out := in.Outset(EdgeTRBL(1, 2, 3, 4)); out != r {
		t.Errorf("Outset(Inset(r)) = %v, want %v", out, r)
	}
}

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(20, 5, 10, 10)
	if got := a.Union(b); got != NewRect(0, 0, 30, 15) {
		t.Errorf("Union = %v", got)
	}
	if got := (Rect{}).Union(b); got != b {
		t.Errorf("empty Union = %v", got)
	}
}

func TestEdgesHelpers(t *testing.T) {
	e := EdgeXY(3, 7)
	if e.Horizontal() != 6 || e.Vertical() != 14 {
		t.Errorf("EdgeXY(3, 7) = %+v", e)
	}
	if !(Edges{}).IsZero() || EdgeAll(1).IsZero() {
		t.Error("IsZero mismatch")
	}
}

func TestAlignmentOffset(t *testing.T) {
	tests := []struct {
		a    Alignment
		want float64
	}{
		{AlignStart, 0},
		{AlignCenter, 15},
		{AlignEnd, 30},
	}
	for _, tt := range tests {
		if got := tt.a.Offset(40, 10); got != tt.want {
			t.Errorf("%s.Offset(40, 10) = %v, want %v", tt.a, got, tt.want)
		}
	}
}

func TestParseAlignment(t *testing.T) {
	for in, want := range map[string]Alignment{
		"":       AlignStart,
		"start":  AlignStart,
		"Center": AlignCenter,
		"middle": AlignCenter,
		" end ":  AlignEnd,
	} {
		got, err := ParseAlignment(in)
		if err != nil || got != want {
			t.Errorf("ParseAlignment(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseAlignment("left"); err == nil {
		t.Error("expected error for unknown alignment")
	}

	var a Alignment
	if err := a.UnmarshalText([]byte("end")); err != nil || a != AlignEnd {
		t.Errorf("UnmarshalText = %v, %v", a, err)
	}
}

// --- RoundedRect ---

func TestRoundedRectCorners(t *testing.T) {
	rr := NewRoundedRect(NewRect(0, 0, 100, 100), 20)

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 50, 50, true},
		{"top edge inclusive", 50, 0, true},
		{"right edge inclusive", 100, 50, true},
		{"corner cut away", 1, 1, false},
		{"inside corner arc", 7, 7, true},
		{"outside", 101, 50, false},
	}
	for _, tt := range tests {
		if got := rr.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: Contains(%v, %v) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRoundedRectRadiusClamped(t *testing.T) {
	rr := NewRoundedRect(NewRect(0, 0, 40, 10), 50)
	if r := rr.EffectiveRadius(); r != 5 {
		t.Errorf("EffectiveRadius = %v, want 5", r)
	}
	if NewRoundedRect(NewRect(0, 0, 10, 10), -3).EffectiveRadius() != 0 {
		t.Error("negative radius should clamp to 0")
	}
	if NewRoundedRect(Rect{Width: 10}, 0).Contains(0, 0) {
		t.Error("zero-area rounded rect should contain nothing")
	}
}
