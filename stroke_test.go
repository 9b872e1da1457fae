package skychart

import "testing"

func TestDefaultStroke(t *testing.T) {
	s := DefaultStroke()
	if s.Width != 1.0 {
		t.Errorf("Width = %v, want 1.0", s.Width)
	}
	if s.Cap != LineCapButt || s.Join != LineJoinMiter {
		t.Errorf("default cap/join = %v/%v, want butt/miter", s.Cap, s.Join)
	}
	if s.Dash != nil {
		t.Error("default stroke must be solid")
	}
}

func TestStroke_IsContinuous(t *testing.T) {
	tests := []struct {
		name string
		s    Stroke
		want bool
	}{
		{"default", DefaultStroke(), true},
		{"wide", DefaultStroke().WithWidth(3), false},
		{"dashed", DefaultStroke().WithDashPattern(4, 2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.IsContinuous(); got != tt.want {
				t.Errorf("IsContinuous() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStroke_Builders(t *testing.T) {
	s := DefaultStroke().
		WithWidth(2.5).
		WithCap(LineCapRound).
		WithJoin(LineJoinBevel).
		WithDashPattern(6, 2)

	if s.Width != 2.5 || s.Cap != LineCapRound || s.Join != LineJoinBevel {
		t.Errorf("builder result = %+v", s)
	}
	if !s.IsDashed() {
		t.Error("expected dashed stroke")
	}

	solid := s.WithDash(nil)
	if solid.IsDashed() {
		t.Error("WithDash(nil) must return a solid stroke")
	}
	if !s.IsDashed() {
		t.Error("WithDash must not mutate the receiver")
	}
}

func TestStroke_Clone(t *testing.T) {
	s := DefaultStroke().WithDashPattern(5, 3)
	c := s.Clone()
	c.Dash.Array[0] = 42
	if s.Dash.Array[0] != 5 {
		t.Error("Clone must deep-copy the dash pattern")
	}
}
