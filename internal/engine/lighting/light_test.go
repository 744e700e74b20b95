package lighting

import (
	"math"
	"testing"
)

func TestUpdateOscillates(t *testing.T) {
	l := New([3]float32{0.85, 0.85, 0.55}, [3]float32{1, 1, 1}, 0.2, 32, 100)

	tests := []struct {
		seconds float64
		wantY   float32
	}{
		{0, 0},
		{math.Pi / 2, 100},
		{math.Pi, 0},
		{3 * math.Pi / 2, -100},
	}
	for _, tt := range tests {
		l.Update(tt.seconds)
		if l.Position[0] != 0 || l.Position[2] != 0 {
			t.Errorf("t=%g: light left the Y axis: %v", tt.seconds, l.Position)
		}
		if d := math.Abs(float64(l.Position[1] - tt.wantY)); d > 1e-3 {
			t.Errorf("t=%g: expected y=%f, got %f", tt.seconds, tt.wantY, l.Position[1])
		}
	}
}

func TestUpdateStaysWithinSwing(t *testing.T) {
	l := New([3]float32{1, 1, 1}, [3]float32{1, 1, 1}, 0, 1, 40)
	for k := 0; k < 1000; k++ {
		l.Update(float64(k) * 0.037)
		if l.Position[1] < -40 || l.Position[1] > 40 {
			t.Fatalf("step %d: y=%f outside ±40", k, l.Position[1])
		}
	}
}

func TestNewKeepsColors(t *testing.T) {
	l := New([3]float32{0.85, 0.85, 0.55}, [3]float32{1, 1, 1}, 0.2, 32, 100)
	if l.Diffuse != [3]float32{0.85, 0.85, 0.55} {
		t.Errorf("unexpected diffuse %v", l.Diffuse)
	}
	if l.Specular != [3]float32{1, 1, 1} {
		t.Errorf("unexpected specular %v", l.Specular)
	}
	if l.Position != [3]float32{} {
		t.Errorf("expected light at origin before Update, got %v", l.Position)
	}
}
