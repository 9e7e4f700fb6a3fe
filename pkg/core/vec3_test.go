package core

import (
	"math/rand"
	"testing"
)

func TestVec3_Reflect(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec3
		n        Vec3
		expected Vec3
	}{
		{
			name:     "straight on",
			v:        NewVec3(0, 1, 0),
			n:        NewVec3(0, 1, 0),
			expected: NewVec3(0, 1, 0),
		},
		{
			name:     "glancing",
			v:        NewVec3(1, 1, 0),
			n:        NewVec3(0, 1, 0),
			expected: NewVec3(-1, 1, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reflect(tt.v, tt.n)
			if !got.Equals(tt.expected) {
				t.Errorf("Reflect(%v, %v) = %v, want %v", tt.v, tt.n, got, tt.expected)
			}
		})
	}
}

func TestRay_At(t *testing.T) {
	r := NewRay(NewVec3(1, 1, 1), NewVec3(0, 0, 2))
	p := r.At(2)
	expected := NewVec3(1, 1, 5)
	if !p.Equals(expected) {
		t.Errorf("expected %v, got %v", expected, p)
	}
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-1, 0.5, 2)
	clamped := v.Clamp(0, 1)
	expected := NewVec3(0, 0.5, 1)
	if !clamped.Equals(expected) {
		t.Errorf("expected %v, got %v", expected, clamped)
	}
}

func TestStratifiedSample_Bounds(t *testing.T) {
	random := rand.New(rand.NewSource(1))
	const n = 100
	for k := 0; k < n; k++ {
		v := StratifiedSample(random, k, n)
		lo, hi := float64(k)/float64(n), float64(k+1)/float64(n)
		if v < lo || v >= hi {
			t.Errorf("sample %f out of stratum [%f, %f)", v, lo, hi)
		}
	}
}

func TestJitterCell_Bounds(t *testing.T) {
	random := rand.New(rand.NewSource(2))
	u, v := JitterCell(random, 2, 3, 6, 6)
	if u < 2.0/6 || u >= 3.0/6 {
		t.Errorf("u=%f out of cell bounds", u)
	}
	if v < 3.0/6 || v >= 4.0/6 {
		t.Errorf("v=%f out of cell bounds", v)
	}
}
