package common

import "testing"

func TestNormalizedAspect(t *testing.T) {
	tests := []struct {
		name          string
		width, height uint32
		want          [2]float32
	}{
		{"landscape", 800, 600, [2]float32{800.0 / 600.0, 1}},
		{"portrait", 600, 800, [2]float32{1, 800.0 / 600.0}},
		{"square", 512, 512, [2]float32{1, 1}},
		{"zero width", 0, 600, [2]float32{1, 1}},
		{"zero height", 800, 0, [2]float32{1, 1}},
		{"extreme landscape", 3840, 1080, [2]float32{3840.0 / 1080.0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizedAspect(tt.width, tt.height)
			if got != tt.want {
				t.Errorf("NormalizedAspect(%d, %d) = %v, want %v", tt.width, tt.height, got, tt.want)
			}
		})
	}
}

func TestNormalizedAspectMinorAxisIsOne(t *testing.T) {
	pairs := [][2]int{{1, 1}, {1920, 1080}, {1080, 1920}, {100, 7000}, {7000, 100}}
	for _, p := range pairs {
		got := NormalizedAspect(p[0], p[1])
		min := got[0]
		if got[1] < min {
			min = got[1]
		}
		if min != 1 {
			t.Errorf("NormalizedAspect(%d, %d) = %v, minor axis = %v, want 1", p[0], p[1], got, min)
		}
		if got[0] < 1 || got[1] < 1 {
			t.Errorf("NormalizedAspect(%d, %d) = %v, both components must be >= 1", p[0], p[1], got)
		}
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce("", "fallback"); got != "fallback" {
		t.Errorf("Coalesce(\"\", \"fallback\") = %q, want \"fallback\"", got)
	}
	if got := Coalesce("set", "fallback"); got != "set" {
		t.Errorf("Coalesce(\"set\", \"fallback\") = %q, want \"set\"", got)
	}
	if got := Coalesce(0, 0); got != 0 {
		t.Errorf("Coalesce(0, 0) = %d, want 0", got)
	}
}
