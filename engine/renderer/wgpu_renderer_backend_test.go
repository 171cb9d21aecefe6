package renderer

import (
	"errors"
	"testing"

	"github.com/oliverbestmann/webgpu/wgpu"
)

func TestClassifyAcquireError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"outdated status", errors.New("Surface timed out: Outdated"), ErrSurfaceOutdated},
		{"lowercase outdated", errors.New("surface texture is outdated"), ErrSurfaceOutdated},
		{"lost status", errors.New("Surface Lost"), ErrSurfaceLost},
		{"unclassified", errors.New("device out of memory"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyAcquireError(tt.err)
			if tt.want == nil {
				if got != tt.err {
					t.Errorf("classifyAcquireError = %v, want original error passed through", got)
				}
				return
			}
			if !errors.Is(got, tt.want) {
				t.Errorf("classifyAcquireError(%v) = %v, want wrapped %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestPowerPreferenceFromEnv(t *testing.T) {
	t.Setenv("WGPU_POWER_PREF", "low")
	if got := powerPreferenceFromEnv(); got != wgpu.PowerPreferenceLowPower {
		t.Errorf("powerPreferenceFromEnv() = %v, want low power", got)
	}

	t.Setenv("WGPU_POWER_PREF", "")
	if got := powerPreferenceFromEnv(); got != wgpu.PowerPreferenceHighPerformance {
		t.Errorf("powerPreferenceFromEnv() = %v, want high performance default", got)
	}
}
