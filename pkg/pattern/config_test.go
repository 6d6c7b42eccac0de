package pattern

import (
	"testing"
)

// Test derived pixel sizes across the ball percent range
func TestConfigDerivedSizes(t *testing.T) {
	tests := []struct {
		name         string
		ballPercent  int
		trackPercent int
		wantBall     int
		wantTrack    int
		wantRadius   float64
	}{
		{name: "defaults", ballPercent: 60, trackPercent: 60, wantBall: 22, wantTrack: 13, wantRadius: 11},
		{name: "full size", ballPercent: 100, trackPercent: 50, wantBall: 38, wantTrack: 19, wantRadius: 19},
		{name: "half size", ballPercent: 50, trackPercent: 60, wantBall: 19, wantTrack: 11, wantRadius: 9.5},
		{name: "hairline floor", ballPercent: 0, trackPercent: 60, wantBall: 0, wantTrack: 1, wantRadius: 1},
		{name: "thin track floor", ballPercent: 10, trackPercent: 1, wantBall: 3, wantTrack: 1, wantRadius: 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.BallDiameterPercent = tt.ballPercent
			cfg.TrackWidthPercent = tt.trackPercent

			if got := cfg.BallDiameter(); got != tt.wantBall {
				t.Errorf("BallDiameter() = %d, want %d", got, tt.wantBall)
			}
			if got := cfg.TrackWidth(); got != tt.wantTrack {
				t.Errorf("TrackWidth() = %d, want %d", got, tt.wantTrack)
			}
			if got := cfg.PadRadius(); got != tt.wantRadius {
				t.Errorf("PadRadius() = %v, want %v", got, tt.wantRadius)
			}
		})
	}
}

// Test DefaultConfig canvas and tuning values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Width != 840 || cfg.Height != 1080 {
		t.Errorf("canvas = %dx%d, want 840x1080", cfg.Width, cfg.Height)
	}
	if cfg.TrackColor != "#FFFFFF" || cfg.BackgroundColor != "#000000" {
		t.Errorf("colors = %q on %q, want white on black", cfg.TrackColor, cfg.BackgroundColor)
	}
	if cfg.MinTrackLength > cfg.MaxTrackLength {
		t.Errorf("MinTrackLength %d > MaxTrackLength %d", cfg.MinTrackLength, cfg.MaxTrackLength)
	}
	if cfg.SegmentComplexity < 0 || cfg.SegmentComplexity > 1 {
		t.Errorf("SegmentComplexity = %v, want within [0,1]", cfg.SegmentComplexity)
	}

	// The default config must already be normal form.
	if got := cfg.Normalize(); got != cfg {
		t.Errorf("Normalize() changed the default config: %+v", got)
	}
}

// Test Normalize folding and clamping of invalid combinations
func TestConfigNormalize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinTrackLength = 9
	cfg.MaxTrackLength = 3
	cfg.Seg1MinPercent = 80
	cfg.Seg1MaxPercent = 20
	cfg.DensityPercent = 150
	cfg.SpacingVariationPercent = -10
	cfg.OverlapProbability = 1.7
	cfg.SegmentComplexity = -0.3
	cfg.MinSpacingPixels = -2

	got := cfg.Normalize()

	if got.MaxTrackLength != got.MinTrackLength {
		t.Errorf("MaxTrackLength = %d, want folded to min %d", got.MaxTrackLength, got.MinTrackLength)
	}
	if got.Seg1MaxPercent != 80 {
		t.Errorf("Seg1MaxPercent = %d, want folded to 80", got.Seg1MaxPercent)
	}
	if got.DensityPercent != 100 {
		t.Errorf("DensityPercent = %d, want 100", got.DensityPercent)
	}
	if got.SpacingVariationPercent != 0 {
		t.Errorf("SpacingVariationPercent = %d, want 0", got.SpacingVariationPercent)
	}
	if got.OverlapProbability != 1 {
		t.Errorf("OverlapProbability = %v, want 1", got.OverlapProbability)
	}
	if got.SegmentComplexity != 0 {
		t.Errorf("SegmentComplexity = %v, want 0", got.SegmentComplexity)
	}
	if got.MinSpacingPixels != 0 {
		t.Errorf("MinSpacingPixels = %d, want 0", got.MinSpacingPixels)
	}

	if cfg.MaxTrackLength != 3 {
		t.Errorf("Normalize() mutated its receiver: MaxTrackLength = %d", cfg.MaxTrackLength)
	}
}

// Test that a zero MinTrackLength is raised to one walk step
func TestConfigNormalizeTrackLengthFloor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinTrackLength = 0
	cfg.MaxTrackLength = 0

	got := cfg.Normalize()
	if got.MinTrackLength != 1 || got.MaxTrackLength != 1 {
		t.Errorf("track length range = [%d,%d], want [1,1]", got.MinTrackLength, got.MaxTrackLength)
	}
}
