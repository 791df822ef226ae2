// This file is part of WearCapture.
//
// WearCapture is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// WearCapture is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with WearCapture.  If not, see <https://www.gnu.org/licenses/>.

// Package capture implements the state machine that sequences
// screenshot capture, swipe input, and scroll-termination detection into
// a single long screenshot.
package capture

import "github.com/jetsetilly/wearcapture/wcerrors"

// Config is the immutable (after Validate) set of capture parameters.
type Config struct {
	OutputPath string
	Serial     string

	SimpleMode bool
	SwipeX1    *int
	SwipeY1    *int
	SwipeX2    *int
	SwipeY2    *int

	SwipeDurationMs int
	ScrollDelayMs   int
	MaxSwipes       int

	SimilarityThreshold float64
	UseSSIM             bool
	StopRegionRatio     float64

	LowMotionPx          int
	LowMotionSimilarity  float64
	LowMotionConsecutive int

	MinOverlapRatio      float64
	MaxOverlapRatio      float64
	OverlapMinSimilarity float64

	DownscaleWidth int
	CircularMask   bool
}

// DefaultConfig returns a Config with every default from the data model,
// excluding OutputPath and Serial (which have no sensible default).
func DefaultConfig() Config {
	return Config{
		SimpleMode:           true,
		SwipeDurationMs:      300,
		ScrollDelayMs:        480,
		MaxSwipes:            28,
		SimilarityThreshold:  0.995,
		UseSSIM:              true,
		StopRegionRatio:      0.20,
		LowMotionPx:          20,
		LowMotionSimilarity:  0.93,
		LowMotionConsecutive: 2,
		MinOverlapRatio:      0.08,
		MaxOverlapRatio:      0.92,
		OverlapMinSimilarity: 0.70,
		DownscaleWidth:       320,
		CircularMask:         false,
	}
}

// Validate reports the first violated field constraint as an
// invalid-config curated error, or nil if cfg is well-formed.
func (cfg Config) Validate() error {
	if cfg.OutputPath == "" {
		return wcerrors.Errorf(wcerrors.InvalidConfig, "output_path must not be empty")
	}
	if cfg.SwipeDurationMs < 0 {
		return wcerrors.Errorf(wcerrors.InvalidConfig, "swipe_duration_ms must be >= 0")
	}
	if cfg.ScrollDelayMs < 0 {
		return wcerrors.Errorf(wcerrors.InvalidConfig, "scroll_delay_ms must be >= 0")
	}
	if cfg.MaxSwipes < 1 {
		return wcerrors.Errorf(wcerrors.InvalidConfig, "max_swipes must be >= 1")
	}
	if cfg.SimilarityThreshold < 0 || cfg.SimilarityThreshold > 1 {
		return wcerrors.Errorf(wcerrors.InvalidConfig, "similarity_threshold must be in [0,1]")
	}
	if cfg.StopRegionRatio <= 0 || cfg.StopRegionRatio >= 1 {
		return wcerrors.Errorf(wcerrors.InvalidConfig, "stop_region_ratio must be in (0,1)")
	}
	if cfg.LowMotionPx < 0 || cfg.LowMotionPx > 200 {
		return wcerrors.Errorf(wcerrors.InvalidConfig, "low_motion_px must be in [0,200]")
	}
	if cfg.LowMotionSimilarity < 0 || cfg.LowMotionSimilarity > 1 {
		return wcerrors.Errorf(wcerrors.InvalidConfig, "low_motion_similarity must be in [0,1]")
	}
	if cfg.LowMotionConsecutive < 1 {
		return wcerrors.Errorf(wcerrors.InvalidConfig, "low_motion_consecutive must be >= 1")
	}
	if cfg.MinOverlapRatio <= 0 || cfg.MinOverlapRatio >= 1 {
		return wcerrors.Errorf(wcerrors.InvalidConfig, "min_overlap_ratio must be in (0,1)")
	}
	if cfg.MaxOverlapRatio <= 0 || cfg.MaxOverlapRatio >= 1 {
		return wcerrors.Errorf(wcerrors.InvalidConfig, "max_overlap_ratio must be in (0,1)")
	}
	if cfg.MinOverlapRatio >= cfg.MaxOverlapRatio {
		return wcerrors.Errorf(wcerrors.InvalidConfig, "min_overlap_ratio must be < max_overlap_ratio")
	}
	if cfg.OverlapMinSimilarity < 0 || cfg.OverlapMinSimilarity > 1 {
		return wcerrors.Errorf(wcerrors.InvalidConfig, "overlap_min_similarity must be in [0,1]")
	}
	if cfg.DownscaleWidth < 64 {
		return wcerrors.Errorf(wcerrors.InvalidConfig, "downscale_width must be >= 64")
	}

	return nil
}
