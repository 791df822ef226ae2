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

package capture

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/jetsetilly/wearcapture/bridge"
	"github.com/jetsetilly/wearcapture/imaging"
	"github.com/jetsetilly/wearcapture/scroll"
	"github.com/jetsetilly/wearcapture/stitch"
	"github.com/jetsetilly/wearcapture/wcerrors"
)

const (
	reasonUserStop    = "user requested stop"
	reasonMaxSwipes   = "max swipes reached"
	sleepSlice        = 50 * time.Millisecond
	thumbnailMaxLong  = 240
)

// Engine runs the capture state machine against a Bridge.
type Engine struct {
	bridge bridge.Bridge

	// now and sleep are overridable for tests; they default to time.Now
	// and a real sleeper.
	now   func() time.Time
	sleep func(d time.Duration)
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithClock overrides the engine's time source and sleeper; intended for
// tests that need deterministic, fast cooperative-sleep behavior.
func WithClock(now func() time.Time, sleep func(time.Duration)) Option {
	return func(e *Engine) {
		e.now = now
		e.sleep = sleep
	}
}

// NewEngine returns an Engine driving b.
func NewEngine(b bridge.Bridge, opts ...Option) *Engine {
	e := &Engine{
		bridge: b,
		now:    time.Now,
		sleep:  time.Sleep,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Capture runs the capture state machine end to end and returns the
// result once the loop stops (for any reason) and the stitched PNG has
// been written. log and progress may be nil; cancel may be nil (meaning
// "never cancelled").
func (e *Engine) Capture(cfg Config, log LogFunc, cancel *CancelFlag, progress ProgressFunc) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	start := e.now()
	emitLog := func(tag string, detail interface{}) {
		if log != nil {
			log(tag, detail)
		}
	}
	emit := func(p Progress) {
		if progress == nil {
			return
		}
		p.At = e.now()
		p.ElapsedSec = p.At.Sub(start).Seconds()
		progress(p)
	}

	serial, err := e.resolveDevice(cfg)
	if err != nil {
		return Result{}, err
	}

	if !e.bridge.IsAvailable() {
		return Result{}, wcerrors.Errorf(wcerrors.BridgeUnavailable, "bridge binary not reachable")
	}

	emitLog("capture", fmt.Sprintf("using device %s", serial))

	if w, h, ok := e.bridge.DisplaySize(serial); ok {
		emitLog("capture", fmt.Sprintf("reported display size %dx%d", w, h))
	}

	first, err := e.bridge.CaptureScreen(serial)
	if err != nil {
		return Result{}, err
	}

	w, h := first.Bounds().Dx(), first.Bounds().Dy()
	frames := []image.Image{first}

	emit(Progress{
		Phase:          PhaseInitial,
		Message:        "initial capture",
		SwipesPerformed: 0,
		FramesCaptured: 1,
		MaxSwipes:      cfg.MaxSwipes,
	})

	swipeSpec := deriveSwipeSpec(cfg, w, h)

	performedSwipes := 0
	lowMotionHits := 0
	prev := first
	stopReason := ""

loop:
	for performedSwipes < cfg.MaxSwipes {
		if cancel.Requested() {
			stopReason = reasonUserStop
			break loop
		}

		if err := e.bridge.Swipe(serial, swipeSpec.X1, swipeSpec.Y1, swipeSpec.X2, swipeSpec.Y2, swipeSpec.DurationMs); err != nil {
			return Result{}, wcerrors.Errorf(wcerrors.CaptureFailed, err)
		}
		performedSwipes++

		if e.cooperativeSleep(cfg.ScrollDelayMs, cancel) {
			stopReason = reasonUserStop
			break loop
		}

		curr, err := e.bridge.CaptureScreen(serial)
		if err != nil {
			return Result{}, err
		}
		if curr.Bounds().Dx() != w || curr.Bounds().Dy() != h {
			curr = imaging.Resample(curr, w, h)
		}

		if cancel.Requested() {
			frames = append(frames, curr)
			stopReason = reasonUserStop
			break loop
		}

		det, err := scroll.Detect(prev, curr, scroll.Params{
			DownscaleWidth:      cfg.DownscaleWidth,
			StopRegionRatio:     cfg.StopRegionRatio,
			SimilarityThreshold: cfg.SimilarityThreshold,
			UseSSIM:             cfg.UseSSIM,
			LowMotionSimilarity: cfg.LowMotionSimilarity,
			LowMotionPx:         cfg.LowMotionPx,
		})
		if err != nil {
			return Result{}, err
		}

		emit(Progress{
			Phase:           PhaseIteration,
			Message:         "iteration",
			SwipesPerformed: performedSwipes,
			FramesCaptured:  len(frames),
			MaxSwipes:       cfg.MaxSwipes,
			Metrics: map[string]float64{
				"bottom_top_similarity": float64(det.BottomTopSimilarity),
				"full_similarity":       float64(det.FullSimilarity),
				"estimated_motion_px":   float64(det.EstimatedMotionPx),
				"overlap_similarity":    float64(det.OverlapSimilarity),
			},
			Thumbnail: thumbnail(curr),
		})

		if det.ShouldStop {
			stopReason = det.Reason
			break loop
		}

		if det.LowMotionCandidate {
			lowMotionHits++
			if lowMotionHits >= cfg.LowMotionConsecutive {
				stopReason = fmt.Sprintf("estimated motion <= %dpx for %d consecutive frames", cfg.LowMotionPx, cfg.LowMotionConsecutive)
				break loop
			}
		} else {
			lowMotionHits = 0
			frames = append(frames, curr)
			prev = curr
		}
	}

	if stopReason == "" {
		stopReason = reasonMaxSwipes
	}

	emit(Progress{
		Phase:           PhaseStopping,
		Message:         stopReason,
		SwipesPerformed: performedSwipes,
		FramesCaptured:  len(frames),
		MaxSwipes:       cfg.MaxSwipes,
	})

	stitched, err := stitch.Frames(frames, stitch.Config{
		DownscaleWidth:       cfg.DownscaleWidth,
		MinOverlapRatio:      cfg.MinOverlapRatio,
		MaxOverlapRatio:      cfg.MaxOverlapRatio,
		OverlapMinSimilarity: cfg.OverlapMinSimilarity,
	})
	if err != nil {
		return Result{}, err
	}

	if cfg.CircularMask {
		stitched = stitch.ApplyCircularMask(stitched)
	}

	if err := writePNG(cfg.OutputPath, stitched); err != nil {
		return Result{}, wcerrors.Errorf(wcerrors.CaptureFailed, err)
	}

	sb := stitched.Bounds()

	result := Result{
		SessionID:       newSessionID(),
		OutputPath:      cfg.OutputPath,
		DeviceSerial:    serial,
		FramesCaptured:  len(frames),
		SwipesPerformed: performedSwipes,
		StopReason:      stopReason,
		ImageWidth:      sb.Dx(),
		ImageHeight:     sb.Dy(),
	}

	emit(Progress{
		Phase:           PhaseComplete,
		Message:         "done",
		SwipesPerformed: performedSwipes,
		FramesCaptured:  len(frames),
		MaxSwipes:       cfg.MaxSwipes,
	})

	emitLog("capture", fmt.Sprintf("wrote %s (%dx%d)", cfg.OutputPath, sb.Dx(), sb.Dy()))

	return result, nil
}

// resolveDevice picks the serial to capture from: the configured serial
// if present and online, or the sole online device if exactly one is
// available.
func (e *Engine) resolveDevice(cfg Config) (string, error) {
	serials, err := e.bridge.ListOnlineSerials()
	if err != nil {
		return "", wcerrors.Errorf(wcerrors.BridgeUnavailable, err)
	}

	if cfg.Serial != "" {
		for _, s := range serials {
			if s == cfg.Serial {
				return s, nil
			}
		}
		return "", wcerrors.Errorf(wcerrors.DeviceNotFound, fmt.Sprintf("serial %q not online", cfg.Serial))
	}

	if len(serials) == 0 {
		return "", wcerrors.Errorf(wcerrors.DeviceNotFound, "no online devices")
	}
	if len(serials) > 1 {
		return "", wcerrors.Errorf(wcerrors.MultipleDevices, fmt.Sprintf("%d devices online, specify a serial", len(serials)))
	}

	return serials[0], nil
}

// cooperativeSleep sleeps totalMs milliseconds in slices of <=50ms,
// checking cancel between slices. Returns true if cancelled mid-sleep.
func (e *Engine) cooperativeSleep(totalMs int, cancel *CancelFlag) bool {
	remaining := time.Duration(totalMs) * time.Millisecond

	for remaining > 0 {
		if cancel.Requested() {
			return true
		}
		slice := sleepSlice
		if remaining < slice {
			slice = remaining
		}
		e.sleep(slice)
		remaining -= slice
	}

	return cancel.Requested()
}

func thumbnail(img image.Image) []byte {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	long := w
	if h > long {
		long = h
	}
	if long > thumbnailMaxLong {
		scale := float64(thumbnailMaxLong) / float64(long)
		w = int(float64(w) * scale)
		h = int(float64(h) * scale)
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		img = imaging.Resample(img, w, h)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil
	}
	return buf.Bytes()
}

func writePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
