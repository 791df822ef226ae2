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

package bridge

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/png"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jetsetilly/wearcapture/logger"
	"github.com/jetsetilly/wearcapture/wcerrors"
)

// pngSignature is the canonical PNG magic bytes. Some devices prefix the
// exec-out payload with a stray CR, so screenshot decoding is attempted
// at multiple offsets/normalizations rather than assuming offset 0.
var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

var displaySizeRe = regexp.MustCompile(`(\d+)x(\d+)`)

// ADB drives a real device over the adb command-line tool.
type ADB struct {
	// Path to the adb binary. Defaults to "adb" (resolved via PATH).
	Path string

	// Timeout bounds every adb invocation. Defaults to 15s.
	Timeout time.Duration
}

// NewADB returns an ADB bridge with default path and timeout.
func NewADB() *ADB {
	return &ADB{Path: "adb", Timeout: 15 * time.Second}
}

func (a *ADB) path() string {
	if a.Path == "" {
		return "adb"
	}
	return a.Path
}

func (a *ADB) timeout() time.Duration {
	if a.Timeout <= 0 {
		return 15 * time.Second
	}
	return a.Timeout
}

func (a *ADB) run(serial string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout())
	defer cancel()

	cmd := append([]string{}, args...)
	if serial != "" {
		cmd = append([]string{"-s", serial}, cmd...)
	}

	c := exec.CommandContext(ctx, a.path(), cmd...)
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	if err := c.Run(); err != nil {
		return nil, fmt.Errorf("adb %s: %w: %s", strings.Join(cmd, " "), err, stderr.String())
	}

	return stdout.Bytes(), nil
}

// IsAvailable reports whether the adb binary is reachable.
func (a *ADB) IsAvailable() bool {
	_, err := a.run("", "version")
	return err == nil
}

// ListOnlineSerials returns devices in state "device" as reported by
// `adb devices -l`.
func (a *ADB) ListOnlineSerials() ([]string, error) {
	out, err := a.run("", "devices", "-l")
	if err != nil {
		return nil, wcerrors.Errorf(wcerrors.BridgeUnavailable, err)
	}

	var serials []string
	lines := strings.Split(string(out), "\n")
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		if fields[1] == "device" {
			serials = append(serials, fields[0])
		}
	}

	return serials, nil
}

// CaptureScreen fetches a screenshot and decodes it, trying (1) raw
// bytes, (2) bytes from the PNG signature onward if found past offset 0,
// (3) both of the above with CRLF normalized to LF. Succeeds on the
// first payload that decodes.
func (a *ADB) CaptureScreen(serial string) (image.Image, error) {
	raw, err := a.run(serial, "exec-out", "screencap", "-p")
	if err != nil {
		return nil, wcerrors.Errorf(wcerrors.CaptureFailed, err)
	}
	return decodeScreenshot(raw)
}

// decodeScreenshot implements the three-way fallback decode independent
// of how the payload was obtained, so it can be exercised directly by
// tests without shelling out to a real adb binary.
func decodeScreenshot(raw []byte) (image.Image, error) {
	if len(raw) == 0 {
		return nil, wcerrors.Errorf(wcerrors.CaptureFailed, "empty screenshot payload")
	}

	type candidate struct {
		label   string
		payload []byte
	}

	candidates := []candidate{{"raw", raw}}

	if idx := bytes.Index(raw, pngSignature); idx > 0 {
		candidates = append(candidates, candidate{"png-signature-sliced", raw[idx:]})
	}

	normalized := bytes.ReplaceAll(raw, []byte("\r\n"), []byte("\n"))
	candidates = append(candidates, candidate{"crlf-normalized", normalized})

	if idx := bytes.Index(normalized, pngSignature); idx > 0 {
		candidates = append(candidates, candidate{"png-signature-sliced+crlf-normalized", normalized[idx:]})
	}

	var lastErr error
	for _, c := range candidates {
		img, _, decodeErr := image.Decode(bytes.NewReader(c.payload))
		if decodeErr == nil {
			logger.Logf(logger.Allow, "bridge", "screenshot decoded via %s candidate", c.label)
			return img, nil
		}
		lastErr = decodeErr
	}

	return nil, wcerrors.Errorf(wcerrors.CaptureFailed, lastErr)
}

// Swipe issues `adb shell input swipe x1 y1 x2 y2 duration_ms`.
func (a *ADB) Swipe(serial string, x1, y1, x2, y2, durationMs int) error {
	_, err := a.run(serial, "shell", "input", "swipe",
		strconv.Itoa(x1), strconv.Itoa(y1), strconv.Itoa(x2), strconv.Itoa(y2), strconv.Itoa(durationMs))
	return err
}

// DisplaySize parses `adb shell wm size` output for a "WxH" pattern.
func (a *ADB) DisplaySize(serial string) (int, int, bool) {
	out, err := a.run(serial, "shell", "wm", "size")
	if err != nil {
		return 0, 0, false
	}

	m := displaySizeRe.FindStringSubmatch(string(out))
	if m == nil {
		return 0, 0, false
	}

	w, errW := strconv.Atoi(m[1])
	h, errH := strconv.Atoi(m[2])
	if errW != nil || errH != nil {
		return 0, 0, false
	}

	return w, h, true
}
