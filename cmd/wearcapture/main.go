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

// Command wearcapture drives a single watch-face long-screenshot
// capture from the command line. The capture core (capture, scroll,
// stitch, imaging, bridge) has no dependency on this package; this is
// thin wiring only.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jetsetilly/wearcapture/bridge"
	"github.com/jetsetilly/wearcapture/capture"
	"github.com/jetsetilly/wearcapture/logger"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("wearcapture", flag.ExitOnError)

	output := fs.String("output", "capture.png", "destination PNG path")
	serial := fs.String("serial", "", "preferred device serial (auto-selects if empty)")
	maxSwipes := fs.Int("max-swipes", 0, "override max swipe iterations (0 = default)")
	circularMask := fs.Bool("circular", false, "apply a circular alpha mask to the output")
	verbose := fs.Bool("verbose", false, "echo log lines to stderr")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := capture.DefaultConfig()
	cfg.OutputPath = *output
	cfg.Serial = *serial
	cfg.CircularMask = *circularMask
	if *maxSwipes > 0 {
		cfg.MaxSwipes = *maxSwipes
	}

	if *verbose {
		logger.SetEcho(os.Stderr, true)
	}

	var cancel capture.CancelFlag
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupt
		cancel.Request()
	}()

	adb := bridge.NewADB()
	engine := capture.NewEngine(adb)

	result, err := engine.Capture(cfg,
		func(tag string, detail interface{}) { logger.Log(logger.Allow, tag, detail) },
		&cancel,
		func(p capture.Progress) {
			fmt.Fprintf(os.Stdout, "[%s] %s (swipes=%d frames=%d)\n",
				p.Phase, p.Message, p.SwipesPerformed, p.FramesCaptured)
		},
	)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "wrote %s (%dx%d), stopped: %s\n",
		result.OutputPath, result.ImageWidth, result.ImageHeight, strings.TrimSpace(result.StopReason))

	return nil
}
