// Package boot produces the loading sequence shown before the terminal opens.
package boot

import (
	"context"
	"math"
	"time"
)

const (
	// DefaultDuration is the total length of the sequence.
	DefaultDuration = 4000 * time.Millisecond
	// DefaultInterval is the time between frames.
	DefaultInterval = 40 * time.Millisecond
	// logEvery is the step spacing of log messages.
	logEvery = 12
)

// Messages are the log lines shown while booting, in order.
var Messages = []string{
	"INITIALIZING KERNEL...",
	"LOADING ASSETS...",
	"MOUNTING VIRTUAL DOM...",
	"CONNECTING TO SALESFORCE NODE...",
	"FETCHING PROFILE DATA...",
	"OPTIMIZING LAYOUT ENGINES...",
	"CONFIGURING NEO-BRUTALIST MODULES...",
	"SYSTEM READY.",
}

// Frame is the state after one tick.
type Frame struct {
	Step     int `json:"step"`
	Progress int `json:"progress"`
	// Log is empty unless the step emits a message.
	Log string `json:"log,omitempty"`
}

// Steps returns the number of frames for a sequence of the given length.
func Steps(duration, interval time.Duration) int {
	if interval <= 0 || duration <= 0 {
		return 0
	}
	return int(duration / interval)
}

// Frames returns the complete sequence of frames for the given number of steps.
// Progress reaches 100 on the last frame.
func Frames(steps int) []Frame {
	frames := make([]Frame, 0, max(steps, 0))
	for step := 1; step <= steps; step++ {
		frames = append(frames, frameAt(step, steps))
	}
	return frames
}

func frameAt(step, steps int) Frame {
	ratio := float64(step) / float64(steps)
	f := Frame{
		Step:     step,
		Progress: min(int(math.Round(ratio*100)), 100),
	}

	if step%logEvery == 0 && step < steps {
		idx := int(math.Floor(ratio * float64(len(Messages))))
		if idx < len(Messages) {
			f.Log = "> " + Messages[idx]
		}
	}
	return f
}

// Run plays the sequence, calling emit once per tick. It returns ctx.Err() if
// the context is cancelled before the last frame.
func Run(ctx context.Context, duration, interval time.Duration, emit func(Frame)) error {
	steps := Steps(duration, interval)
	if steps == 0 {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for step := 1; step <= steps; step++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			emit(frameAt(step, steps))
		}
	}
	return nil
}
