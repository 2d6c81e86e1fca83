package boot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSteps(t *testing.T) {
	assert.Equal(t, 100, Steps(DefaultDuration, DefaultInterval))
	assert.Equal(t, 0, Steps(DefaultDuration, 0))
	assert.Equal(t, 0, Steps(0, DefaultInterval))
}

func TestFrames_DefaultSequence(t *testing.T) {
	frames := Frames(Steps(DefaultDuration, DefaultInterval))
	require.Len(t, frames, 100)

	assert.Equal(t, Frame{Step: 1, Progress: 1}, frames[0])
	assert.Equal(t, 50, frames[49].Progress)
	assert.Equal(t, 100, frames[99].Progress)
	assert.Empty(t, frames[99].Log, "the last step completes without a log")

	var logs []string
	for _, f := range frames {
		if f.Log != "" {
			assert.Zero(t, f.Step%12, "log emitted at step %d", f.Step)
			logs = append(logs, f.Log)
		}
	}

	want := make([]string, 0, len(Messages))
	for _, m := range Messages {
		want = append(want, "> "+m)
	}
	assert.Equal(t, want, logs)
}

func TestFrames_ProgressIsMonotonic(t *testing.T) {
	frames := Frames(37)
	require.Len(t, frames, 37)

	prev := 0
	for _, f := range frames {
		assert.GreaterOrEqual(t, f.Progress, prev)
		assert.LessOrEqual(t, f.Progress, 100)
		prev = f.Progress
	}
	assert.Equal(t, 100, prev)
}

func TestFrames_NoSteps(t *testing.T) {
	assert.Empty(t, Frames(0))
	assert.Empty(t, Frames(-3))
}

func TestRun_EmitsEveryFrame(t *testing.T) {
	var got []Frame
	err := Run(context.Background(), 10*time.Millisecond, time.Millisecond, func(f Frame) {
		got = append(got, f)
	})
	require.NoError(t, err)
	assert.Equal(t, Frames(10), got)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	count := 0
	err := Run(ctx, time.Hour, time.Millisecond, func(Frame) {
		count++
		if count == 3 {
			cancel()
		}
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.GreaterOrEqual(t, count, 3)
}
