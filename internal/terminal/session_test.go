package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_StartsWithWelcomeLines(t *testing.T) {
	interp, _ := newTestInterpreter(t)
	sess := NewSession(interp)

	assert.True(t, sess.Open())
	assert.Equal(t, InitialTranscript(), sess.Transcript())
	assert.Equal(t, 2, sess.Len())
}

func TestSession_SubmitGrowsTranscript(t *testing.T) {
	interp, _ := newTestInterpreter(t)
	sess := NewSession(interp)

	effect, err := sess.Submit("about")
	require.NoError(t, err)
	assert.Equal(t, EffectNone, effect)
	assert.Equal(t, 4, sess.Len())

	effect, err = sess.Submit("   ")
	require.NoError(t, err)
	assert.Equal(t, EffectNone, effect)
	assert.Equal(t, 4, sess.Len())
}

func TestSession_ClearEmptiesTranscript(t *testing.T) {
	interp, _ := newTestInterpreter(t)
	sess := NewSession(interp)

	_, err := sess.Submit("skills")
	require.NoError(t, err)

	effect, err := sess.Submit("clear")
	require.NoError(t, err)
	assert.Equal(t, EffectClear, effect)
	assert.Equal(t, 0, sess.Len())
	assert.True(t, sess.Open())
}

func TestSession_ExitClosesAndKeepsTranscript(t *testing.T) {
	interp, _ := newTestInterpreter(t)
	sess := NewSession(interp)

	_, err := sess.Submit("help")
	require.NoError(t, err)
	before := sess.Transcript()

	effect, err := sess.Submit("  EXIT ")
	require.NoError(t, err)
	assert.Equal(t, EffectClose, effect)
	assert.False(t, sess.Open())
	assert.Equal(t, before, sess.Transcript())

	_, err = sess.Submit("help")
	assert.ErrorIs(t, err, ErrSessionClosed)
	assert.Equal(t, before, sess.Transcript())
}

func TestSession_TranscriptIsACopy(t *testing.T) {
	interp, _ := newTestInterpreter(t)
	sess := NewSession(interp)

	snapshot := sess.Transcript()
	snapshot[0] = System("tampered")

	assert.Equal(t, System("Welcome to NASHTE_OS v1.0.0"), sess.Transcript()[0])
}
