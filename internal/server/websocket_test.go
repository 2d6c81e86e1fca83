package server

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wsFrame mirrors server frames with loosely typed lines.
type wsFrame struct {
	Type       string           `json:"type"`
	Transcript []map[string]any `json:"transcript"`
	Effect     string           `json:"effect"`
	Error      string           `json:"error"`
}

func dialTerminal(t *testing.T) (*websocket.Conn, context.Context) {
	t.Helper()

	s := newTestServer(t)
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/terminal/ws"
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.CloseNow() }) //nolint:errcheck

	return conn, ctx
}

func readFrame(t *testing.T, ctx context.Context, conn *websocket.Conn) wsFrame {
	t.Helper()
	var f wsFrame
	require.NoError(t, wsjson.Read(ctx, conn, &f))
	return f
}

func TestTerminalWS_Session(t *testing.T) {
	conn, ctx := dialTerminal(t)

	first := readFrame(t, ctx, conn)
	assert.Equal(t, "transcript", first.Type)
	require.Len(t, first.Transcript, 2)
	assert.Equal(t, "system", first.Transcript[0]["kind"])

	require.NoError(t, wsjson.Write(ctx, conn, map[string]string{"type": "input", "content": "skills"}))
	f := readFrame(t, ctx, conn)
	assert.Equal(t, "transcript", f.Type)
	assert.Equal(t, "none", f.Effect)
	require.Len(t, f.Transcript, 4)
	assert.Equal(t, "blocks", f.Transcript[3]["format"])

	require.NoError(t, wsjson.Write(ctx, conn, map[string]string{"type": "input", "content": "clear"}))
	f = readFrame(t, ctx, conn)
	assert.Equal(t, "clear", f.Effect)
	assert.NotNil(t, f.Transcript)
	assert.Empty(t, f.Transcript)
}

func TestTerminalWS_ExitClosesNormally(t *testing.T) {
	conn, ctx := dialTerminal(t)
	readFrame(t, ctx, conn)

	require.NoError(t, wsjson.Write(ctx, conn, map[string]string{"type": "input", "content": "EXIT"}))

	f := readFrame(t, ctx, conn)
	assert.Equal(t, "transcript", f.Type)
	assert.Equal(t, "close", f.Effect)
	assert.Len(t, f.Transcript, 2)

	f = readFrame(t, ctx, conn)
	assert.Equal(t, "close", f.Type)

	var next wsFrame
	err := wsjson.Read(ctx, conn, &next)
	require.Error(t, err)
	assert.Equal(t, websocket.StatusNormalClosure, websocket.CloseStatus(err))
}

func TestTerminalWS_PingAndUnknownType(t *testing.T) {
	conn, ctx := dialTerminal(t)
	readFrame(t, ctx, conn)

	require.NoError(t, wsjson.Write(ctx, conn, map[string]string{"type": "ping"}))
	assert.Equal(t, "pong", readFrame(t, ctx, conn).Type)

	require.NoError(t, wsjson.Write(ctx, conn, map[string]string{"type": "resize"}))
	f := readFrame(t, ctx, conn)
	assert.Equal(t, "error", f.Type)
	assert.Contains(t, f.Error, "resize")
}
