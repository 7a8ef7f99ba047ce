package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DoyleJ11/bp-draft-server/internal/engine"
	"github.com/DoyleJ11/bp-draft-server/internal/hub"
	"github.com/DoyleJ11/bp-draft-server/internal/lobby"
	"github.com/DoyleJ11/bp-draft-server/pkg/types"
	"github.com/bytedance/sonic"
	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type frame struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func setup(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	h := hub.NewHub(ctx, hub.Config{})
	reply := make(chan *lobby.Lobby, 1)
	h.Inbox() <- hub.CreateLobby{Code: "ROOM01", State: engine.NewEmptyState(), Reply: reply}
	require.NotNil(t, <-reply)

	srv := httptest.NewServer(Handler(h, zap.NewNop(), nil))
	t.Cleanup(srv.Close)
	return srv, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func readFrame(t *testing.T, ctx context.Context, c *websocket.Conn) frame {
	t.Helper()
	_, data, err := c.Read(ctx)
	require.NoError(t, err)
	var f frame
	require.NoError(t, sonic.Unmarshal(data, &f))
	return f
}

func send(t *testing.T, ctx context.Context, c *websocket.Conn, raw string) {
	t.Helper()
	require.NoError(t, c.Write(ctx, websocket.MessageText, []byte(raw)))
}

func TestHandler_SyncAndReject(t *testing.T) {
	_, url := setup(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, _, err := websocket.Dial(ctx, url+"?room=ROOM01", nil)
	require.NoError(t, err)
	defer c.Close(websocket.StatusNormalClosure, "")

	first := readFrame(t, ctx, c)
	assert.Equal(t, types.MsgStateSync, first.Type)

	send(t, ctx, c, `{"type":"ACTION_SUBMIT","payload":{"type":"SET_SIDES","sideForA":"BLUE","actorRole":"REFEREE"}}`)
	synced := readFrame(t, ctx, c)
	require.Equal(t, types.MsgStateSync, synced.Type)
	var state engine.State
	require.NoError(t, sonic.Unmarshal(synced.Payload, &state))
	assert.Equal(t, int64(1), state.LastActionSeq)
	assert.Equal(t, engine.SideBlue, state.Sides.TeamA)

	send(t, ctx, c, `{"type":"ACTION_SUBMIT","payload":{"type":"START_GAME","actorRole":"TEAM_A"}}`)
	rej := readFrame(t, ctx, c)
	require.Equal(t, types.MsgActionRejected, rej.Type)
	var reason types.RejectedPayload
	require.NoError(t, sonic.Unmarshal(rej.Payload, &reason))
	assert.Equal(t, "not authorized", reason.Reason)

	send(t, ctx, c, `not json`)
	bad := readFrame(t, ctx, c)
	assert.Equal(t, types.MsgActionRejected, bad.Type)
}

func TestHandler_UnknownRoom(t *testing.T) {
	srv, _ := setup(t)

	resp, err := http.Get(srv.URL + "?room=NOPE")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp2, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp2.StatusCode)
}
