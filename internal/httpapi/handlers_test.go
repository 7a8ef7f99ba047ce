package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DoyleJ11/bp-draft-server/internal/actionlog"
	"github.com/DoyleJ11/bp-draft-server/internal/catalog"
	"github.com/DoyleJ11/bp-draft-server/internal/engine"
	"github.com/DoyleJ11/bp-draft-server/internal/hub"
	"github.com/DoyleJ11/bp-draft-server/internal/lobby"
	"github.com/DoyleJ11/bp-draft-server/pkg/types"
	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	hub   *hub.Hub
	store *actionlog.MemoryStore
	srv   http.Handler
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	store := actionlog.NewMemoryStore()
	h := hub.NewHub(ctx, hub.Config{Store: store})
	return fixture{
		hub:   h,
		store: store,
		srv: SetupRoutes(Deps{
			Hub:   h,
			Store: store,
			Rules: engine.DefaultRules(),
			Clock: func() time.Time { return time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC) },
		}),
	}
}

func (f fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	f.srv.ServeHTTP(rec, req)
	return rec
}

func (f fixture) createRoom(t *testing.T) string {
	t.Helper()
	rec := f.do(t, http.MethodPost, "/rooms", `{"matchTitle":"Finals","teamA":"T1","teamB":"GEN","seriesMode":"BO3","draftMode":"FEARLESS"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var resp types.CreateRoomResponse
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.RoomID, 6)
	return resp.RoomID
}

func TestCreateRoom(t *testing.T) {
	f := newFixture(t)
	id := f.createRoom(t)

	rec := f.do(t, http.MethodGet, "/rooms/"+id+"?role=REFEREE", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var view types.RoomView
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "Finals", view.State.MatchTitle)
	assert.Equal(t, engine.SeriesBO3, view.State.SeriesMode)
	assert.Equal(t, engine.DraftFearless, view.State.DraftMode)
	assert.Equal(t, 1, view.State.CurrentGameIdx)
	assert.Equal(t, engine.RoleReferee, view.State.NextSideSelector)
	assert.Equal(t, engine.RoleReferee, view.Affordances.Role)
	assert.True(t, view.Affordances.CanSetSides)
}

func TestCreateRoomValidation(t *testing.T) {
	f := newFixture(t)
	cases := []struct {
		name string
		body string
	}{
		{"bad json", `{`},
		{"missing team", `{"teamA":"T1","seriesMode":"BO3","draftMode":"STANDARD"}`},
		{"bad series", `{"teamA":"T1","teamB":"GEN","seriesMode":"BO7","draftMode":"STANDARD"}`},
		{"bad draft mode", `{"teamA":"T1","teamB":"GEN","seriesMode":"BO1","draftMode":"CHAOS"}`},
		{"system selector", `{"teamA":"T1","teamB":"GEN","seriesMode":"BO1","draftMode":"STANDARD","firstSideSelector":"SYSTEM"}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := f.do(t, http.MethodPost, "/rooms", c.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGetRoomErrors(t *testing.T) {
	f := newFixture(t)
	id := f.createRoom(t)

	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodGet, "/rooms/NOPE00", "").Code)
	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodGet, "/rooms/"+id+"?role=SYSTEM", "").Code)
}

func TestListActions(t *testing.T) {
	f := newFixture(t)
	id := f.createRoom(t)

	lb := f.hub.Lookup(context.Background(), id)
	require.NotNil(t, lb)
	out := make(chan lobby.Outbound, 8)
	lb.Inbox() <- lobby.Join{ClientID: "ref", Outbox: out}
	<-out
	for _, cmd := range []engine.Command{
		engine.SetSides{By: engine.RoleReferee, SideForA: engine.SideBlue},
		engine.ToggleReady{By: engine.RoleTeamA, Side: engine.SideBlue},
		engine.ToggleReady{By: engine.RoleTeamB, Side: engine.SideRed},
	} {
		lb.Inbox() <- lobby.FromClient{ClientID: "ref", Cmd: cmd}
		select {
		case <-out:
		case <-time.After(time.Second):
			t.Fatal("no snapshot")
		}
	}

	cases := []struct {
		query string
		want  []int64
	}{
		{"", []int64{1, 2, 3}},
		{"?afterSeq=0", []int64{1, 2, 3}},
		{"?afterSeq=1", []int64{2, 3}},
		{"?afterSeq=3", []int64{}},
	}
	for _, c := range cases {
		rec := f.do(t, http.MethodGet, "/rooms/"+id+"/actions"+c.query, "")
		require.Equal(t, http.StatusOK, rec.Code)
		var resp types.ActionsResponse
		require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &resp))
		seqs := []int64{}
		for _, a := range resp.Actions {
			seqs = append(seqs, a.Seq)
		}
		assert.Equal(t, c.want, seqs, c.query)
	}

	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodGet, "/rooms/"+id+"/actions?afterSeq=x", "").Code)
	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodGet, "/rooms/"+id+"/actions?afterSeq=-1", "").Code)
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodGet, "/rooms/NOPE00/actions", "").Code)
}

func TestCatalogAndHealth(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/catalog", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var chars []catalog.Character
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &chars))
	require.NotEmpty(t, chars)
	assert.Equal(t, catalog.NoBan, chars[0].ID)
	assert.Equal(t, catalog.Random, chars[1].ID)

	assert.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/healthz", "").Code)
}
