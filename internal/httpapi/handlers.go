package httpapi

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/DoyleJ11/bp-draft-server/internal/actionlog"
	"github.com/DoyleJ11/bp-draft-server/internal/catalog"
	"github.com/DoyleJ11/bp-draft-server/internal/engine"
	"github.com/DoyleJ11/bp-draft-server/internal/hub"
	"github.com/DoyleJ11/bp-draft-server/internal/lobby"
	"github.com/DoyleJ11/bp-draft-server/pkg/types"
	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := sonic.Marshal(v)
	if err != nil {
		http.Error(w, "encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, types.ErrorResponse{Error: msg})
}

func CreateRoom(h *hub.Hub, rules engine.Rules, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, 1<<16))
		if err != nil {
			writeError(w, http.StatusBadRequest, "read body")
			return
		}
		var req types.CreateRoomRequest
		if err := sonic.Unmarshal(body, &req); err != nil {
			writeError(w, http.StatusBadRequest, "bad json")
			return
		}
		if err := validate.StructCtx(r.Context(), req); err != nil {
			writeError(w, http.StatusBadRequest, "validation failed: "+err.Error())
			return
		}

		var code string
		for {
			c, err := hub.GenerateCode()
			if err != nil {
				writeError(w, http.StatusInternalServerError, "failed to generate room id")
				return
			}
			if h.Lookup(r.Context(), c) == nil {
				code = c
				break
			}
			log.Debug("collision on room id, regenerating", zap.String("room", c))
		}

		state := engine.NewState(engine.SeriesConfig{
			MatchTitle:        req.MatchTitle,
			TeamA:             req.TeamA,
			TeamB:             req.TeamB,
			SeriesMode:        engine.SeriesMode(req.SeriesMode),
			DraftMode:         engine.DraftMode(req.DraftMode),
			FirstSideSelector: engine.Role(req.FirstSideSelector),
		}, rules)

		reply := make(chan *lobby.Lobby, 1)
		h.Inbox() <- hub.EnsureLobby{Code: code, State: state, Reply: reply}
		if <-reply == nil {
			writeError(w, http.StatusInternalServerError, "failed to create room")
			return
		}

		writeJSON(w, http.StatusCreated, types.CreateRoomResponse{RoomID: code})
	}
}

func roomView(ctx context.Context, lb *lobby.Lobby) (lobby.View, bool) {
	reply := make(chan lobby.View, 1)
	if !lb.Post(lobby.GetState{Reply: reply}) {
		return lobby.View{}, false
	}
	select {
	case v := <-reply:
		return v, true
	case <-lb.Done():
		return lobby.View{}, false
	case <-ctx.Done():
		return lobby.View{}, false
	}
}

// GetRoom returns the state and the affordances of ?role= (SPECTATOR when absent).
func GetRoom(h *hub.Hub, clock func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role := engine.RoleSpectator
		if v := r.URL.Query().Get("role"); v != "" {
			parsed, ok := engine.ParseRole(v)
			if !ok {
				writeError(w, http.StatusBadRequest, "unknown role")
				return
			}
			role = parsed
		}

		lb := h.Lookup(r.Context(), chi.URLParam(r, "id"))
		if lb == nil {
			writeError(w, http.StatusNotFound, "room not found")
			return
		}
		view, ok := roomView(r.Context(), lb)
		if !ok {
			writeError(w, http.StatusNotFound, "room closed")
			return
		}

		writeJSON(w, http.StatusOK, types.RoomView{
			State:       view.State,
			Affordances: engine.Project(view.State, role, clock()),
		})
	}
}

// ListActions is the gap-fill endpoint: every action with seq > afterSeq, ascending.
func ListActions(h *hub.Hub, store actionlog.Store, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var after int64
		if v := r.URL.Query().Get("afterSeq"); v != "" {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil || n < 0 {
				writeError(w, http.StatusBadRequest, "afterSeq must be a non-negative integer")
				return
			}
			after = n
		}

		room := chi.URLParam(r, "id")
		if h.Lookup(r.Context(), room) == nil {
			writeError(w, http.StatusNotFound, "room not found")
			return
		}
		actions, err := store.After(r.Context(), room, after)
		if err != nil {
			log.Error("load actions", zap.String("room", room), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to load actions")
			return
		}
		writeJSON(w, http.StatusOK, types.ActionsResponse{Actions: actions})
	}
}

func Catalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.All())
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
