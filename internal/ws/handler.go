package ws

import (
	"context"
	"net/http"
	"time"

	"github.com/DoyleJ11/bp-draft-server/internal/hub"
	"github.com/DoyleJ11/bp-draft-server/internal/lobby"
	"github.com/DoyleJ11/bp-draft-server/pkg/types"
	"github.com/bytedance/sonic"
	"github.com/coder/websocket"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
)

func Handler(h *hub.Hub, log *zap.Logger, originPatterns []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		room := r.URL.Query().Get("room")
		if room == "" {
			http.Error(w, "missing room", http.StatusBadRequest)
			return
		}

		lb := h.Lookup(r.Context(), room)
		if lb == nil {
			http.Error(w, "room not found", http.StatusNotFound)
			return
		}

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: originPatterns,
		})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		out := make(chan lobby.Outbound, 16)
		clientID := gonanoid.Must()
		log := log.With(zap.String("room", room), zap.String("client", clientID))

		if !lb.Post(lobby.Join{ClientID: clientID, Outbox: out}) {
			conn.Close(websocket.StatusGoingAway, "room closed")
			return
		}
		defer lb.Post(lobby.Leave{ClientID: clientID})
		log.Debug("client joined")

		// Writer goroutine
		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			for {
				select {
				case <-writeCtx.Done():
					return
				case o, ok := <-out:
					if !ok {
						if writeCtx.Err() == nil {
							// The lobby dropped us: shut down or we were too slow. Client resyncs on reconnect.
							conn.Close(websocket.StatusTryAgainLater, "resync")
						}
						return
					}
					if err := write(writeCtx, conn, encode(o)); err != nil {
						log.Debug("write failed", zap.Error(err))
						return
					}
				}
			}
		}()

		// Reader loop
		for {
			_, data, err := conn.Read(r.Context())
			if err != nil {
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				default:
					log.Debug("read failed", zap.Error(err))
				}
				return
			}

			var cm types.ClientMessage
			if err := sonic.Unmarshal(data, &cm); err != nil {
				_ = write(r.Context(), conn, rejected("bad json"))
				continue
			}

			cmd, err := toEngineCommand(cm)
			if err != nil {
				_ = write(r.Context(), conn, rejected(err.Error()))
				continue
			}

			if !lb.Post(lobby.FromClient{ClientID: clientID, Cmd: cmd}) {
				return
			}
		}
	}
}

func encode(o lobby.Outbound) types.ServerMessage {
	switch v := o.(type) {
	case lobby.Snapshot:
		return types.ServerMessage{Type: types.MsgStateSync, Payload: v.State}
	case lobby.Rejection:
		return rejected(v.Reason)
	}
	return rejected("internal error")
}

func rejected(reason string) types.ServerMessage {
	return types.ServerMessage{Type: types.MsgActionRejected, Payload: types.RejectedPayload{Reason: reason}}
}

func write(ctx context.Context, conn *websocket.Conn, msg types.ServerMessage) error {
	payload, err := sonic.Marshal(msg)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, payload)
}
