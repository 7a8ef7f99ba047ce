package hub

import (
	"context"
	"time"

	"github.com/DoyleJ11/bp-draft-server/internal/actionlog"
	"github.com/DoyleJ11/bp-draft-server/internal/engine"
	"github.com/DoyleJ11/bp-draft-server/internal/lobby"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateCode returns a 6-character room id.
func GenerateCode() (string, error) {
	return gonanoid.Generate(codeAlphabet, 6)
}

type HubMsg interface{ isHubMsg() }

type CreateLobby struct {
	Code  string
	State engine.State
	Reply chan *lobby.Lobby
}

type GetLobby struct {
	Code  string
	Reply chan *lobby.Lobby
}

type EnsureLobby struct {
	Code  string
	State engine.State // only used if creation happens
	Reply chan *lobby.Lobby
}

type RemoveLobby struct {
	Code string
}

// ShutdownHub stops every lobby. Done is closed once all of them have exited.
type ShutdownHub struct {
	Done chan struct{}
}

func (CreateLobby) isHubMsg() {}
func (GetLobby) isHubMsg()    {}
func (EnsureLobby) isHubMsg() {}
func (RemoveLobby) isHubMsg() {}
func (ShutdownHub) isHubMsg() {}

type Config struct {
	Store  actionlog.Store
	Logger *zap.Logger
	Clock  func() time.Time
}

type Hub struct {
	inbox   chan HubMsg
	lobbies map[string]*lobby.Lobby
	cfg     Config
	log     *zap.Logger
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewHub(parent context.Context, cfg Config) *Hub {
	ctx, cancel := context.WithCancel(parent)
	if cfg.Store == nil {
		cfg.Store = actionlog.NewMemoryStore()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	h := &Hub{
		inbox:   make(chan HubMsg, 64),
		lobbies: make(map[string]*lobby.Lobby),
		cfg:     cfg,
		log:     cfg.Logger,
		ctx:     ctx,
		cancel:  cancel,
	}
	go h.loop()
	return h
}

func (h *Hub) Inbox() chan<- HubMsg { return h.inbox }

// Lookup is the request/reply round trip for GetLobby. It returns nil for unknown codes.
func (h *Hub) Lookup(ctx context.Context, code string) *lobby.Lobby {
	reply := make(chan *lobby.Lobby, 1)
	select {
	case h.inbox <- GetLobby{Code: code, Reply: reply}:
	case <-ctx.Done():
		return nil
	case <-h.ctx.Done():
		return nil
	}
	select {
	case lb := <-reply:
		return lb
	case <-ctx.Done():
		return nil
	case <-h.ctx.Done():
		return nil
	}
}

func (h *Hub) loop() {
	for {
		select {
		case <-h.ctx.Done():
			h.shutdown()
			return

		case m := <-h.inbox:
			switch msg := m.(type) {
			case CreateLobby:
				if lb := h.lobbies[msg.Code]; lb != nil {
					msg.Reply <- lb
					break
				}
				msg.Reply <- h.create(msg.Code, msg.State)

			case GetLobby:
				msg.Reply <- h.lobbies[msg.Code] // May be nil

			case EnsureLobby:
				if lb := h.lobbies[msg.Code]; lb != nil {
					msg.Reply <- lb
					break
				}
				msg.Reply <- h.create(msg.Code, msg.State)

			case RemoveLobby:
				if lb := h.lobbies[msg.Code]; lb != nil {
					lb.Post(lobby.Shutdown{})
					delete(h.lobbies, msg.Code)
					h.log.Info("room removed", zap.String("room", msg.Code))
				}

			case ShutdownHub:
				h.shutdown()
				h.cancel()
				if msg.Done != nil {
					close(msg.Done)
				}
				return
			}
		}
	}
}

func (h *Hub) create(code string, state engine.State) *lobby.Lobby {
	lb := lobby.NewLobby(h.ctx, state, lobby.Config{
		ID:     code,
		Store:  h.cfg.Store,
		Logger: h.log,
		Clock:  h.cfg.Clock,
	})
	h.lobbies[code] = lb
	h.log.Info("room created",
		zap.String("room", code),
		zap.String("seriesMode", string(state.SeriesMode)),
		zap.String("draftMode", string(state.DraftMode)),
	)
	return lb
}

// shutdown stops every lobby and waits for their loops to exit.
func (h *Hub) shutdown() {
	var wg conc.WaitGroup
	for _, lb := range h.lobbies {
		wg.Go(func() {
			lb.Post(lobby.Shutdown{})
			<-lb.Done()
		})
	}
	wg.Wait()
	clear(h.lobbies)
}
