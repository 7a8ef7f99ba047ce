package lobby

import (
	"context"
	"time"

	"github.com/DoyleJ11/bp-draft-server/internal/actionlog"
	"github.com/DoyleJ11/bp-draft-server/internal/engine"
	"go.uber.org/zap"
)

type Msg interface{ isLobbyMsg() }

// FromClient carries a decoded command. Rejections go back to ClientID only.
type FromClient struct {
	ClientID string
	Cmd      engine.Command
}

func (FromClient) isLobbyMsg() {}

type Join struct {
	ClientID string
	Outbox   chan Outbound // where this client wants to receive updates
}

func (Join) isLobbyMsg() {}

type Leave struct{ ClientID string }

func (Leave) isLobbyMsg() {}

type Shutdown struct{}

func (Shutdown) isLobbyMsg() {}

type GetState struct {
	Reply chan View
}

func (GetState) isLobbyMsg() {}

// TimerFired is posted by the room's own deadline timer. Fires from an older Gen are stale.
type TimerFired struct{ Gen uint64 }

func (TimerFired) isLobbyMsg() {}

// Outbound is what a connected client receives: a Snapshot or a Rejection.
type Outbound interface{ isOutbound() }

type Snapshot struct {
	Seq   int64
	State engine.State
}

type Rejection struct {
	Reason string
}

func (Snapshot) isOutbound()  {}
func (Rejection) isOutbound() {}

type View struct {
	Seq        int64
	NumClients int
	State      engine.State
}

type Config struct {
	ID     string
	Store  actionlog.Store
	Logger *zap.Logger
	// Clock defaults to time.Now.
	Clock func() time.Time
	// RetryDelay is how long a rejected timeout waits before trying again.
	RetryDelay time.Duration
}

type Lobby struct {
	id      string
	inbox   chan Msg
	state   engine.State
	clients map[string]chan Outbound
	store   actionlog.Store
	log     *zap.Logger
	now     func() time.Time

	timer      *time.Timer
	timerGen   uint64
	retryDelay time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

func NewLobby(parent context.Context, initial engine.State, cfg Config) *Lobby {
	ctx, cancel := context.WithCancel(parent)
	if cfg.Store == nil {
		cfg.Store = actionlog.NewMemoryStore()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Second
	}

	l := &Lobby{
		id:      cfg.ID,
		inbox:   make(chan Msg, 64), // Small buffer
		state:   initial,
		clients: make(map[string]chan Outbound),
		store:   cfg.Store,
		log:     cfg.Logger.With(zap.String("room", cfg.ID)),
		now:     cfg.Clock,
		ctx:     ctx,
		cancel:  cancel,
		done:    make(chan struct{}),

		retryDelay: cfg.RetryDelay,
	}

	l.rearm()
	go l.loop()
	return l
}

func (l *Lobby) loop() {
	defer close(l.done)
	for {
		select {
		case <-l.ctx.Done():
			l.shutdown()
			return

		case m := <-l.inbox:
			switch msg := m.(type) {
			case Join:
				// Register client + send current snapshot immediately
				l.clients[msg.ClientID] = msg.Outbox
				l.send(msg.ClientID, Snapshot{Seq: l.state.LastActionSeq, State: l.state})

			case Leave:
				if ch, ok := l.clients[msg.ClientID]; ok {
					close(ch)
					delete(l.clients, msg.ClientID)
				}

			case FromClient:
				l.submit(msg.ClientID, msg.Cmd)

			case TimerFired:
				if msg.Gen != l.timerGen {
					break
				}
				cmd, ok := engine.TimeoutCommand(l.state)
				if !ok {
					break
				}
				l.log.Info("step timed out", zap.Int("stepIndex", l.state.Cursor), zap.String("phase", string(l.state.Phase)))
				l.submit("", cmd)

			case GetState:
				msg.Reply <- View{
					Seq:        l.state.LastActionSeq,
					NumClients: len(l.clients),
					State:      l.state.Clone(),
				}

			case Shutdown:
				l.shutdown()
				return
			}
		}
	}
}

// submit applies cmd, appends the action and only then commits and broadcasts.
func (l *Lobby) submit(clientID string, cmd engine.Command) {
	act, next, err := engine.Apply(l.state, cmd, l.now())
	if err != nil {
		l.log.Debug("action rejected", zap.String("client", clientID), zap.Error(err))
		l.send(clientID, Rejection{Reason: err.Error()})
		l.retryTimeout(clientID)
		return
	}

	ctx, cancel := context.WithTimeout(l.ctx, 5*time.Second)
	err = l.store.Append(ctx, l.id, act)
	cancel()
	if err != nil {
		l.log.Error("append action", zap.Int64("seq", act.Seq), zap.Error(err))
		l.send(clientID, Rejection{Reason: "action log unavailable"})
		l.retryTimeout(clientID)
		return
	}

	l.state = next
	l.log.Info("action accepted",
		zap.Int64("seq", act.Seq),
		zap.String("type", string(act.Type)),
		zap.String("actor", string(act.ActorRole)),
		zap.String("heroId", act.CharacterID),
	)
	l.rearm()
	l.broadcast(Snapshot{Seq: l.state.LastActionSeq, State: l.state})
}

// rearm replaces the pending timer with one for the current deadline, if any.
func (l *Lobby) rearm() {
	l.stopTimer()
	deadline, ok := engine.Deadline(l.state)
	if !ok {
		return
	}
	l.arm(max(0, deadline.Sub(l.now())))
}

// retryTimeout schedules another attempt when the system's own timeout action failed.
// Client rejections leave the timer alone.
func (l *Lobby) retryTimeout(clientID string) {
	if clientID != "" {
		return
	}
	if _, ok := engine.Deadline(l.state); !ok {
		return
	}
	l.log.Warn("timeout action failed, retrying", zap.Duration("after", l.retryDelay))
	l.stopTimer()
	l.arm(l.retryDelay)
}

func (l *Lobby) arm(d time.Duration) {
	gen := l.timerGen
	l.timer = time.AfterFunc(d, func() {
		select {
		case l.inbox <- TimerFired{Gen: gen}:
		case <-l.ctx.Done():
		}
	})
}

// stopTimer cancels the pending timer and invalidates any fire already queued.
func (l *Lobby) stopTimer() {
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
	l.timerGen++
}

func (l *Lobby) shutdown() {
	l.stopTimer()
	for id, ch := range l.clients {
		close(ch) // Tell client no more updates
		delete(l.clients, id)
	}
	l.cancel()
}

// send delivers to one client. "" is the timer and has no outbox.
func (l *Lobby) send(clientID string, out Outbound) {
	ch, ok := l.clients[clientID]
	if !ok {
		return
	}
	select {
	case ch <- out:
	default:
		close(ch)
		delete(l.clients, clientID)
	}
}

func (l *Lobby) broadcast(snap Snapshot) {
	for id, ch := range l.clients {
		select {
		case ch <- snap:
			//ok
		default:
			// Client is slow/full - drop them.
			close(ch)
			delete(l.clients, id)
			l.log.Warn("dropped slow client", zap.String("client", id))
		}
	}
}

// Expose the inbox so the hub or WS layer can send messages.
func (l *Lobby) Inbox() chan<- Msg { return l.inbox }

// Post delivers m unless the lobby has already stopped.
func (l *Lobby) Post(m Msg) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.inbox <- m:
		return true
	case <-l.done:
		return false
	}
}

// Done is closed once the loop has exited.
func (l *Lobby) Done() <-chan struct{} { return l.done }

func (l *Lobby) ID() string { return l.id }
