package httpapi

import (
	"net/http"
	"time"

	"github.com/DoyleJ11/bp-draft-server/internal/actionlog"
	"github.com/DoyleJ11/bp-draft-server/internal/engine"
	"github.com/DoyleJ11/bp-draft-server/internal/hub"
	"github.com/DoyleJ11/bp-draft-server/internal/ws"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Deps struct {
	Hub            *hub.Hub
	Store          actionlog.Store
	Rules          engine.Rules
	Logger         *zap.Logger
	OriginPatterns []string
	Clock          func() time.Time
}

func SetupRoutes(d Deps) http.Handler {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Clock == nil {
		d.Clock = time.Now
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	// Public routes
	r.Post("/rooms", CreateRoom(d.Hub, d.Rules, d.Logger))
	r.Get("/rooms/{id}", GetRoom(d.Hub, d.Clock))
	r.Get("/rooms/{id}/actions", ListActions(d.Hub, d.Store, d.Logger))
	r.Get("/catalog", Catalog)
	r.Get("/healthz", Healthz)
	r.Get("/ws", ws.Handler(d.Hub, d.Logger, d.OriginPatterns))
	return r
}
