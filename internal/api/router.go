package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/rawezhy/peywendi/internal/api/handlers"
	"github.com/rawezhy/peywendi/internal/api/middleware"
	"github.com/rawezhy/peywendi/internal/config"
	"github.com/rawezhy/peywendi/internal/llm"
	"github.com/rawezhy/peywendi/internal/session"
	"github.com/rawezhy/peywendi/internal/tts"
	"github.com/rawezhy/peywendi/web"
)

type Router struct {
	mux      *chi.Mux
	cfg      *config.Config
	sessions *session.Manager
	llmGW    *llm.Gateway
	ttsProv  tts.Provider
}

func NewRouter(cfg *config.Config, store session.Store) *Router {
	var ttsProv tts.Provider
	if k := tts.NewKurdishTTS(cfg.TTS); k != nil {
		ttsProv = k
	}

	return &Router{
		mux:      chi.NewRouter(),
		cfg:      cfg,
		sessions: session.NewManager(store, cfg.Session.Secret, cfg.Session.TTL),
		llmGW:    llm.NewGateway(cfg.LLM),
		ttsProv:  ttsProv,
	}
}

func (rt *Router) Setup() http.Handler {
	r := rt.mux

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(rt.cfg.CORS.Origin))
	r.Use(chimiddleware.RequestSize(1 << 20))

	health := handlers.NewHealthHandler(rt.sessions)
	call := handlers.NewCallHandler(rt.sessions, rt.llmGW, rt.ttsProv)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", health.Health)
		r.Get("/ready", health.Ready)
		r.Get("/characters", call.Characters)
		r.Post("/select_character", call.SelectCharacter)
		r.Post("/send_message", call.SendMessage)
		r.Post("/reset_conversation", call.ResetConversation)
	})

	// Embedded browser client.
	r.Handle("/*", web.Handler())

	return r
}
