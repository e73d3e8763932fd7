package handlers

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

import (
	"net/http"

	_ "github.com/eshonkulov-asliddin/bonus-shop/docs"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/config"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/domain"
	holderhandlers "github.com/eshonkulov-asliddin/bonus-shop/internal/handlers/holder"
	sessionhandlers "github.com/eshonkulov-asliddin/bonus-shop/internal/handlers/session"
	terminalhandlers "github.com/eshonkulov-asliddin/bonus-shop/internal/handlers/terminal"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/service"
	"github.com/eshonkulov-asliddin/bonus-shop/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type SessionHandler interface {
	Telegram(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Operator(w http.ResponseWriter, r *http.Request)
	Current(w http.ResponseWriter, r *http.Request)
	SignOut(w http.ResponseWriter, r *http.Request)
}

type TerminalHandler interface {
	State(w http.ResponseWriter, r *http.Request)
	Load(w http.ResponseWriter, r *http.Request)
	Kind(w http.ResponseWriter, r *http.Request)
	Scan(w http.ResponseWriter, r *http.Request)
	Select(w http.ResponseWriter, r *http.Request)
	Amount(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type HolderHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
	Visibility(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	SessionHandler  SessionHandler
	TerminalHandler TerminalHandler
	HolderHandler   HolderHandler

	JWT            auth.JWTServiceInterface
	AllowedOrigins []string
}

// New builds the HTTP layer and returns the holder handler separately so the
// caller can feed it session and refresh events.
func New(cfg *config.Config, s *service.Services, hub *holderhandlers.Hub) (*Handlers, *holderhandlers.HolderHandler) {
	holder := holderhandlers.New(s.Session, s.Stats, s.Scheduler, hub, cfg.AllowedOrigins)
	return &Handlers{
		SessionHandler:  sessionhandlers.New(s.Session, s.Verifier, s.JWT),
		TerminalHandler: terminalhandlers.New(s.Terminal, s.Stats),
		HolderHandler:   holder,
		JWT:             s.JWT,
		AllowedOrigins:  cfg.AllowedOrigins,
	}, holder
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins:   h.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"Authorization"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/session", func(r chi.Router) {
			r.Get("/", h.SessionHandler.Current)
			r.Delete("/", h.SessionHandler.SignOut)
			r.Post("/telegram", h.SessionHandler.Telegram)
			r.Post("/register", h.SessionHandler.Register)
			r.Post("/login", h.SessionHandler.Login)
			r.Post("/operator", h.SessionHandler.Operator)
		})

		r.Route("/holder", func(r chi.Router) {
			r.Get("/", h.HolderHandler.Dashboard)
			r.Post("/visibility", h.HolderHandler.Visibility)
			r.Post("/refresh", h.HolderHandler.Refresh)
			r.Get("/stream", h.HolderHandler.Stream)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.JWT, string(domain.RoleOperator)))
			r.Route("/terminal", func(r chi.Router) {
				r.Get("/", h.TerminalHandler.State)
				r.Post("/load", h.TerminalHandler.Load)
				r.Post("/kind", h.TerminalHandler.Kind)
				r.Post("/scan", h.TerminalHandler.Scan)
				r.Post("/select", h.TerminalHandler.Select)
				r.Post("/amount", h.TerminalHandler.Amount)
				r.Post("/submit", h.TerminalHandler.Submit)
				r.Post("/cancel", h.TerminalHandler.Cancel)
			})
		})
	})

	return r
}
