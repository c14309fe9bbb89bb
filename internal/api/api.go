package api

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/ktsuji/shorekeeper/internal/config"
	"github.com/ktsuji/shorekeeper/internal/db"
	"github.com/ktsuji/shorekeeper/internal/ledger"
	"github.com/rs/cors"
	"golang.org/x/oauth2"
)

// ledgerStore is the read boundary the handlers work against.
type ledgerStore interface {
	LoadLedger(ctx context.Context) (*ledger.Ledger, error)
}

type API struct {
	router      *mux.Router
	store       ledgerStore
	config      *config.Config
	oauthConfig *oauth2.Config
	jwtSecret   []byte
	now         func() time.Time

	mu          sync.Mutex
	oauthStates map[string]time.Time
}

func New(cfg *config.Config, database *db.DB) *API {
	api := &API{
		router:    mux.NewRouter(),
		store:     database,
		config:    cfg,
		jwtSecret: []byte(cfg.JWTSecret),
		now:       func() time.Time { return time.Now().In(cfg.Location) },
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.DiscordClientID,
			ClientSecret: cfg.DiscordClientSecret,
			RedirectURL:  cfg.DiscordRedirectURI,
			Scopes:       []string{"identify"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  "https://discord.com/api/oauth2/authorize",
				TokenURL: "https://discord.com/api/oauth2/token",
			},
		},
	}

	api.setupRoutes()
	return api
}

func (a *API) setupRoutes() {
	// Auth endpoints
	a.router.HandleFunc("/api/auth/login", a.handleLogin).Methods("GET")
	a.router.HandleFunc("/api/auth/callback", a.handleCallback).Methods("GET")
	a.router.HandleFunc("/api/auth/logout", a.handleLogout).Methods("POST")

	// Public endpoints
	a.router.HandleFunc("/api/public/report", a.handleReport).Methods("GET")

	// Protected endpoints
	protected := a.router.PathPrefix("/api").Subrouter()
	protected.Use(a.authMiddleware)

	protected.HandleFunc("/members", a.handleMembers).Methods("GET")
	protected.HandleFunc("/payments", a.handlePayments).Methods("GET")
	protected.HandleFunc("/report", a.handleReport).Methods("GET")
	protected.HandleFunc("/today", a.handleToday).Methods("GET")
}

func (a *API) Start() error {
	// Setup CORS - allow all origins for development, restrict in production
	// Note: When AllowedOrigins is "*", AllowCredentials must be false for security
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	}

	handler := cors.New(corsOptions).Handler(a.router)

	log.Printf("API server listening on http://%s", a.config.WebBind)
	return http.ListenAndServe(a.config.WebBind, handler)
}
