package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"bbip/pkg/datemath"
	"bbip/pkg/encrypter"
	"bbip/pkg/gcalendar"
	"bbip/pkg/llmprovider"
	"bbip/pkg/log"
	"bbip/pkg/scope"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Storage & auth
	db         *sql.DB
	jwtManager scope.Manager
	encrypter  encrypter.Encrypter

	// Middleware
	rateLimitPerMin int
	allowedOrigins  []string

	// Plan domain
	dates    *datemath.Parser
	llm      llmprovider.Generator
	calendar gcalendar.Calendar
	plan     PlanConfig
}

// PlanConfig carries the plan domain knobs.
type PlanConfig struct {
	AITimeout time.Duration
	MaxBulk   int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Storage & auth
	DB         *sql.DB
	JWTManager scope.Manager
	Encrypter  encrypter.Encrypter

	// Middleware
	RateLimitPerMin int
	AllowedOrigins  []string

	// Plan domain. LLM and Calendar are optional.
	Dates    *datemath.Parser
	LLM      llmprovider.Generator
	Calendar gcalendar.Calendar
	Plan     PlanConfig

	// ShutdownTimeout bounds graceful shutdown; defaults to 10s.
	ShutdownTimeout time.Duration
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		db:              cfg.DB,
		jwtManager:      cfg.JWTManager,
		encrypter:       cfg.Encrypter,
		rateLimitPerMin: cfg.RateLimitPerMin,
		allowedOrigins:  cfg.AllowedOrigins,
		dates:           cfg.Dates,
		llm:             cfg.LLM,
		calendar:        cfg.Calendar,
		plan:            cfg.Plan,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.encrypter == nil {
		return errors.New("encrypter is required")
	}
	if srv.dates == nil {
		return errors.New("date parser is required")
	}
	return nil
}
