package server

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mts-ml/eManage-sub000/clients"
	"github.com/mts-ml/eManage-sub000/expenses"
	"github.com/mts-ml/eManage-sub000/internal/config"
	apperrors "github.com/mts-ml/eManage-sub000/internal/errors"
	"github.com/mts-ml/eManage-sub000/products"
	"github.com/mts-ml/eManage-sub000/purchases"
	"github.com/mts-ml/eManage-sub000/reports"
	"github.com/mts-ml/eManage-sub000/sales"
	"github.com/mts-ml/eManage-sub000/session"
	"github.com/mts-ml/eManage-sub000/suppliers"
	"github.com/mts-ml/eManage-sub000/token"
	"github.com/mts-ml/eManage-sub000/token/refresh"
	"github.com/mts-ml/eManage-sub000/users"
)

// Repos holds all repository dependencies for the Server
type Repos struct {
	Users         users.UserRepo
	RefreshTokens refresh.Repo
	Clients       clients.Repo
	Suppliers     suppliers.Repo
	Products      products.Repo
	Sales         sales.Repo
	Purchases     purchases.Repo
	Expenses      expenses.Repo
}

type Server struct {
	env          string // Environment (e.g., "DEV", "PROD")
	mux          *http.ServeMux
	routes       []string
	config       config.Config
	repos        Repos
	tokens       *token.Manager
	refreshMgr   *refresh.Manager
	reports      *reports.Service
	validate     *validator.Validate
	loginLimiter *RateLimiter
}

func New(cfg config.Config, repos Repos) (*Server, error) {
	if repos.Users == nil {
		return nil, fmt.Errorf("[Server New] Users repo is required")
	}
	if repos.RefreshTokens == nil {
		return nil, fmt.Errorf("[Server New] RefreshTokens repo is required")
	}

	s := &Server{
		mux:        http.NewServeMux(),
		config:     cfg,
		repos:      repos,
		tokens:     token.New(cfg),
		refreshMgr: refresh.NewManager(repos.RefreshTokens, cfg),
		reports:    reports.NewService(repos.Sales, repos.Purchases, repos.Expenses),
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}
	s.env = cfg.GetEnv()
	if cfg.GetEnableRateLimiting() {
		s.loginLimiter = NewRateLimiter(cfg.GetLoginRatePerSecond(), cfg.GetLoginRateBurst())
	}

	if err := s.bootstrapAdminUser(); err != nil {
		return nil, fmt.Errorf("[Server New] failed to bootstrap admin user: %w", err)
	}

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

// bootstrapAdminUser ensures the configured admin user exists so a fresh
// deployment can be signed into. Skipped when no admin password is set.
func (s *Server) bootstrapAdminUser() error {
	password := s.config.GetAdminPassword()
	if password == "" {
		return nil
	}

	email := s.config.GetAdminEmail()
	if _, err := s.repos.Users.GetByEmail(email); err == nil {
		return nil
	} else if !apperrors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}

	hash, err := users.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	admin := &users.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         s.config.GetAdminName(),
		PasswordHash: hash,
		Roles:        []session.Role{session.RoleAdmin, session.RoleFinance, session.RoleSales},
	}
	if err := s.repos.Users.Upsert(admin); err != nil {
		return err
	}

	log.Info().Str("email", email).Msg("bootstrapped admin user")
	return nil
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		log.Debug().Str("route", route).Msg("registered")
	}
}
