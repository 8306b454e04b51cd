package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/jwt"
	"github.com/simp-lee/logger"
	"gorm.io/gorm"

	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/config"
	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/domain"
	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/middleware"
	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/module/agency"
	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/module/auth"
	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/module/favorite"
	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/module/lease"
	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/module/owner"
	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/module/property"
	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/module/propertytype"
	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/module/tenant"
	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/storage"
)

const serviceName = "api-nairim"

// App holds the core application dependencies and the HTTP server.
type App struct {
	engine *gin.Engine
	db     *gorm.DB
	logger *logger.Logger
	cfg    *config.Config
	jwtSvc jwt.Service
}

type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

var newHTTPServer = func(addr string, handler http.Handler) httpServer {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

var notifyContext = func(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, signals...)
}

// New creates and wires a fully configured App from the given Config.
//
// It sets up logging, database, blob storage, domain repositories, services,
// handlers, middleware, and routes.
func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	success := false

	// 1. Setup logger.
	log, err := config.SetupLogger(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	if cfg.Server.Mode == gin.DebugMode && cfg.Server.Host == "0.0.0.0" {
		log.Warn("insecure server config: debug mode on 0.0.0.0 may expose debug behavior and permissive CORS")
	}
	defer func() {
		if success {
			return
		}
		if err := log.Close(); err != nil {
			slog.Error("logger close error", slog.Any("error", err))
		}
	}()

	// 2. Setup database.
	db, err := config.SetupDatabase(&cfg.Database, log.Logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}
	defer func() {
		if success {
			return
		}
		sqlDB, err := db.DB()
		if err != nil {
			return
		}
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", slog.Any("error", err))
		}
	}()

	// 3. AutoMigrate in debug mode only.
	if cfg.Server.Mode == gin.DebugMode {
		if err := db.AutoMigrate(
			&domain.User{},
			&domain.Address{},
			&domain.Contact{},
			&domain.Agency{},
			&domain.Owner{},
			&domain.Tenant{},
			&domain.PropertyType{},
			&domain.Property{},
			&domain.PropertyValue{},
			&domain.PropertyDocument{},
			&domain.Lease{},
			&domain.Favorite{},
		); err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
		log.Info("auto migration completed")
	}

	// 4. Blob storage and the upload worker pool.
	store, err := storage.NewDiskStorage(cfg.Storage.Dir, cfg.Storage.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("setup storage: %w", err)
	}
	uploadPool := storage.NewUploadPool(store, cfg.Storage.UploadWorkers, parseDurationOrZero(cfg.Storage.UploadTimeout))

	// 5. JWT service when auth is enabled.
	var jwtSvc jwt.Service
	if cfg.Auth.Enabled {
		jwtSvc, err = jwt.New(cfg.Auth.JWTSecret)
		if err != nil {
			return nil, fmt.Errorf("setup jwt service: %w", err)
		}
	}

	// 6. Manual dependency injection: repository → service → handler → module.
	ownerRepo := owner.NewOwnerRepository(db)
	agencyRepo := agency.NewAgencyRepository(db)
	tenantRepo := tenant.NewTenantRepository(db)
	typeRepo := propertytype.NewPropertyTypeRepository(db)
	propertyRepo := property.NewPropertyRepository(db)
	leaseRepo := lease.NewLeaseRepository(db)
	favoriteRepo := favorite.NewFavoriteRepository(db)

	ownerSvc := owner.NewOwnerService(ownerRepo)
	agencySvc := agency.NewAgencyService(agencyRepo)
	tenantSvc := tenant.NewTenantService(tenantRepo)
	typeSvc := propertytype.NewPropertyTypeService(typeRepo)
	propertySvc := property.NewPropertyService(propertyRepo, typeRepo, ownerRepo, agencyRepo, uploadPool)
	leaseSvc := lease.NewLeaseService(leaseRepo, propertyRepo, tenantRepo)
	favoriteSvc := favorite.NewFavoriteService(favoriteRepo, propertyRepo)

	maxUploadBytes := int64(cfg.Storage.MaxUploadSizeMB) << 20

	modules := []Module{
		owner.NewModule(owner.NewOwnerHandler(ownerSvc)),
		agency.NewModule(agency.NewAgencyHandler(agencySvc)),
		tenant.NewModule(tenant.NewTenantHandler(tenantSvc)),
		propertytype.NewModule(propertytype.NewPropertyTypeHandler(typeSvc)),
		property.NewModule(property.NewPropertyHandler(propertySvc, maxUploadBytes)),
		lease.NewModule(lease.NewLeaseHandler(leaseSvc)),
		favorite.NewModule(favorite.NewFavoriteHandler(favoriteSvc)),
	}

	if cfg.Auth.Enabled {
		tokenExpiry, err := time.ParseDuration(cfg.Auth.TokenExpiry)
		if err != nil {
			return nil, fmt.Errorf("parse auth.token_expiry: %w", err)
		}
		userRepo := auth.NewUserRepository(db)
		authSvc := auth.NewService(jwtSvc, userRepo, tokenExpiry)
		modules = append(modules, auth.NewModule(auth.NewHandler(authSvc)))
	}

	// 7. Create Gin engine with custom middleware (not gin.Default()).
	if err := validateGinMode(cfg.Server.Mode); err != nil {
		return nil, err
	}
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	corsConfig := resolveCORSConfig(cfg.Server.Mode, &cfg.Server.CORS)

	engine.Use(
		middleware.Recovery(log.Logger),
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			TrustUpstream: false,
		}),
		middleware.Logger(log.Logger, "/health"),
		middleware.CORSWithConfig(corsConfig),
	)
	if cfg.Server.RateLimit.Enabled {
		engine.Use(middleware.NewRateLimiter(cfg.Server.RateLimit.RPS, cfg.Server.RateLimit.Burst).Middleware())
	}
	if cfg.Auth.Enabled {
		engine.Use(middleware.Auth(jwtSvc, cfg.Auth.PublicPaths))
	}

	// 8. Register all routes.
	if err := RegisterRoutes(engine, &RouteDeps{
		Modules: modules,
		DB:      db,
		Service: serviceName,
		Start:   time.Now(),
	}); err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}

	success = true
	return &App{
		engine: engine,
		db:     db,
		logger: log,
		cfg:    cfg,
		jwtSvc: jwtSvc,
	}, nil
}

// resolveCORSConfig builds the CORS middleware config from application
// settings. In release mode, when no allowlist is configured, cross-origin
// requests are denied by default.
func resolveCORSConfig(mode string, cors *config.CORSConfig) middleware.CORSConfig {
	corsConfig := middleware.DefaultCORSConfig()

	if len(cors.AllowMethods) > 0 {
		corsConfig.AllowMethods = cors.AllowMethods
	}
	if len(cors.AllowHeaders) > 0 {
		corsConfig.AllowHeaders = cors.AllowHeaders
	}
	if cors.MaxAge != "" {
		if d, err := time.ParseDuration(cors.MaxAge); err == nil && d > 0 {
			corsConfig.MaxAge = fmt.Sprintf("%d", int(d.Seconds()))
		}
	}
	corsConfig.AllowCredentials = cors.AllowCredentials

	if len(cors.AllowOrigins) > 0 {
		corsConfig.AllowOrigins = cors.AllowOrigins
		return corsConfig
	}
	if mode == gin.ReleaseMode {
		corsConfig.AllowOrigins = []string{}
	}
	return corsConfig
}

func validateGinMode(mode string) error {
	switch mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		return nil
	default:
		return fmt.Errorf("invalid server.mode %q: must be one of %q, %q, %q", mode, gin.DebugMode, gin.ReleaseMode, gin.TestMode)
	}
}

func parseDurationOrZero(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}
	return d
}

// Run starts the HTTP server and blocks until a shutdown signal is received.
// It performs graceful shutdown with a 5-second timeout and closes the
// database connection and JWT service.
func (a *App) Run() error {
	if a == nil {
		return errors.New("app is nil")
	}
	if a.cfg == nil {
		return errors.New("app config is nil")
	}
	if a.engine == nil {
		return errors.New("app engine is nil")
	}

	addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
	srv := newHTTPServer(addr, a.engine)

	// Listen for SIGINT / SIGTERM.
	ctx, stop := notifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server in a goroutine.
	errCh := make(chan error, 1)
	go func() {
		a.logInfo("server started", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var runErr error

	// Wait for shutdown signal or server error.
	select {
	case <-ctx.Done():
		a.logInfo("shutdown signal received")
	case err := <-errCh:
		runErr = fmt.Errorf("server error: %w", err)
	}

	if runErr == nil {
		// Graceful shutdown with 5-second deadline.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.logError("server shutdown error", slog.Any("error", err))
		}
	}

	if a.jwtSvc != nil {
		a.jwtSvc.Close()
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				a.logError("database close error", slog.Any("error", err))
			} else {
				a.logInfo("database connection closed")
			}
		}
	}

	if a.logger != nil {
		a.logger.Info("server stopped")
		if err := a.logger.Close(); err != nil {
			slog.Error("logger close error", slog.Any("error", err))
		}
	} else {
		slog.Info("server stopped")
	}

	if runErr != nil {
		return runErr
	}

	return nil
}

func (a *App) logInfo(msg string, args ...any) {
	if a.logger != nil {
		a.logger.Info(msg, args...)
		return
	}
	slog.Info(msg, args...)
}

func (a *App) logError(msg string, args ...any) {
	if a.logger != nil {
		a.logger.Error(msg, args...)
		return
	}
	slog.Error(msg, args...)
}
