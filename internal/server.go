package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/fittrack/internal/account"
	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/clock"
	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/middleware"
	"github.com/2beens/fittrack/internal/nutrition"
	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/progress"
	"github.com/2beens/fittrack/internal/report"
	"github.com/2beens/fittrack/internal/session"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/workouts"
	"github.com/2beens/fittrack/pkg"
)

const (
	sessionsCleanupInterval = 8 * time.Hour
	maxRequestBodyBytes     = 1 << 20
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config *config.Config
	clock  clock.Clock
	dbPool *pgxpool.Pool

	redisClient   *redis.Client
	loginChecker  *auth.LoginChecker
	authService   *auth.Service
	sessions      *session.Registry
	reportStorage report.Storage

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
	unsubscribers  []func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	DBUser                  string
	DBPassword              string
	RedisPassword           string
	HoneycombTracingEnabled bool
	OtelServiceName         string
	DriveCredentialsFile    string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	clk, err := clock.LoadSystem(params.Config.Timezone)
	if err != nil {
		return nil, err
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBUser:         params.DBUser,
		DBPassword:     params.DBPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "fittrack", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	sessions := session.NewRegistry(clk, metricsManager)
	unsubscribers := []func(){
		sessions.Subscribe(session.MetricsSubscriber(metricsManager)),
		sessions.Subscribe(session.LogSubscriber()),
	}

	authService := auth.NewAuthService(auth.NewRepo(dbPool), auth.DefaultTTL, rdb)
	go func() {
		ticker := time.NewTicker(sessionsCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				cleanExpiredSessions(ctx, authService, sessions, now)
			}
		}
	}()

	serviceName := params.OtelServiceName
	if serviceName == "" {
		serviceName = "fittrack-backend"
	}
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, serviceName, rdb)
	if err != nil {
		return nil, err
	}

	reportStorage, err := newReportStorage(ctx, params.Config, params.DriveCredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("reports storage: %w", err)
	}

	return &Server{
		config:        params.Config,
		clock:         clk,
		dbPool:        dbPool,
		versionInfo:   params.VersionInfo,
		redisClient:   rdb,
		authService:   authService,
		loginChecker:  auth.NewLoginChecker(auth.DefaultTTL, rdb),
		sessions:      sessions,
		reportStorage: reportStorage,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
		unsubscribers:  unsubscribers,
	}, nil
}

type sessionsCleaner interface {
	ScanAndClean(ctx context.Context, now time.Time) (expiredUsers []string)
}

type stateDropper interface {
	Drop(userID string)
}

// cleanExpiredSessions removes expired login sessions, and the in-memory state of users left without one.
func cleanExpiredSessions(ctx context.Context, cleaner sessionsCleaner, states stateDropper, now time.Time) {
	for _, userID := range cleaner.ScanAndClean(ctx, now) {
		states.Drop(userID)
	}
}

// newReportStorage returns nil when exported reports are not kept.
func newReportStorage(ctx context.Context, cfg *config.Config, driveCredentialsFile string) (report.Storage, error) {
	switch cfg.ReportsStorage {
	case "none":
		return nil, nil
	case "disk":
		return report.NewDiskStorage(cfg.ReportsDiskPath)
	case "drive":
		if driveCredentialsFile == "" {
			log.Warnln("drive reports storage configured without credentials, reports will not be kept")
			return nil, nil
		}
		driveService, err := report.NewDriveService(ctx, driveCredentialsFile)
		if err != nil {
			return nil, err
		}
		return report.NewDriveStorage(ctx, driveService, cfg.ReportsDriveDir)
	}
	return nil, fmt.Errorf("unknown reports storage: %s", cfg.ReportsStorage)
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("fittrack-router"))

	profiles := profile.NewCachedStore(profile.NewRepo(s.dbPool), s.config.ProfileCacheSizeMB)
	completions := workouts.NewRepo(s.dbPool)
	tracking := nutrition.NewTrackingRepo(s.dbPool)
	progressRepo := progress.NewRepo(s.dbPool)
	fetcher := progress.NewFetcher(progressRepo, tracking, completions, progressRepo)

	workoutsService := workouts.NewService(profiles, completions, workouts.DefaultPlan(), s.clock, s.sessions, s.metricsManager)
	nutritionService := nutrition.NewService(profiles, tracking, s.clock, s.sessions, s.metricsManager)
	progressService := progress.NewService(
		fetcher,
		progressRepo,
		progressRepo,
		profiles,
		nutritionService,
		s.clock,
		s.sessions,
		s.metricsManager,
	)
	accountService := account.NewService(profiles, progressService, nutritionService, s.sessions)
	reportService := report.NewService(profiles, fetcher, s.reportStorage, s.clock, s.metricsManager)

	r.HandleFunc("/", s.handleRoot).Methods("GET", "OPTIONS").Name("root")

	authHandler := auth.NewHandler(s.authService, s.sessions)
	authRouter := r.PathPrefix("/auth").Subrouter()
	authRouter.HandleFunc("/signup", authHandler.HandleSignup).Methods("POST", "OPTIONS").Name("signup")
	authRouter.HandleFunc("/login", authHandler.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	authRouter.HandleFunc("/logout", authHandler.HandleLogout).Methods("GET", "POST", "OPTIONS").Name("logout")
	// limit credential guessing on the auth endpoints
	authRouter.Use(middleware.RateLimit(
		redis_rate.NewLimiter(s.redisClient),
		"auth",
		s.config.LoginRateLimitAllowedPerMin,
		s.metricsManager,
	))

	workouts.NewHandler(workoutsService).SetupRoutes(r)
	nutrition.NewHandler(nutritionService, nutrition.DefaultFoods).SetupRoutes(r)
	progress.NewHandler(progressService).SetupRoutes(r)
	account.NewHandler(accountService).SetupRoutes(r)
	report.NewHandler(reportService).SetupRoutes(r)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.LimitAndDrainRequest(maxRequestBodyBytes))

	return r
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	msg := "I'm OK, thanks ;)"
	if s.versionInfo != "" {
		msg += " " + s.versionInfo
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.Text, []byte(msg))
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
		"metrics",
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	for _, unsubscribe := range s.unsubscribers {
		unsubscribe()
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
