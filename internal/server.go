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
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/sportlog/internal/ai"
	"github.com/2beens/sportlog/internal/config"
	"github.com/2beens/sportlog/internal/db"
	"github.com/2beens/sportlog/internal/events"
	"github.com/2beens/sportlog/internal/mcp"
	"github.com/2beens/sportlog/internal/middleware"
	"github.com/2beens/sportlog/internal/misc"
	"github.com/2beens/sportlog/internal/sports"
	"github.com/2beens/sportlog/internal/telemetry/metrics"
	"github.com/2beens/sportlog/internal/telemetry/tracing"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client
	rateLimiter middleware.RequestRateLimiter
	publisher   events.Publisher

	sportsService *sports.Service
	analyzer      *ai.Analyzer
	reporter      *ai.Reporter
	healthChecks  misc.HealthChecks

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	GeminiAPIKey            string
	DBPassword              string
	RedisPassword           string
	VersionInfo             string
	HoneycombTracingEnabled bool
	ApplySchema             bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     params.DBPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if params.ApplySchema {
		if err := db.ApplySchema(ctx, dbPool); err != nil {
			dbPool.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
		log.Infoln("db schema applied")
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("sportlog", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "sportlog-backend", rdb)
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	var publisher events.Publisher = events.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		log.Infof("publishing domain events to kafka topic [%s]", cfg.KafkaTopic)
	} else {
		log.Debugln("no kafka brokers configured, domain events are dropped")
	}

	sportsService := sports.NewService(sports.ServiceParams{
		Store:          sports.NewRepo(dbPool),
		Publisher:      publisher,
		MetricsManager: metricsManager,
		StoreTimeout:   cfg.StoreTimeout.Duration,
		Location:       cfg.DisplayLocation(),
	})

	geminiClient, err := ai.NewGeminiClient(ctx, ai.GeminiClientParams{
		BaseURL:    cfg.GeminiBaseURL,
		Model:      cfg.GeminiModel,
		APIKey:     params.GeminiAPIKey,
		HttpClient: tracedHttpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("new gemini client: %w", err)
	}
	if !geminiClient.Configured() {
		log.Warnln("gemini api key not set, ai endpoints answer with placeholders")
	}

	s := &Server{
		config:      cfg,
		dbPool:      dbPool,
		redisClient: rdb,
		rateLimiter: redis_rate.NewLimiter(rdb),
		publisher:   publisher,
		versionInfo: params.VersionInfo,

		sportsService: sportsService,
		analyzer: ai.NewAnalyzer(ai.AnalyzerParams{
			Generator:      geminiClient,
			Cache:          ai.NewRedisAnalysisCache(rdb, ai.DefaultAnalysisTTL),
			MetricsManager: metricsManager,
			Timeout:        cfg.AITimeout.Duration,
		}),
		reporter: ai.NewReporter(ai.ReporterParams{
			Generator:      geminiClient,
			MetricsManager: metricsManager,
			Timeout:        cfg.AITimeout.Duration,
		}),
		healthChecks: misc.HealthChecks{
			Store: sportsService.Health,
			Redis: func(ctx context.Context) error {
				return rdb.Ping(ctx).Err()
			},
			AIConfigured: geminiClient.Configured,
		},

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	return s, nil
}

// routerSetup wraps the router in CORS, so preflights and unknown paths get the CORS headers too.
func (s *Server) routerSetup() (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("sportlog-router"))

	apiRouter := r.PathPrefix(s.config.APIPrefix).Subrouter()

	miscHandler := misc.NewHandler(s.versionInfo, s.healthChecks)
	miscHandler.SetupRoutes(apiRouter)

	sportsHandler := sports.NewHandler(s.sportsService)
	sportsHandler.SetupRoutes(apiRouter)

	aiRouter := apiRouter.PathPrefix("/ai").Subrouter()
	aiHandler := ai.NewHandler(s.analyzer, s.reporter, s.sportsService)
	aiHandler.SetupRoutes(aiRouter)
	// generative calls are the expensive ones, limit them per client
	aiRouter.Use(middleware.RateLimit(s.rateLimiter, "ai", s.config.AIRateLimitPerMin, s.config.TrustProxyHeaders, s.metricsManager))

	mcpServer := mcp.NewServer(s.sportsService)
	r.Handle("/mcp", sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return mcpServer },
		nil,
	)).Name("mcp")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.DrainAndCloseRequest())

	return middleware.Cors()(r), nil
}

func (s *Server) Serve(host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
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

	ctx, timeoutCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer timeoutCancel()

	// stop taking requests first, so no record is written after the pool is gone
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.publisher != nil {
		if err := s.publisher.Close(); err != nil {
			log.Errorf("failed to close events publisher: %s", err)
		}
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
