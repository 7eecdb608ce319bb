package misc

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/sportlog/internal/telemetry/tracing"
	"github.com/2beens/sportlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"

	aiConfigured  = "configured"
	aiPlaceholder = "placeholder"

	healthCheckTimeout = 2 * time.Second
)

// HealthChecks are optional; a nil check is reported as ok.
type HealthChecks struct {
	Store        func(ctx context.Context) error
	Redis        func(ctx context.Context) error
	AIConfigured func() bool
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
	Redis     string `json:"redis"`
	AI        string `json:"ai"`
}

type Handler struct {
	versionInfo string
	checks      HealthChecks
	now         func() time.Time
}

func NewHandler(versionInfo string, checks HealthChecks) *Handler {
	return &Handler{
		versionInfo: versionInfo,
		checks:      checks,
		now:         time.Now,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/health", handler.handleHealth).Methods("GET", "OPTIONS").Name("health")
	mainRouter.HandleFunc("/myip", handler.handleGetMyIp).Methods("GET").Name("myip")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

// handleHealth always answers 200; failing dependencies only mark the status degraded.
func (handler *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.health")
	defer span.End()

	resp := HealthResponse{
		Status:    StatusOK,
		Timestamp: handler.now().UTC().Format(time.RFC3339Nano),
		DB:        handler.runCheck(ctx, "db", handler.checks.Store),
		Redis:     handler.runCheck(ctx, "redis", handler.checks.Redis),
		AI:        aiPlaceholder,
	}
	if handler.checks.AIConfigured != nil && handler.checks.AIConfigured() {
		resp.AI = aiConfigured
	}
	if resp.DB != StatusOK || resp.Redis != StatusOK {
		resp.Status = StatusDegraded
	}

	span.SetAttributes(attribute.String("health.status", resp.Status))
	pkg.WriteJSON(w, resp, http.StatusOK)
}

func (handler *Handler) runCheck(ctx context.Context, name string, check func(ctx context.Context) error) string {
	if check == nil {
		return StatusOK
	}

	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	if err := check(ctx); err != nil {
		log.Warnf("health check [%s]: %s", name, err)
		return "error: " + err.Error()
	}
	return StatusOK
}

func (handler *Handler) handleGetMyIp(w http.ResponseWriter, r *http.Request) {
	ip, err := pkg.ReadUserIP(r)
	if err != nil {
		log.Errorf("get my ip: %s", err)
		pkg.WriteJSONError(w, "cannot determine ip", http.StatusInternalServerError)
		return
	}
	pkg.WriteTextResponseOK(w, ip)
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}
