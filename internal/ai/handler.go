package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/2beens/sportlog/internal/telemetry/tracing"
	"github.com/2beens/sportlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=ai_test

type sportAnalyzer interface {
	Analyze(ctx context.Context, text string, existingSports []string) Analysis
}

type weeklyReporter interface {
	WeeklyReport(ctx context.Context, userName string, stats json.RawMessage) string
}

type weeklyMessageStore interface {
	SetWeeklyMessage(ctx context.Context, userID, message string) error
}

type AnalyzeRequest struct {
	Text           string   `json:"text"`
	ExistingSports []string `json:"existingSports"`
}

type WeeklyReportRequest struct {
	Stats    json.RawMessage `json:"stats"`
	UserName string          `json:"userName"`
	UserID   string          `json:"userId"`
}

type WeeklyReportResponse struct {
	Message string `json:"message"`
}

type Handler struct {
	analyzer     sportAnalyzer
	reporter     weeklyReporter
	messageStore weeklyMessageStore
}

func NewHandler(analyzer sportAnalyzer, reporter weeklyReporter, messageStore weeklyMessageStore) *Handler {
	return &Handler{
		analyzer:     analyzer,
		reporter:     reporter,
		messageStore: messageStore,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/analyze", handler.HandleAnalyze).Methods("POST", "OPTIONS").Name("ai-analyze")
	r.HandleFunc("/weekly-report", handler.HandleWeeklyReport).Methods("POST", "OPTIONS").Name("ai-weekly-report")
}

func (handler *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ai.analyze")
	defer span.End()

	if !strings.HasPrefix(r.Header.Get("Content-Type"), pkg.ContentType.JSON) {
		pkg.WriteJSONError(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("analyze, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		pkg.WriteJSONError(w, "text is required", http.StatusBadRequest)
		return
	}

	analysis := handler.analyzer.Analyze(ctx, req.Text, req.ExistingSports)
	pkg.WriteJSON(w, analysis, http.StatusOK)
}

// HandleWeeklyReport always answers 200 with a message, even for unreadable bodies.
func (handler *Handler) HandleWeeklyReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ai.weeklyreport")
	defer span.End()

	var req WeeklyReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debugf("weekly report, unmarshal json params: %s", err)
		req = WeeklyReportRequest{}
	}

	message := handler.reporter.WeeklyReport(ctx, req.UserName, req.Stats)

	if req.UserID != "" && handler.messageStore != nil {
		if err := handler.messageStore.SetWeeklyMessage(ctx, req.UserID, message); err != nil {
			log.Warnf("store weekly message for user [%s]: %s", req.UserID, err)
		}
	}

	pkg.WriteJSON(w, WeeklyReportResponse{Message: message}, http.StatusOK)
}
