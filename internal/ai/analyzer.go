package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/sportlog/internal/telemetry/metrics"
	"github.com/2beens/sportlog/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=ai_test

const (
	placeholderSportName = "颠球"
	unknownSportName     = "未知运动"
)

type generator interface {
	Configured() bool
	GenerateJSON(ctx context.Context, prompt string, schema Schema) (string, error)
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type analysisCache interface {
	Get(ctx context.Context, text string, existingSports []string) (*Extraction, bool)
	Set(ctx context.Context, text string, existingSports []string, extraction Extraction)
}

// Analysis is the structured guess for a spoken activity description.
type Analysis struct {
	SportName  string  `json:"sportName"`
	Value      float64 `json:"value"`
	Unit       string  `json:"unit"`
	IsNewSport bool    `json:"isNewSport"`
	Confidence float64 `json:"confidence"`
}

// Extraction is the provider's answer before reconciliation with the user's sports.
type Extraction struct {
	SportName  string  `json:"sportName"`
	Value      float64 `json:"value"`
	Unit       string  `json:"unit"`
	Confidence float64 `json:"confidence"`
}

// ServiceError is a failed or unusable provider call. It is logged, never returned to clients.
type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("ai %s: %s", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

var analysisSchema = Schema{
	Type: "OBJECT",
	Properties: map[string]Schema{
		"sportName":  {Type: "STRING"},
		"value":      {Type: "NUMBER"},
		"unit":       {Type: "STRING"},
		"isNewSport": {Type: "BOOLEAN"},
		"confidence": {Type: "NUMBER"},
	},
	Required: []string{"sportName", "value", "unit", "isNewSport"},
}

type AnalyzerParams struct {
	Generator      generator
	Cache          analysisCache
	MetricsManager *metrics.Manager
	Timeout        time.Duration
}

type Analyzer struct {
	generator      generator
	cache          analysisCache
	metricsManager *metrics.Manager
	timeout        time.Duration
}

func NewAnalyzer(params AnalyzerParams) *Analyzer {
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Analyzer{
		generator:      params.Generator,
		cache:          params.Cache,
		metricsManager: params.MetricsManager,
		timeout:        timeout,
	}
}

// PlaceholderAnalysis is returned while no provider is configured.
func PlaceholderAnalysis(existingSports []string) Analysis {
	return Analysis{
		SportName:  placeholderSportName,
		Value:      50,
		Unit:       "个",
		IsNewSport: !slices.Contains(existingSports, placeholderSportName),
		Confidence: 0.95,
	}
}

// FailureAnalysis is returned when the provider fails or answers garbage.
func FailureAnalysis() Analysis {
	return Analysis{
		SportName:  unknownSportName,
		Value:      0,
		Unit:       "",
		IsNewSport: false,
		Confidence: 0,
	}
}

// Analyze turns free text into a structured guess. It never fails: a missing provider
// yields the placeholder guess, a failing one the unknown-sport guess.
func (a *Analyzer) Analyze(ctx context.Context, text string, existingSports []string) Analysis {
	ctx, span := tracing.GlobalTracer.Start(ctx, "ai.analyzer.analyze")
	defer span.End()

	text = strings.TrimSpace(text)
	span.SetAttributes(attribute.Int("existing_sports.count", len(existingSports)))

	if a.generator == nil || !a.generator.Configured() {
		a.countFallback("not_configured")
		return PlaceholderAnalysis(existingSports)
	}

	if a.cache != nil {
		if cached, ok := a.cache.Get(ctx, text, existingSports); ok {
			span.SetAttributes(attribute.Bool("ai.from-cache", true))
			return Reconcile(*cached, existingSports)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	began := time.Now()
	raw, err := a.generator.GenerateJSON(ctx, analysisPrompt(text, existingSports), analysisSchema)
	a.observeDuration("analyze", began)
	if err != nil {
		log.Errorf("%s", &ServiceError{Op: "analyze", Err: err})
		a.countFallback("provider_error")
		return FailureAnalysis()
	}

	extraction, err := ParseExtraction(raw)
	if err != nil {
		log.Errorf("%s", &ServiceError{Op: "analyze parse", Err: err})
		a.countFallback("unparsable")
		return FailureAnalysis()
	}

	if a.cache != nil {
		a.cache.Set(ctx, text, existingSports, extraction)
	}

	return Reconcile(extraction, existingSports)
}

// Reconcile normalizes a provider extraction against the user's current sports.
// The provider's own isNewSport flag is not trusted; it is recomputed by exact name match.
func Reconcile(extraction Extraction, existingSports []string) Analysis {
	name := strings.TrimSpace(extraction.SportName)
	if name == "" {
		return FailureAnalysis()
	}

	return Analysis{
		SportName:  name,
		Value:      finiteOrZero(extraction.Value),
		Unit:       strings.TrimSpace(extraction.Unit),
		IsNewSport: !slices.Contains(existingSports, name),
		Confidence: clamp01(extraction.Confidence),
	}
}

// ParseExtraction reads the provider JSON. Numbers may come as JSON numbers or numeric strings.
func ParseExtraction(raw string) (Extraction, error) {
	var parsed struct {
		SportName  string      `json:"sportName"`
		Value      json.Number `json:"value"`
		Unit       string      `json:"unit"`
		Confidence json.Number `json:"confidence"`
	}

	dec := json.NewDecoder(strings.NewReader(strings.TrimSpace(raw)))
	dec.UseNumber()
	if err := dec.Decode(&parsed); err != nil {
		return Extraction{}, fmt.Errorf("decode extraction: %w", err)
	}

	return Extraction{
		SportName:  parsed.SportName,
		Value:      parseNumber(parsed.Value),
		Unit:       parsed.Unit,
		Confidence: parseNumber(parsed.Confidence),
	}, nil
}

func parseNumber(n json.Number) float64 {
	if n == "" {
		return 0
	}
	// out of range values parse to ±Inf and are zeroed by the caller
	f, _ := strconv.ParseFloat(string(n), 64)
	return f
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func clamp01(f float64) float64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}

func analysisPrompt(text string, existingSports []string) string {
	if existingSports == nil {
		existingSports = []string{}
	}
	existingJSON, _ := json.Marshal(existingSports)
	return fmt.Sprintf(`Extract the sport activity, quantity, and unit from this text: %q.
Also determine if this sport is present in the existing list: %s.
If it is one of them, use exactly that name. If it is not in the list, set isNewSport to true.
Give a confidence between 0 and 1. Return JSON.`, text, existingJSON)
}

func (a *Analyzer) countFallback(reason string) {
	if a.metricsManager != nil {
		a.metricsManager.CounterAIFallbacks.WithLabelValues("analyze", reason).Inc()
	}
}

func (a *Analyzer) observeDuration(endpoint string, began time.Time) {
	if a.metricsManager != nil {
		a.metricsManager.HistogramAIDuration.WithLabelValues(endpoint).Observe(time.Since(began).Seconds())
	}
}
