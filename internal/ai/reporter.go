package ai

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/sportlog/internal/telemetry/metrics"
	"github.com/2beens/sportlog/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	defaultUserName = "Alex"
	// generic text used when the provider fails
	FailureWeeklyMessage = "嘿，你这周的表现太棒了！继续加油哦！"
	EmptyWeeklyMessage   = "继续加油！"

	reportCacheSize       = 4 * 1024 * 1024 // bytes
	reportCacheTTLSeconds = 60 * 60
)

func PlaceholderWeeklyMessage(userName string) string {
	return fmt.Sprintf("嘿 %s，你这周的表现太棒了！继续加油哦！", nameOrDefault(userName))
}

type ReporterParams struct {
	Generator      generator
	MetricsManager *metrics.Manager
	Timeout        time.Duration
}

// Reporter writes the short weekly encouragement shown on the dashboard.
type Reporter struct {
	generator      generator
	cache          *freecache.Cache
	metricsManager *metrics.Manager
	timeout        time.Duration
}

func NewReporter(params ReporterParams) *Reporter {
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Reporter{
		generator:      params.Generator,
		cache:          freecache.NewCache(reportCacheSize),
		metricsManager: params.MetricsManager,
		timeout:        timeout,
	}
}

// WeeklyReport never fails; see PlaceholderWeeklyMessage, FailureWeeklyMessage and EmptyWeeklyMessage.
func (r *Reporter) WeeklyReport(ctx context.Context, userName string, stats json.RawMessage) string {
	ctx, span := tracing.GlobalTracer.Start(ctx, "ai.reporter.weeklyreport")
	defer span.End()

	if r.generator == nil || !r.generator.Configured() {
		r.countFallback("not_configured")
		return PlaceholderWeeklyMessage(userName)
	}

	statsJSON := compactJSON(stats)
	cacheKey := reportCacheKey(userName, statsJSON)
	if cached, err := r.cache.Get(cacheKey); err == nil {
		log.Tracef("weekly report cache hit for [%s]", userName)
		return string(cached)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	began := time.Now()
	text, err := r.generator.GenerateText(ctx, weeklyReportPrompt(userName, statsJSON))
	if r.metricsManager != nil {
		r.metricsManager.HistogramAIDuration.WithLabelValues("weekly_report").Observe(time.Since(began).Seconds())
	}
	if err != nil {
		log.Errorf("%s", &ServiceError{Op: "weekly report", Err: err})
		r.countFallback("provider_error")
		return FailureWeeklyMessage
	}

	text = strings.TrimSpace(text)
	if text == "" {
		r.countFallback("empty")
		return EmptyWeeklyMessage
	}

	if err := r.cache.Set(cacheKey, []byte(text), reportCacheTTLSeconds); err != nil {
		log.Warnf("cache weekly report: %s", err)
	}
	return text
}

func weeklyReportPrompt(userName, statsJSON string) string {
	return fmt.Sprintf(
		"Generate a short, encouraging one-sentence weekly report for an athlete named %s based on these stats: %s. Language: Chinese.",
		nameOrDefault(userName), statsJSON,
	)
}

func reportCacheKey(userName, statsJSON string) []byte {
	sum := sha256.Sum256([]byte(userName + "\x00" + statsJSON))
	return sum[:]
}

func compactJSON(raw json.RawMessage) string {
	if len(bytes.TrimSpace(raw)) == 0 {
		return "null"
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

func nameOrDefault(userName string) string {
	if strings.TrimSpace(userName) == "" {
		return defaultUserName
	}
	return userName
}

func (r *Reporter) countFallback(reason string) {
	if r.metricsManager != nil {
		r.metricsManager.CounterAIFallbacks.WithLabelValues("weekly_report", reason).Inc()
	}
}
