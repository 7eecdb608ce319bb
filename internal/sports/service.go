package sports

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/2beens/sportlog/internal/events"
	"github.com/2beens/sportlog/internal/telemetry/metrics"
	"github.com/2beens/sportlog/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=sports_test

type sportsStore interface {
	Ping(ctx context.Context) error
	GetUser(ctx context.Context, id string) (*User, error)
	AddUser(ctx context.Context, newUser NewUser) (*User, error)
	UpdateWeeklyMessage(ctx context.Context, userID, message string) error
	ListSports(ctx context.Context, userID string) ([]Sport, error)
	AddSport(ctx context.Context, newSport NewSport) (*Sport, error)
	ListRecordsByUser(ctx context.Context, userID string) ([]Record, error)
	ListRecordsBySport(ctx context.Context, sportID string) ([]Record, error)
	AddRecord(ctx context.Context, rec NewRecord) (*AddRecordResult, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

const publishTimeout = 3 * time.Second

type ServiceParams struct {
	Store          sportsStore
	Publisher      eventPublisher
	MetricsManager *metrics.Manager
	StoreTimeout   time.Duration
	// Location is used to render the default display date of records.
	Location *time.Location
	Now      func() time.Time
}

type Service struct {
	store          sportsStore
	publisher      eventPublisher
	metricsManager *metrics.Manager
	storeTimeout   time.Duration
	location       *time.Location
	now            func() time.Time
}

func NewService(params ServiceParams) *Service {
	s := &Service{
		store:          params.Store,
		publisher:      params.Publisher,
		metricsManager: params.MetricsManager,
		storeTimeout:   params.StoreTimeout,
		location:       params.Location,
		now:            params.Now,
	}
	if s.publisher == nil {
		s.publisher = events.NopPublisher{}
	}
	if s.storeTimeout <= 0 {
		s.storeTimeout = 5 * time.Second
	}
	if s.location == nil {
		s.location = time.Local
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *Service) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.storeTimeout)
}

// Profile assembles the dashboard profile of a user. Nothing partial is returned on failure.
func (s *Service) Profile(ctx context.Context, userID string) (_ *UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sports.profile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	if !validID(userID) {
		return nil, ErrUserNotFound
	}

	ctx, cancel := s.storeCtx(ctx)
	defer cancel()

	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, storeErr("get user", err)
	}

	userSports, err := s.store.ListSports(ctx, userID)
	if err != nil {
		return nil, storeErr("list sports", err)
	}

	records, err := s.store.ListRecordsByUser(ctx, userID)
	if err != nil {
		return nil, storeErr("list records", err)
	}

	span.SetAttributes(
		attribute.Int("sports.count", len(userSports)),
		attribute.Int("records.count", len(records)),
	)
	return BuildProfile(*user, userSports, records), nil
}

func (s *Service) GetUser(ctx context.Context, userID string) (*User, error) {
	if !validID(userID) {
		return nil, ErrUserNotFound
	}

	ctx, cancel := s.storeCtx(ctx)
	defer cancel()

	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, storeErr("get user", err)
	}
	return user, nil
}

func (s *Service) AddUser(ctx context.Context, newUser NewUser) (*User, error) {
	newUser.Name = strings.TrimSpace(newUser.Name)
	if newUser.Name == "" {
		return nil, invalidInput("name is required")
	}

	ctx, cancel := s.storeCtx(ctx)
	defer cancel()

	user, err := s.store.AddUser(ctx, newUser)
	if err != nil {
		return nil, storeErr("add user", err)
	}
	return user, nil
}

// SetWeeklyMessage stores the latest weekly encouragement of the user.
func (s *Service) SetWeeklyMessage(ctx context.Context, userID, message string) error {
	if !validID(userID) {
		return ErrUserNotFound
	}

	ctx, cancel := s.storeCtx(ctx)
	defer cancel()

	return storeErr("update weekly message", s.store.UpdateWeeklyMessage(ctx, userID, message))
}

func (s *Service) ListSports(ctx context.Context, userID string) ([]Sport, error) {
	if !validID(userID) {
		return nil, invalidInput("malformed user id")
	}

	ctx, cancel := s.storeCtx(ctx)
	defer cancel()

	userSports, err := s.store.ListSports(ctx, userID)
	if err != nil {
		return nil, storeErr("list sports", err)
	}
	return userSports, nil
}

func (s *Service) AddSport(ctx context.Context, newSport NewSport) (_ *Sport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sports.addsport")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	newSport.Name = strings.TrimSpace(newSport.Name)
	if newSport.Name == "" {
		return nil, invalidInput("name is required")
	}
	if !validID(newSport.UserID) {
		return nil, invalidInput("malformed user id")
	}

	storeCtx, cancel := s.storeCtx(ctx)
	defer cancel()

	sport, err := s.store.AddSport(storeCtx, newSport)
	if err != nil {
		return nil, storeErr("add sport", err)
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterSportsCreated.WithLabelValues("explicit").Inc()
	}
	s.publish(ctx, events.TypeSportCreated, sport.UserID, sport)

	return sport, nil
}

func (s *Service) ListRecords(ctx context.Context, sportID string) ([]Record, error) {
	if !validID(sportID) {
		return nil, invalidInput("malformed sport id")
	}

	ctx, cancel := s.storeCtx(ctx)
	defer cancel()

	records, err := s.store.ListRecordsBySport(ctx, sportID)
	if err != nil {
		return nil, storeErr("list records", err)
	}
	return records, nil
}

// AddRecord validates and stores a new record. When only a sport name is given, the
// sport is resolved by (user, name) and created if missing, atomically with the record.
func (s *Service) AddRecord(ctx context.Context, rec NewRecord) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sports.addrecord")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.prepareRecord(&rec); err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.String("user.id", rec.UserID),
		attribute.String("sport.id", rec.SportID),
		attribute.String("sport.name", rec.SportName),
	)

	storeCtx, cancel := s.storeCtx(ctx)
	defer cancel()

	result, err := s.store.AddRecord(storeCtx, rec)
	if err != nil {
		return nil, storeErr("add record", err)
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterRecordsAdded.Inc()
		if result.SportCreated {
			s.metricsManager.CounterSportsCreated.WithLabelValues("ingestion").Inc()
		}
	}

	if result.SportCreated {
		log.Debugf("sport [%s] created for user [%s] on record ingestion", result.Sport.Name, rec.UserID)
		s.publish(ctx, events.TypeSportCreated, rec.UserID, result.Sport)
	}
	s.publish(ctx, events.TypeRecordCreated, rec.UserID, RecordCreatedPayload{
		Record:       result.Record,
		SportName:    result.Sport.Name,
		SportCreated: result.SportCreated,
	})

	return &result.Record, nil
}

// RecordCreatedPayload is the payload of the record.created event.
type RecordCreatedPayload struct {
	Record       Record `json:"record"`
	SportName    string `json:"sportName"`
	SportCreated bool   `json:"sportCreated"`
}

func (s *Service) prepareRecord(rec *NewRecord) error {
	rec.SportID = strings.TrimSpace(rec.SportID)
	rec.SportName = strings.TrimSpace(rec.SportName)
	rec.Unit = strings.TrimSpace(rec.Unit)

	switch {
	case !validID(rec.UserID):
		return invalidInput("userId is required")
	case rec.SportID == "" && rec.SportName == "":
		return invalidInput("sportId or sportName is required")
	case rec.SportID != "" && !validID(rec.SportID):
		return invalidInput("malformed sportId")
	case rec.Value == nil:
		return invalidInput("value is required")
	case rec.Unit == "":
		return invalidInput("unit is required")
	}

	now := s.now()
	if rec.Date == "" {
		rec.Date = now.In(s.location).Format(DisplayDateLayout)
	}
	if rec.Timestamp == 0 {
		rec.Timestamp = now.UnixMilli()
	}
	rec.Tags = nonNil(rec.Tags)
	rec.Images = nonNil(rec.Images)

	return nil
}

// publish emits an event after a committed write. Failures are logged and never
// surface to the caller.
func (s *Service) publish(ctx context.Context, eventType, key string, payload any) {
	event, err := events.New(eventType, key, payload, s.now())
	if err != nil {
		log.Errorf("build event [%s]: %s", eventType, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	result := "ok"
	if err := s.publisher.Publish(ctx, event); err != nil {
		result = "error"
		log.Errorf("publish event [%s] [%s]: %s", eventType, event.ID, err)
	}
	if s.metricsManager != nil {
		s.metricsManager.CounterEventsPublished.WithLabelValues(eventType, result).Inc()
	}
}

// Health reports whether the store is reachable.
func (s *Service) Health(ctx context.Context) error {
	ctx, cancel := s.storeCtx(ctx)
	defer cancel()

	if err := s.store.Ping(ctx); err != nil {
		return storeErr("ping", err)
	}
	return nil
}

// validID accepts only the canonical 36 char uuid form, the one postgres understands.
func validID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// IsStoreError reports whether err is (or wraps) a StoreError.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
