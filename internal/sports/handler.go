package sports

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/2beens/sportlog/internal/telemetry/tracing"
	"github.com/2beens/sportlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=sports_test

type sportsService interface {
	Profile(ctx context.Context, userID string) (*UserProfile, error)
	GetUser(ctx context.Context, userID string) (*User, error)
	AddUser(ctx context.Context, newUser NewUser) (*User, error)
	ListSports(ctx context.Context, userID string) ([]Sport, error)
	AddSport(ctx context.Context, newSport NewSport) (*Sport, error)
	ListRecords(ctx context.Context, sportID string) ([]Record, error)
	AddRecord(ctx context.Context, rec NewRecord) (*Record, error)
}

type AddRecordRequest struct {
	SportID    string   `json:"sportId"`
	SportName  string   `json:"sportName"`
	SportImage string   `json:"sportImage"`
	UserID     string   `json:"userId"`
	Value      *Value   `json:"value"`
	Unit       string   `json:"unit"`
	Date       string   `json:"date"`
	Timestamp  int64    `json:"timestamp"`
	Tags       []string `json:"tags"`
	Images     []string `json:"images"`
}

type AddSportRequest struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

type AddUserRequest struct {
	Name          string `json:"name"`
	Avatar        string `json:"avatar"`
	WeeklyMessage string `json:"weeklyMessage"`
}

type Handler struct {
	service sportsService
}

func NewHandler(service sportsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/users", handler.HandleAddUser).Methods("POST", "OPTIONS").Name("add-user")
	r.HandleFunc("/users/{id}", handler.HandleGetUser).Methods("GET", "OPTIONS").Name("get-user")
	r.HandleFunc("/users/{id}/profile", handler.HandleProfile).Methods("GET", "OPTIONS").Name("get-profile")
	r.HandleFunc("/users/{id}/sports", handler.HandleListSports).Methods("GET", "OPTIONS").Name("list-sports")
	r.HandleFunc("/users/{id}/sports", handler.HandleAddSport).Methods("POST", "OPTIONS").Name("add-sport")
	r.HandleFunc("/sports/{id}/records", handler.HandleListRecords).Methods("GET", "OPTIONS").Name("list-records")
	r.HandleFunc("/records", handler.HandleAddRecord).Methods("POST", "OPTIONS").Name("add-record")
}

func (handler *Handler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sports.profile")
	defer span.End()

	profile, err := handler.service.Profile(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "get profile", err)
		return
	}

	pkg.WriteJSON(w, profile, http.StatusOK)
}

func (handler *Handler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sports.getuser")
	defer span.End()

	user, err := handler.service.GetUser(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "get user", err)
		return
	}

	pkg.WriteJSON(w, user, http.StatusOK)
}

func (handler *Handler) HandleAddUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sports.adduser")
	defer span.End()

	var req AddUserRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	user, err := handler.service.AddUser(ctx, NewUser{
		Name:          req.Name,
		Avatar:        req.Avatar,
		WeeklyMessage: req.WeeklyMessage,
	})
	if err != nil {
		writeError(w, "add user", err)
		return
	}

	log.Debugf("new user added: %s", user.ID)
	pkg.WriteJSON(w, user, http.StatusCreated)
}

func (handler *Handler) HandleListSports(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sports.listsports")
	defer span.End()

	userSports, err := handler.service.ListSports(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "list sports", err)
		return
	}

	pkg.WriteJSON(w, userSports, http.StatusOK)
}

func (handler *Handler) HandleAddSport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sports.addsport")
	defer span.End()

	var req AddSportRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	sport, err := handler.service.AddSport(ctx, NewSport{
		UserID: mux.Vars(r)["id"],
		Name:   req.Name,
		Image:  req.Image,
	})
	if err != nil {
		writeError(w, "add sport", err)
		return
	}

	pkg.WriteJSON(w, sport, http.StatusCreated)
}

func (handler *Handler) HandleListRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sports.listrecords")
	defer span.End()

	records, err := handler.service.ListRecords(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "list records", err)
		return
	}

	pkg.WriteJSON(w, records, http.StatusOK)
}

func (handler *Handler) HandleAddRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sports.addrecord")
	defer span.End()

	var req AddRecordRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	if req.Value == nil {
		pkg.WriteJSONError(w, "value is required", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.Unit) == "" {
		pkg.WriteJSONError(w, "userId and unit are required", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.SportID) == "" && strings.TrimSpace(req.SportName) == "" {
		pkg.WriteJSONError(w, "sportId or sportName is required", http.StatusBadRequest)
		return
	}

	value := float64(*req.Value)
	record, err := handler.service.AddRecord(ctx, NewRecord{
		UserID:     req.UserID,
		SportID:    req.SportID,
		SportName:  req.SportName,
		SportImage: req.SportImage,
		Value:      &value,
		Unit:       req.Unit,
		Date:       req.Date,
		Timestamp:  req.Timestamp,
		Tags:       req.Tags,
		Images:     req.Images,
	})
	if err != nil {
		writeError(w, "add record", err)
		return
	}

	log.Debugf("new record added: %s [%s]", record.ID, record.SportID)
	pkg.WriteJSON(w, record, http.StatusCreated)
}

func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, pkg.ContentType.JSON) {
		pkg.WriteJSONError(w, "invalid content type", http.StatusBadRequest)
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Tracef("unmarshal json body: %s", err)
		pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// writeError maps domain errors to status codes. Store failures are passed on with their message.
func writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrUserNotFound):
		pkg.WriteJSONError(w, "user not found", http.StatusNotFound)
	case errors.Is(err, ErrSportNotFound):
		pkg.WriteJSONError(w, "sport not found", http.StatusNotFound)
	case errors.Is(err, ErrNotFound):
		pkg.WriteJSONError(w, "not found", http.StatusNotFound)
	case errors.Is(err, ErrSportExists):
		pkg.WriteJSONError(w, "sport already exists", http.StatusConflict)
	case IsStoreError(err):
		log.Errorf("%s: %s", op, err)
		pkg.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
	default:
		log.Errorf("%s: %s", op, err)
		pkg.WriteJSONError(w, "internal error", http.StatusInternalServerError)
	}
}
