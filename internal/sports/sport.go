package sports

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Tags attached to records by the client.
const (
	TagBrokenRecord = "broken_record"
	TagImproved     = "improved"
	TagStable       = "stable"
	TagKeepGoing    = "keep_going"
)

// DisplayDateLayout renders e.g. "10月12日 16:30".
const DisplayDateLayout = "1月2日 15:04"

type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Avatar        string    `json:"avatar"`
	WeeklyMessage string    `json:"weeklyMessage"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Sport struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}

type Record struct {
	ID        string    `json:"id"`
	SportID   string    `json:"sportId"`
	UserID    string    `json:"userId"`
	Value     float64   `json:"value"`
	Unit      string    `json:"unit"`
	Date      string    `json:"date"`
	Timestamp int64     `json:"timestamp"`
	Tags      []string  `json:"tags"`
	Images    []string  `json:"images"`
	CreatedAt time.Time `json:"createdAt"`
}

// RecordSummary is the best or most recent value of a sport.
type RecordSummary struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
	Date  string  `json:"date"`
}

type HistoryItem struct {
	ID        string   `json:"id"`
	SportName string   `json:"sportName"`
	Value     float64  `json:"value"`
	Unit      string   `json:"unit"`
	Date      string   `json:"date"`
	Timestamp int64    `json:"timestamp"`
	Tags      []string `json:"tags"`
	Images    []string `json:"images"`
}

type SportStats struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Image        string        `json:"image"`
	BestRecord   RecordSummary `json:"bestRecord"`
	RecentRecord RecordSummary `json:"recentRecord"`
	History      []HistoryItem `json:"history"`
}

type UserProfile struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Avatar        string       `json:"avatar"`
	WeeklyMessage string       `json:"weeklyMessage"`
	Stats         []SportStats `json:"stats"`
}

// NewRecord is the ingestion input. Either SportID or SportName must be set;
// SportID wins when both are.
type NewRecord struct {
	UserID     string
	SportID    string
	SportName  string
	SportImage string
	Value      *float64
	Unit       string
	Date       string
	Timestamp  int64
	Tags       []string
	Images     []string
}

type NewSport struct {
	UserID string
	Name   string
	Image  string
}

type NewUser struct {
	Name          string
	Avatar        string
	WeeklyMessage string
}

// Value is a finite float that can be sent either as a JSON number or a numeric string.
type Value float64

var errValueNotFinite = errors.New("value must be a finite number")

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return errors.New("value must not be null")
	}

	var parsed float64
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("value %q is not numeric", s)
		}
		parsed = f
	} else {
		if err := json.Unmarshal(data, &parsed); err != nil {
			return fmt.Errorf("value is not numeric: %w", err)
		}
	}

	if math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return errValueNotFinite
	}

	*v = Value(parsed)
	return nil
}
