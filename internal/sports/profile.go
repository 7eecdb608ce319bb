package sports

import (
	"slices"
)

// BuildProfile folds a user's sports and records into the dashboard profile.
//
// Sports keep the given order (the store returns them by creation time). Each sport's
// records are ordered newest first by timestamp; records with equal timestamps keep their
// input order. Best is the first record holding the maximum value in that order, Recent is
// the head of it. Records referring to a sport not in sports are ignored.
func BuildProfile(user User, sports []Sport, records []Record) *UserProfile {
	buckets := make(map[string][]Record, len(sports))
	for _, s := range sports {
		buckets[s.ID] = nil
	}
	for _, r := range records {
		if _, ok := buckets[r.SportID]; !ok {
			continue
		}
		buckets[r.SportID] = append(buckets[r.SportID], r)
	}

	stats := make([]SportStats, 0, len(sports))
	for _, s := range sports {
		stats = append(stats, buildSportStats(s, buckets[s.ID]))
	}

	return &UserProfile{
		ID:            user.ID,
		Name:          user.Name,
		Avatar:        user.Avatar,
		WeeklyMessage: user.WeeklyMessage,
		Stats:         stats,
	}
}

func buildSportStats(sport Sport, bucket []Record) SportStats {
	slices.SortStableFunc(bucket, func(a, b Record) int {
		switch {
		case a.Timestamp > b.Timestamp:
			return -1
		case a.Timestamp < b.Timestamp:
			return 1
		default:
			return 0
		}
	})

	stats := SportStats{
		ID:      sport.ID,
		Name:    sport.Name,
		Image:   sport.Image,
		History: make([]HistoryItem, 0, len(bucket)),
	}
	if len(bucket) == 0 {
		return stats
	}

	best := bucket[0]
	for _, r := range bucket[1:] {
		if r.Value > best.Value {
			best = r
		}
	}
	stats.BestRecord = summaryOf(best)
	stats.RecentRecord = summaryOf(bucket[0])

	for _, r := range bucket {
		stats.History = append(stats.History, HistoryItem{
			ID:        r.ID,
			SportName: sport.Name,
			Value:     r.Value,
			Unit:      r.Unit,
			Date:      r.Date,
			Timestamp: r.Timestamp,
			Tags:      nonNil(r.Tags),
			Images:    nonNil(r.Images),
		})
	}

	return stats
}

func summaryOf(r Record) RecordSummary {
	return RecordSummary{
		Value: r.Value,
		Unit:  r.Unit,
		Date:  r.Date,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
