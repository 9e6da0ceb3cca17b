package models

import (
	"fmt"
	"time"
)

// DailyCount is one day bucket as returned by the activity source.
type DailyCount struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Count int       `json:"count"`
}

// ActivitySample is one response of the activity source for the lookback window.
// TotalCount is the upstream's own total and is never re-derived from Counts.
type ActivitySample struct {
	Counts     []DailyCount `json:"counts"`
	TotalCount int          `json:"total_count"`
}

type ActivityPeriod struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type RecentActivityReport struct {
	Periods           []ActivityPeriod `json:"periods"`
	TotalCount        int              `json:"total_count"`
	NumberOfDays      int              `json:"number_of_days"`
	DaysWithoutTweets int              `json:"days_without_tweets"`
	GeneratedAt       time.Time        `json:"generated_at"`
}

func (r *RecentActivityReport) AveragePerDay() float64 {
	if r.NumberOfDays <= 0 {
		return 0
	}
	return float64(r.TotalCount) / float64(r.NumberOfDays)
}

// FormattedAverage renders the daily average with one decimal place.
func (r *RecentActivityReport) FormattedAverage() string {
	return fmt.Sprintf("%.1f", r.AveragePerDay())
}

func (r *RecentActivityReport) Counts() []int {
	counts := make([]int, len(r.Periods))
	for i, p := range r.Periods {
		counts[i] = p.Count
	}
	return counts
}

func (r *RecentActivityReport) Labels() []string {
	labels := make([]string, len(r.Periods))
	for i, p := range r.Periods {
		labels[i] = p.Label
	}
	return labels
}
