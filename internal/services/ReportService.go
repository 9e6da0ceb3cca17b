package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"ard/internal/models"
	"ard/internal/structures"
)

const day = 24 * time.Hour

type ReportService struct {
	location *time.Location
	now      func() time.Time
}

func NewReportService(conf *structures.Config) (ReportServiceInterface, error) {
	loc, err := time.LoadLocation(conf.Report.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("report time zone: %w", err)
	}
	return &ReportService{location: loc, now: time.Now}, nil
}

// Aggregate turns the daily buckets into a report. The total is the
// upstream's own figure, and the day span is measured from the earliest
// bucket to now rather than from the number of buckets.
func (rs *ReportService) Aggregate(sample *models.ActivitySample) (*models.RecentActivityReport, error) {
	if sample == nil || len(sample.Counts) == 0 {
		return nil, models.ErrEmptyDataset
	}

	counts := make([]models.DailyCount, len(sample.Counts))
	copy(counts, sample.Counts)
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Start.Before(counts[j].Start)
	})

	now := rs.now()
	report := &models.RecentActivityReport{
		Periods:      make([]models.ActivityPeriod, 0, len(counts)),
		TotalCount:   max(sample.TotalCount, 0),
		NumberOfDays: max(int(math.Round(float64(now.Sub(counts[0].Start))/float64(day))), 1),
		GeneratedAt:  now,
	}

	for _, c := range counts {
		count := max(c.Count, 0)
		if count == 0 {
			report.DaysWithoutTweets++
		}
		report.Periods = append(report.Periods, models.ActivityPeriod{
			Label: rs.label(c.Start),
			Count: count,
		})
	}

	return report, nil
}

func (rs *ReportService) label(t time.Time) string {
	local := t.In(rs.location)
	return fmt.Sprintf("%d.%d", local.Day(), int(local.Month()))
}
