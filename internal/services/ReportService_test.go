package services

import (
	"errors"
	"testing"
	"time"

	"ard/internal/models"
	"ard/internal/structures"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reportNow = time.Date(2024, 3, 11, 9, 30, 0, 0, time.UTC)

func newReportService(t *testing.T, tz string) *ReportService {
	svc, err := NewReportService(&structures.Config{Report: structures.ReportConfig{TimeZone: tz}})
	require.NoError(t, err)
	rs := svc.(*ReportService)
	rs.now = func() time.Time { return reportNow }
	return rs
}

func dayStart(daysAgo int) time.Time {
	d := reportNow.AddDate(0, 0, -daysAgo)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

func sampleOf(total int, counts ...int) *models.ActivitySample {
	s := &models.ActivitySample{TotalCount: total}
	for i, c := range counts {
		start := dayStart(len(counts) - i)
		s.Counts = append(s.Counts, models.DailyCount{Start: start, End: start.Add(day), Count: c})
	}
	return s
}

func TestReportService_ScenarioA(t *testing.T) {
	rs := newReportService(t, "UTC")

	report, err := rs.Aggregate(sampleOf(8, 3, 0, 5))
	require.NoError(t, err)

	assert.Equal(t, 8, report.TotalCount)
	assert.Equal(t, 3, report.NumberOfDays)
	assert.Equal(t, 1, report.DaysWithoutTweets)
	assert.Equal(t, []int{3, 0, 5}, report.Counts())
	assert.Equal(t, []string{"8.3", "9.3", "10.3"}, report.Labels())
	assert.Equal(t, "2.7", report.FormattedAverage())
	assert.Equal(t, reportNow, report.GeneratedAt)
}

func TestReportService_EmptyDataset(t *testing.T) {
	rs := newReportService(t, "UTC")

	_, err := rs.Aggregate(&models.ActivitySample{TotalCount: 4})
	assert.True(t, errors.Is(err, models.ErrEmptyDataset))

	_, err = rs.Aggregate(nil)
	assert.True(t, errors.Is(err, models.ErrEmptyDataset))
}

func TestReportService_SortsChronologically(t *testing.T) {
	rs := newReportService(t, "UTC")
	sample := sampleOf(6, 1, 2, 3)
	sample.Counts[0], sample.Counts[2] = sample.Counts[2], sample.Counts[0]

	report, err := rs.Aggregate(sample)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, report.Counts())
	assert.Equal(t, 3, sample.Counts[0].Count, "input must not be reordered")
}

func TestReportService_ZeroDaysMatchesZeroPeriods(t *testing.T) {
	rs := newReportService(t, "UTC")
	inputs := [][]int{
		{0},
		{1},
		{0, 0, 0, 0, 0, 0, 0},
		{4, 0, 2, 0, 0, 9, 1},
		{1, 2, 3, 4, 5, 6, 7},
	}

	for _, counts := range inputs {
		report, err := rs.Aggregate(sampleOf(0, counts...))
		require.NoError(t, err)

		zero := 0
		for _, p := range report.Periods {
			if p.Count == 0 {
				zero++
			}
		}
		assert.Equal(t, zero, report.DaysWithoutTweets, "%v", counts)
		assert.LessOrEqual(t, report.DaysWithoutTweets, len(report.Periods))
	}
}

func TestReportService_TotalIsUpstreamFigure(t *testing.T) {
	rs := newReportService(t, "UTC")

	report, err := rs.Aggregate(sampleOf(42, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, 42, report.TotalCount)
}

func TestReportService_NumberOfDaysFromWallClock(t *testing.T) {
	rs := newReportService(t, "UTC")
	// Upstream omitted the empty days between the two buckets.
	sample := &models.ActivitySample{
		TotalCount: 3,
		Counts: []models.DailyCount{
			{Start: dayStart(7), Count: 1},
			{Start: dayStart(1), Count: 2},
		},
	}

	report, err := rs.Aggregate(sample)
	require.NoError(t, err)
	assert.Equal(t, 7, report.NumberOfDays)
	assert.Len(t, report.Periods, 2)
}

func TestReportService_NumberOfDaysAtLeastOne(t *testing.T) {
	rs := newReportService(t, "UTC")
	sample := &models.ActivitySample{
		TotalCount: 1,
		Counts:     []models.DailyCount{{Start: reportNow.Add(-time.Hour), Count: 1}},
	}

	report, err := rs.Aggregate(sample)
	require.NoError(t, err)
	assert.Equal(t, 1, report.NumberOfDays)
}

func TestReportService_NegativeCountsClamped(t *testing.T) {
	rs := newReportService(t, "UTC")

	report, err := rs.Aggregate(sampleOf(-1, -3, 2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, report.Counts())
	assert.Equal(t, 0, report.TotalCount)
	assert.Equal(t, 1, report.DaysWithoutTweets)
}

func TestReportService_LabelsUseReportTimeZone(t *testing.T) {
	rs := newReportService(t, "America/New_York")
	sample := &models.ActivitySample{
		Counts: []models.DailyCount{{Start: time.Date(2024, 3, 1, 2, 0, 0, 0, time.UTC), Count: 1}},
	}

	report, err := rs.Aggregate(sample)
	require.NoError(t, err)
	assert.Equal(t, "29.2", report.Periods[0].Label)
}

func TestNewReportService_UnknownZone(t *testing.T) {
	_, err := NewReportService(&structures.Config{Report: structures.ReportConfig{TimeZone: "Nowhere/Land"}})
	assert.Error(t, err)
}
