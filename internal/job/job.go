package job

import (
	"context"
	"fmt"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/atomic"
	"golang.org/x/sync/singleflight"

	"ard/internal/job/interfaces"
	"ard/internal/models"
	"ard/internal/providers"
	"ard/internal/services"
)

// LastResultKey is the cache key of the latest successful RunResult.
const LastResultKey = "report:last"

const (
	StepPrepare   = "prepare"
	StepFetch     = "fetch"
	StepAggregate = "aggregate"
	StepRender    = "render"
	StepStore     = "store"
	StepPopulate  = "populate"
)

type Job struct {
	source    services.ActivitySource
	reports   services.ReportServiceInterface
	charts    services.ChartServiceInterface
	images    services.ImageStoreInterface
	publisher services.PagePublisherInterface
	cache     providers.CacheProviderInterface
	metrics   providers.MetricsProviderInterface
	logger    providers.Logger

	group       singleflight.Group
	cancelMu    sync.Mutex
	cancelRun   context.CancelFunc
	running     atomic.Bool
	runs        atomic.Int64
	lastSuccess atomic.Time
	lastError   atomic.String
	lastErrorAt atomic.Time
	now         func() time.Time
}

func NewJob(
	source services.ActivitySource,
	reports services.ReportServiceInterface,
	charts services.ChartServiceInterface,
	images services.ImageStoreInterface,
	publisher services.PagePublisherInterface,
	cache providers.CacheProviderInterface,
	metrics providers.MetricsProviderInterface,
	logger providers.Logger,
) interfaces.JobInterface {
	return &Job{
		source:    source,
		reports:   reports,
		charts:    charts,
		images:    images,
		publisher: publisher,
		cache:     cache,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

// Run executes one report run. Callers arriving while a run is in flight
// wait for it and receive its outcome instead of starting another one.
// The shared run is bound to the first caller's context and to Cancel.
func (j *Job) Run(ctx context.Context) (*models.RunResult, error) {
	v, err, shared := j.group.Do("run", func() (any, error) {
		return j.run(ctx)
	})
	if shared {
		j.logger.Debugf(providers.TypeJob, "Joined an in-flight run")
	}
	if err != nil {
		return nil, err
	}
	return v.(*models.RunResult), nil
}

func (j *Job) Cancel() {
	j.cancelMu.Lock()
	defer j.cancelMu.Unlock()
	if j.cancelRun != nil {
		j.cancelRun()
	}
}

func (j *Job) Status() models.JobStatus {
	return models.JobStatus{
		Running:     j.running.Load(),
		Runs:        j.runs.Load(),
		LastSuccess: j.lastSuccess.Load(),
		LastError:   j.lastError.Load(),
		LastErrorAt: j.lastErrorAt.Load(),
	}
}

func (j *Job) run(ctx context.Context) (*models.RunResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	j.cancelMu.Lock()
	j.cancelRun = cancel
	j.cancelMu.Unlock()
	defer func() {
		j.cancelMu.Lock()
		j.cancelRun = nil
		j.cancelMu.Unlock()
		cancel()
	}()

	j.running.Store(true)
	defer j.running.Store(false)
	j.runs.Inc()

	started := j.now()
	result, err := j.execute(ctx)
	finished := j.now()
	j.metrics.ObserveRunDuration(finished.Sub(started))

	if err != nil {
		j.metrics.IncRunsTotal(providers.RunResultFailure)
		j.lastError.Store(err.Error())
		j.lastErrorAt.Store(finished)
		j.logger.Errorf(providers.TypeJob, "Run failed after %s: %s", finished.Sub(started), err)
		return nil, err
	}

	result.StartedAt = started
	result.FinishedAt = finished

	j.metrics.IncRunsTotal(providers.RunResultSuccess)
	j.metrics.SetLastSuccess(finished)
	j.metrics.SetReportTotals(result.Report.TotalCount, result.Report.NumberOfDays, result.Report.DaysWithoutTweets)
	j.lastSuccess.Store(finished)
	j.remember(result)

	j.logger.Infof(providers.TypeJob, "Done")
	return result, nil
}

// execute runs the pipeline in order and stops at the first failing step.
// Nothing is rolled back: a page cleared by prepare stays empty on failure.
func (j *Job) execute(ctx context.Context) (*models.RunResult, error) {
	var (
		pageID   string
		sample   *models.ActivitySample
		report   *models.RecentActivityReport
		artifact *models.ChartArtifact
		imageURL string
	)

	err := j.step(StepPrepare, func() (err error) {
		pageID, err = j.publisher.Prepare(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	err = j.step(StepFetch, func() (err error) {
		sample, err = j.source.RecentCounts(ctx)
		if err != nil {
			return fmt.Errorf("%w: %w", models.ErrActivitySource, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = j.step(StepAggregate, func() (err error) {
		report, err = j.reports.Aggregate(sample)
		return err
	})
	if err != nil {
		return nil, err
	}
	j.logger.Infof(providers.TypeJob, "Downloaded info about %d tweets from last %d days", report.TotalCount, report.NumberOfDays)

	err = j.step(StepRender, func() (err error) {
		artifact, err = j.charts.Render(ctx, report.Periods)
		return err
	})
	if err != nil {
		return nil, err
	}

	err = j.step(StepStore, func() (err error) {
		imageURL, err = j.images.Store(ctx, artifact)
		return err
	})
	if err != nil {
		return nil, err
	}
	j.logger.Infof(providers.TypeJob, "Generated chart and uploaded it to the Blob Storage - %s", imageURL)

	err = j.step(StepPopulate, func() error {
		return j.publisher.Populate(ctx, pageID, report, imageURL)
	})
	if err != nil {
		return nil, err
	}

	return &models.RunResult{PageID: pageID, ImageURL: imageURL, Report: report}, nil
}

func (j *Job) step(name string, fn func() error) error {
	start := time.Now()
	err := fn()
	j.metrics.ObserveStepDuration(name, time.Since(start))
	if err != nil {
		j.logger.Debugf(providers.TypeJob, "Step %s failed: %s", name, err)
	}
	return err
}

func (j *Job) remember(result *models.RunResult) {
	data, err := json.Marshal(result)
	if err != nil {
		j.logger.Warnf(providers.TypeJob, "Could not cache run result: %s", err)
		return
	}
	if err := j.cache.Set(LastResultKey, data); err != nil {
		j.logger.Warnf(providers.TypeJob, "Could not cache run result (%d bytes): %s", len(data), err)
	}
}
