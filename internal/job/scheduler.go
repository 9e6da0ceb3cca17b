package job

import (
	"context"
	"sync"

	"github.com/roylee0704/gron"
	"github.com/roylee0704/gron/xtime"

	"ard/internal/job/interfaces"
	"ard/internal/providers"
	"ard/internal/structures"
)

type Scheduler struct {
	config *structures.Config
	logger providers.Logger
	job    interfaces.JobInterface
	cron   *gron.Cron

	opsMu   sync.Mutex
	stopped bool
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewScheduler(config *structures.Config, logger providers.Logger, job interfaces.JobInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config: config,
		logger: logger,
		job:    job,
	}
}

// schedule fires every interval, or at a fixed time of day when the interval
// spans whole days and schedule.at is set.
func (s *Scheduler) schedule() gron.Schedule {
	every := gron.Every(s.config.Schedule.Interval)
	if s.config.Schedule.At != "" && s.config.Schedule.Interval >= xtime.Day {
		return every.At(s.config.Schedule.At)
	}
	return every
}

func (s *Scheduler) Init() {
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.cron = gron.New()
	s.cron.AddFunc(s.schedule(), s.tick)
	s.cron.Start()

	if s.config.Schedule.At != "" {
		s.logger.Infof(providers.TypeApp, "Report scheduled every %s at %s", s.config.Schedule.Interval, s.config.Schedule.At)
	} else {
		s.logger.Infof(providers.TypeApp, "Report scheduled every %s", s.config.Schedule.Interval)
	}

	if s.config.Schedule.RunOnStart {
		go s.tick()
	}
}

func (s *Scheduler) tick() {
	s.opsMu.Lock()
	if s.stopped {
		s.opsMu.Unlock()
		return
	}
	s.wg.Add(1)
	s.opsMu.Unlock()
	defer s.wg.Done()

	ctx, cancel := context.WithTimeout(s.ctx, s.config.Schedule.Timeout)
	defer cancel()

	s.logger.Infof(providers.TypeJob, "Scheduled run started")
	result, err := s.job.Run(ctx)
	if err != nil {
		s.logger.Errorf(providers.TypeJob, "Scheduled run failed: %s", err)
		return
	}
	s.logger.Infof(providers.TypeJob, "Scheduled run finished in %s, page %s", result.Duration(), result.PageID)
}

// Stop halts the trigger, cancels an in-flight run and waits for it to return.
// A run started through the API is cancelled too, so shutdown never waits
// for a full schedule.timeout.
func (s *Scheduler) Stop() {
	if s.cron == nil {
		return
	}

	s.opsMu.Lock()
	if s.stopped {
		s.opsMu.Unlock()
		return
	}
	s.stopped = true
	s.opsMu.Unlock()

	s.cron.Stop()
	s.cancel()
	s.job.Cancel()
	s.wg.Wait()
}
