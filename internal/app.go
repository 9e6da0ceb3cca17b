package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ard/internal/controllers"
	"ard/internal/job/interfaces"
	"ard/internal/models"
	"ard/internal/providers"
	"ard/internal/structures"
)

type App struct {
	WebServer *http.Server
	scheduler interfaces.SchedulerInterface
	conf      *structures.Config
	logger    providers.Logger
}

// NewHandler assembles the ops surface: infrastructure endpoints on the outer
// mux, API routes behind the metrics middleware, everything gzip-encoded.
func NewHandler(healthController *controllers.HealthController, conf *structures.Config, logger providers.Logger, router providers.RouterProviderInterface, metrics providers.MetricsProviderInterface) http.Handler {
	apiMux := http.NewServeMux()
	for _, route := range router.GetRoutes() {
		apiMux.Handle(route.Url, route.Handler)
	}
	instrumentedAPI := providers.MetricsMiddleware(metrics, logger, apiMux)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthController.Health)
	if conf.Metrics.Enabled {
		mux.Handle("/metrics", promhttp.Handler())
	}
	mux.Handle("/", instrumentedAPI)

	return gzhttp.GzipHandler(mux)
}

func NewApp(handler http.Handler, scheduler interfaces.SchedulerInterface, conf *structures.Config, logger providers.Logger) *App {
	return &App{
		WebServer: &http.Server{
			Addr:              conf.WebServer.Host + ":" + strconv.Itoa(conf.WebServer.Port),
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       5 * time.Second,
			WriteTimeout:      conf.Schedule.Timeout + 10*time.Second,
			IdleTimeout:       60 * time.Second,
		},
		scheduler: scheduler,
		conf:      conf,
		logger:    logger,
	}
}

// Run starts the scheduler and, when enabled, the HTTP server, then blocks
// until SIGINT/SIGTERM or a server failure.
func (a *App) Run() error {
	a.logger.Infof(providers.TypeApp, "Starting %s", a.conf.AppName)
	defer a.logger.Close()

	a.scheduler.Init()

	serverErr := make(chan error, 1)
	if a.conf.WebServer.Enabled {
		go func() {
			a.logger.Infof(providers.TypeApp, "Listening HTTP clients on %s", a.WebServer.Addr)
			if err := a.WebServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- err
			}
		}()
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	var runErr error
	select {
	case <-stop:
		a.logger.Infof(providers.TypeApp, "Shutdown signal received")
	case err := <-serverErr:
		runErr = fmt.Errorf("server error: %w", err)
	}

	a.scheduler.Stop()

	if a.conf.WebServer.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.WebServer.Shutdown(ctx); err != nil && runErr == nil {
			runErr = err
		}
	}

	if runErr != nil {
		return runErr
	}
	a.logger.Infof(providers.TypeApp, "gracefully stopped")
	return nil
}

// Once runs the job a single time, for `ard run` and external timers.
type Once struct {
	job    interfaces.JobInterface
	conf   *structures.Config
	logger providers.Logger
}

func NewOnce(job interfaces.JobInterface, conf *structures.Config, logger providers.Logger) *Once {
	return &Once{job: job, conf: conf, logger: logger}
}

func (o *Once) Run(ctx context.Context) (*models.RunResult, error) {
	defer o.logger.Close()

	ctx, cancel := context.WithTimeout(ctx, o.conf.Schedule.Timeout)
	defer cancel()

	o.logger.Infof(providers.TypeApp, "Starting single run of %s", o.conf.AppName)
	result, err := o.job.Run(ctx)
	if err != nil {
		return nil, err
	}
	o.logger.Infof(providers.TypeApp, "Run finished in %s, page %s", result.Duration(), result.PageID)
	return result, nil
}
