//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"ard/internal"
	"ard/internal/clients/blob"
	"ard/internal/clients/notion"
	"ard/internal/clients/quickchart"
	"ard/internal/clients/twitter"
	"ard/internal/controllers"
	"ard/internal/job"
	"ard/internal/providers"
	"ard/internal/services"
	"ard/internal/structures"
)

var providerSet = wire.NewSet(
	providers.NewConfigProvider,
	providers.NewLogProvider,
	providers.NewMetricsProvider,
	providers.NewInstrumentedCacheProvider,
	providers.NewHttpClientProvider,
)

var clientSet = wire.NewSet(
	twitter.NewClient,
	notion.NewClient,
	quickchart.NewClient,
	blob.NewClient,
	wire.Bind(new(services.ActivitySource), new(*twitter.Client)),
	wire.Bind(new(services.NotionAPI), new(*notion.Client)),
	wire.Bind(new(services.ChartAPI), new(*quickchart.Client)),
	wire.Bind(new(services.BlobContainer), new(*blob.Client)),
)

var jobSet = wire.NewSet(
	services.NewReportService,
	services.NewChartService,
	services.NewImageStore,
	services.NewPagePublisher,
	job.NewJob,
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providerSet,
		clientSet,
		jobSet,
		job.NewScheduler,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewHandler,
		internal.NewApp,
	)

	return nil, nil
}

func InitOnce(cfg *structures.CliFlags) (*internal.Once, error) {

	wire.Build(
		providerSet,
		clientSet,
		jobSet,
		internal.NewOnce,
	)

	return nil, nil
}
