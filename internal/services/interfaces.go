package services

//go:generate mockgen -source=interfaces.go -destination=../testutil/mock_services.go -package=testutil -exclude_interfaces=NotionAPI,ChartAPI,BlobContainer

import (
	"context"

	"ard/internal/clients/notion"
	"ard/internal/clients/quickchart"
	"ard/internal/models"
)

type ActivitySource interface {
	RecentCounts(ctx context.Context) (*models.ActivitySample, error)
}

type ReportServiceInterface interface {
	Aggregate(sample *models.ActivitySample) (*models.RecentActivityReport, error)
}

type ChartServiceInterface interface {
	Render(ctx context.Context, periods []models.ActivityPeriod) (*models.ChartArtifact, error)
}

type ImageStoreInterface interface {
	Store(ctx context.Context, artifact *models.ChartArtifact) (string, error)
}

type PagePublisherInterface interface {
	Prepare(ctx context.Context) (string, error)
	Populate(ctx context.Context, pageID string, report *models.RecentActivityReport, imageURL string) error
}

type NotionAPI interface {
	SearchPages(ctx context.Context, query string) ([]notion.Page, error)
	ListChildren(ctx context.Context, blockID string, pageSize int) ([]notion.Block, error)
	DeleteBlock(ctx context.Context, blockID string) error
	CreatePage(ctx context.Context, req *notion.CreatePageRequest) (*notion.Page, error)
	AppendChildren(ctx context.Context, blockID string, children []notion.Block) error
}

type ChartAPI interface {
	Render(ctx context.Context, req *quickchart.RenderRequest) (*models.ChartArtifact, error)
}

type BlobContainer interface {
	Exists(ctx context.Context) (bool, error)
	Create(ctx context.Context) error
	Upload(ctx context.Context, name string, data []byte, contentType string) error
	URL() string
}
