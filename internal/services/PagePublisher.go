package services

import (
	"context"
	"fmt"
	"time"

	"ard/internal/clients/notion"
	"ard/internal/models"
	"ard/internal/providers"
	"ard/internal/structures"
)

type PagePublisher struct {
	api        NotionAPI
	logger     providers.Logger
	conf       structures.NotionConfig
	location   *time.Location
	timeFormat string
}

func NewPagePublisher(conf *structures.Config, api NotionAPI, logger providers.Logger) (PagePublisherInterface, error) {
	loc, err := time.LoadLocation(conf.Report.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("report time zone: %w", err)
	}
	return &PagePublisher{
		api:        api,
		logger:     logger,
		conf:       conf.Notion,
		location:   loc,
		timeFormat: conf.Report.TimeFormat,
	}, nil
}

// Prepare returns the id of an empty report page. Only the first search hit
// is treated as the report page; other pages with the same title are left
// untouched.
func (pp *PagePublisher) Prepare(ctx context.Context) (string, error) {
	pages, err := pp.api.SearchPages(ctx, pp.conf.PageTitle)
	if err != nil {
		return "", fmt.Errorf("%w: search %q: %w", models.ErrPublish, pp.conf.PageTitle, err)
	}

	if len(pages) > 0 {
		return pp.clear(ctx, pages[0].ID)
	}
	return pp.create(ctx)
}

func (pp *PagePublisher) clear(ctx context.Context, pageID string) (string, error) {
	blocks, err := pp.api.ListChildren(ctx, pageID, notion.MaxPageSize)
	if err != nil {
		return "", fmt.Errorf("%w: list blocks of %s: %w", models.ErrPublish, pageID, err)
	}

	pp.logger.Infof(providers.TypeJob, "Page '%s' exists already (%s), removing %d blocks...", pp.conf.PageTitle, pageID, len(blocks))

	// Delete from the end so the remaining indexes never shift.
	for i := len(blocks) - 1; i >= 0; i-- {
		if err := pp.api.DeleteBlock(ctx, blocks[i].ID); err != nil {
			return "", fmt.Errorf("%w: delete block %s: %w", models.ErrPublish, blocks[i].ID, err)
		}
	}

	return pageID, nil
}

func (pp *PagePublisher) create(ctx context.Context) (string, error) {
	pp.logger.Infof(providers.TypeJob, "Page '%s' does not exist yet, creating it...", pp.conf.PageTitle)

	page, err := pp.api.CreatePage(ctx, &notion.CreatePageRequest{
		ParentPageID: pp.conf.ParentPageID,
		Title:        pp.conf.PageTitle,
		Icon:         pp.conf.PageIcon,
		CoverURL:     pp.conf.PageCoverURL,
	})
	if err != nil {
		return "", fmt.Errorf("%w: create page %q: %w", models.ErrPublish, pp.conf.PageTitle, err)
	}
	return page.ID, nil
}

// ReportBlocks is the fixed page body: one heading, four facts and the chart.
func (pp *PagePublisher) ReportBlocks(report *models.RecentActivityReport, imageURL string) []notion.Block {
	marker := "👀"
	if report.DaysWithoutTweets == 0 {
		marker = "🚀"
	}

	return []notion.Block{
		notion.NewHeading3(fmt.Sprintf("Your activity over the last %d days", report.NumberOfDays)),
		notion.NewBulletedListItem(fmt.Sprintf("Total tweets: %d 👁", report.TotalCount)),
		notion.NewBulletedListItem(fmt.Sprintf("Tweets per day: %s 🎯", report.FormattedAverage())),
		notion.NewBulletedListItem(fmt.Sprintf("Days without tweets: %d %s", report.DaysWithoutTweets, marker)),
		notion.NewBulletedListItem(fmt.Sprintf("Updated at: %s 📆", report.GeneratedAt.In(pp.location).Format(pp.timeFormat))),
		notion.NewExternalImage(imageURL),
	}
}

// Populate only appends; Prepare must have cleared the page first.
func (pp *PagePublisher) Populate(ctx context.Context, pageID string, report *models.RecentActivityReport, imageURL string) error {
	if err := pp.api.AppendChildren(ctx, pageID, pp.ReportBlocks(report, imageURL)); err != nil {
		return fmt.Errorf("%w: append blocks to %s: %w", models.ErrPublish, pageID, err)
	}
	return nil
}
