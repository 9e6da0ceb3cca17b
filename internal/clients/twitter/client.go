package twitter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	gotwitter "github.com/g8rswimmer/go-twitter/v2"

	"ard/internal/clients"
	"ard/internal/models"
	"ard/internal/structures"
)

type bearerToken string

func (t bearerToken) Add(req *http.Request) {
	req.Header.Add("Authorization", "Bearer "+string(t))
}

// Client reads daily post counts from the Twitter API v2 recent counts endpoint.
type Client struct {
	api      *gotwitter.Client
	userName string
	lookback int
	now      func() time.Time
}

func NewClient(conf *structures.Config, httpClient *http.Client) *Client {
	return &Client{
		api: &gotwitter.Client{
			Authorizer: bearerToken(conf.Twitter.Token),
			Client:     httpClient,
			Host:       strings.TrimRight(conf.Twitter.BaseURL, "/"),
		},
		userName: conf.Twitter.UserName,
		lookback: conf.Twitter.LookbackDays,
		now:      time.Now,
	}
}

func (c *Client) options() gotwitter.TweetRecentCountsOpts {
	opts := gotwitter.TweetRecentCountsOpts{Granularity: gotwitter.GranularityDay}
	// The endpoint defaults to the last 7 days; a shorter window is opt-in.
	if c.lookback > 0 && c.lookback < 7 {
		opts.StartTime = c.now().UTC().AddDate(0, 0, -c.lookback)
	}
	return opts
}

func (c *Client) RecentCounts(ctx context.Context) (*models.ActivitySample, error) {
	resp, err := c.api.TweetRecentCounts(ctx, "from:"+c.userName, c.options())
	if err != nil {
		return nil, wrapError(err)
	}

	sample := &models.ActivitySample{
		Counts: make([]models.DailyCount, 0, len(resp.TweetCounts)),
	}
	if resp.Meta != nil {
		sample.TotalCount = int(resp.Meta.TotalTweetCount)
	}
	for _, tc := range resp.TweetCounts {
		if tc == nil {
			continue
		}
		start, err := time.Parse(time.RFC3339, tc.Start)
		if err != nil {
			return nil, fmt.Errorf("twitter: bucket start %q: %w", tc.Start, err)
		}
		end, err := time.Parse(time.RFC3339, tc.End)
		if err != nil {
			return nil, fmt.Errorf("twitter: bucket end %q: %w", tc.End, err)
		}
		sample.Counts = append(sample.Counts, models.DailyCount{
			Start: start,
			End:   end,
			Count: int(tc.TweetCount),
		})
	}
	return sample, nil
}

func wrapError(err error) error {
	var errResp *gotwitter.ErrorResponse
	if errors.As(err, &errResp) {
		return &clients.APIError{
			Service:    "twitter",
			StatusCode: errResp.StatusCode,
			Code:       errResp.Title,
			Message:    errResp.Detail,
		}
	}
	var httpErr *gotwitter.HTTPError
	if errors.As(err, &httpErr) {
		return &clients.APIError{
			Service:    "twitter",
			StatusCode: httpErr.StatusCode,
			Message:    httpErr.Status,
		}
	}
	return fmt.Errorf("twitter: request failed: %w", err)
}
