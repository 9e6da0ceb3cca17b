package notion

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/jomei/notionapi"
	"golang.org/x/time/rate"

	"ard/internal/clients"
	"ard/internal/structures"
)

const MaxPageSize = 100

// Client adapts notionapi to the operations of the report page.
type Client struct {
	api *notionapi.Client
}

// NewClient builds a notionapi client on a copy of httpClient whose transport
// paces requests and targets notion.baseURL. Zero notion.rateLimit disables
// pacing. A 429 answer is returned as an error, never retried.
func NewClient(conf *structures.Config, httpClient *http.Client) (*Client, error) {
	target, err := url.Parse(conf.Notion.BaseURL)
	if err != nil || target.Host == "" {
		return nil, fmt.Errorf("notion: invalid base URL %q", conf.Notion.BaseURL)
	}

	limit := rate.Inf
	burst := 1
	if conf.Notion.RateLimit > 0 {
		limit = rate.Limit(conf.Notion.RateLimit)
		burst = max(int(conf.Notion.RateLimit), 1)
	}

	base := httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	paced := &http.Client{
		Timeout: httpClient.Timeout,
		Transport: &pacedTransport{
			base:    base,
			target:  target,
			limiter: rate.NewLimiter(limit, burst),
		},
	}

	api := notionapi.NewClient(
		notionapi.Token(conf.Notion.Token),
		notionapi.WithHTTPClient(paced),
		notionapi.WithVersion(conf.Notion.Version),
		notionapi.WithRetry(1),
	)
	return &Client{api: api}, nil
}

type pacedTransport struct {
	base    http.RoundTripper
	target  *url.URL
	limiter *rate.Limiter
}

func (t *pacedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}

	out := req.Clone(req.Context())
	out.URL.Scheme = t.target.Scheme
	out.URL.Host = t.target.Host
	out.URL.Path = strings.TrimRight(t.target.Path, "/") + req.URL.Path
	out.URL.RawPath = ""
	out.Host = t.target.Host
	return t.base.RoundTrip(out)
}

func wrapError(op string, err error) error {
	var apiErr *notionapi.Error
	if errors.As(err, &apiErr) {
		return &clients.APIError{
			Service:    "notion",
			StatusCode: apiErr.Status,
			Code:       string(apiErr.Code),
			Message:    apiErr.Message,
		}
	}
	return fmt.Errorf("notion: %s: %w", op, err)
}

func richText(content string) []notionapi.RichText {
	return []notionapi.RichText{{
		Type: notionapi.ObjectTypeText,
		Text: &notionapi.Text{Content: content},
	}}
}

func joinText(parts []notionapi.RichText) string {
	var sb strings.Builder
	for _, rt := range parts {
		switch {
		case rt.PlainText != "":
			sb.WriteString(rt.PlainText)
		case rt.Text != nil:
			sb.WriteString(rt.Text.Content)
		}
	}
	return sb.String()
}

func toAPIBlock(b Block) (notionapi.Block, error) {
	basic := notionapi.BasicBlock{Object: notionapi.ObjectTypeBlock, Type: notionapi.BlockType(b.Type)}
	switch b.Type {
	case BlockTypeHeading3:
		return &notionapi.Heading3Block{
			BasicBlock: basic,
			Heading3:   notionapi.Heading{RichText: richText(b.Text)},
		}, nil
	case BlockTypeBulletedListItem:
		return &notionapi.BulletedListItemBlock{
			BasicBlock:       basic,
			BulletedListItem: notionapi.ListItem{RichText: richText(b.Text)},
		}, nil
	case BlockTypeImage:
		return &notionapi.ImageBlock{
			BasicBlock: basic,
			Image: notionapi.Image{
				Type:     notionapi.FileTypeExternal,
				External: &notionapi.FileObject{URL: b.ImageURL},
			},
		}, nil
	}
	return nil, fmt.Errorf("notion: unsupported block type %q", b.Type)
}

func fromAPIBlock(b notionapi.Block) Block {
	out := Block{ID: string(b.GetID()), Type: string(b.GetType())}
	switch v := b.(type) {
	case *notionapi.Heading3Block:
		out.Text = joinText(v.Heading3.RichText)
	case *notionapi.BulletedListItemBlock:
		out.Text = joinText(v.BulletedListItem.RichText)
	case *notionapi.ImageBlock:
		if v.Image.External != nil {
			out.ImageURL = v.Image.External.URL
		}
	}
	return out
}

// SearchPages returns pages whose title matches query, in the API's ranking order.
func (c *Client) SearchPages(ctx context.Context, query string) ([]Page, error) {
	resp, err := c.api.Search.Do(ctx, &notionapi.SearchRequest{
		Query:    query,
		Filter:   notionapi.SearchFilter{Property: "object", Value: "page"},
		PageSize: MaxPageSize,
	})
	if err != nil {
		return nil, wrapError("search", err)
	}

	pages := make([]Page, 0, len(resp.Results))
	for _, obj := range resp.Results {
		if p, ok := obj.(*notionapi.Page); ok {
			pages = append(pages, Page{ID: string(p.ID)})
		}
	}
	return pages, nil
}

// ListChildren returns the first pageSize children of a block; no pagination.
func (c *Client) ListChildren(ctx context.Context, blockID string, pageSize int) ([]Block, error) {
	if pageSize <= 0 || pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	resp, err := c.api.Block.GetChildren(ctx, notionapi.BlockID(blockID), &notionapi.Pagination{PageSize: pageSize})
	if err != nil {
		return nil, wrapError("list children", err)
	}

	blocks := make([]Block, 0, len(resp.Results))
	for _, b := range resp.Results {
		blocks = append(blocks, fromAPIBlock(b))
	}
	return blocks, nil
}

func (c *Client) DeleteBlock(ctx context.Context, blockID string) error {
	if _, err := c.api.Block.Delete(ctx, notionapi.BlockID(blockID)); err != nil {
		return wrapError("delete block", err)
	}
	return nil
}

func (c *Client) CreatePage(ctx context.Context, req *CreatePageRequest) (*Page, error) {
	emoji := notionapi.Emoji(req.Icon)
	page, err := c.api.Page.Create(ctx, &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:   notionapi.ParentTypePageID,
			PageID: notionapi.PageID(req.ParentPageID),
		},
		Properties: notionapi.Properties{
			"title": notionapi.TitleProperty{Title: richText(req.Title)},
		},
		Icon: &notionapi.Icon{Type: "emoji", Emoji: &emoji},
		Cover: &notionapi.Image{
			Type:     notionapi.FileTypeExternal,
			External: &notionapi.FileObject{URL: req.CoverURL},
		},
	})
	if err != nil {
		return nil, wrapError("create page", err)
	}
	return &Page{ID: string(page.ID)}, nil
}

func (c *Client) AppendChildren(ctx context.Context, blockID string, children []Block) error {
	blocks := make([]notionapi.Block, 0, len(children))
	for _, child := range children {
		b, err := toAPIBlock(child)
		if err != nil {
			return err
		}
		blocks = append(blocks, b)
	}

	_, err := c.api.Block.AppendChildren(ctx, notionapi.BlockID(blockID), &notionapi.AppendBlockChildrenRequest{Children: blocks})
	if err != nil {
		return wrapError("append children", err)
	}
	return nil
}
