package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"ard/internal/clients/quickchart"
	"ard/internal/models"
	"ard/internal/structures"
)

const (
	yAxisHeadroom = 2
	yAxisStep     = 2

	patternPlaceholder = "__ARD_BAR_PATTERN__"
)

type chartDisplay struct {
	Display bool `json:"display"`
}

type chartTicks struct {
	Min      int `json:"min"`
	Max      int `json:"max"`
	StepSize int `json:"stepSize"`
}

type chartAxis struct {
	Ticks     chartTicks   `json:"ticks"`
	GridLines chartDisplay `json:"gridLines"`
}

type chartDataset struct {
	Data            []int  `json:"data"`
	BackgroundColor string `json:"backgroundColor"`
}

type chartConfig struct {
	Type string `json:"type"`
	Data struct {
		Labels   []string       `json:"labels"`
		Datasets []chartDataset `json:"datasets"`
	} `json:"data"`
	Options struct {
		Legend chartDisplay `json:"legend"`
		Scales struct {
			YAxes []chartAxis `json:"yAxes"`
		} `json:"scales"`
		Plugins map[string]bool `json:"plugins"`
	} `json:"options"`
}

type ChartService struct {
	api  ChartAPI
	conf structures.ChartConfig
}

func NewChartService(conf *structures.Config, api ChartAPI) ChartServiceInterface {
	return &ChartService{api: api, conf: conf.Chart}
}

// YAxisMax leaves headroom above the tallest bar; an all-zero window still
// gets a non-degenerate [0, 2] axis.
func YAxisMax(counts []int) int {
	highest := 0
	for _, c := range counts {
		highest = max(highest, c)
	}
	return highest + yAxisHeadroom
}

// BuildChart returns the Chart.js config as QuickChart's JavaScript-capable
// string, with the bar fill expressed as a pattern.draw call.
func (cs *ChartService) BuildChart(periods []models.ActivityPeriod) (string, error) {
	labels := make([]string, len(periods))
	counts := make([]int, len(periods))
	for i, p := range periods {
		labels[i] = p.Label
		counts[i] = p.Count
	}

	var cfg chartConfig
	cfg.Type = "bar"
	cfg.Data.Labels = labels
	cfg.Data.Datasets = []chartDataset{{Data: counts, BackgroundColor: patternPlaceholder}}
	cfg.Options.Legend = chartDisplay{Display: false}
	cfg.Options.Scales.YAxes = []chartAxis{{
		Ticks:     chartTicks{Min: 0, Max: YAxisMax(counts), StepSize: yAxisStep},
		GridLines: chartDisplay{Display: false},
	}}
	cfg.Options.Plugins = map[string]bool{"roundedBars": true}

	data, err := json.Marshal(cfg)
	if err != nil {
		return "", err
	}

	pattern := fmt.Sprintf("pattern.draw(%s, %s)", strconv.Quote(cs.conf.BarPattern), strconv.Quote(cs.conf.BarColor))
	return strings.Replace(string(data), strconv.Quote(patternPlaceholder), pattern, 1), nil
}

func (cs *ChartService) Render(ctx context.Context, periods []models.ActivityPeriod) (*models.ChartArtifact, error) {
	chart, err := cs.BuildChart(periods)
	if err != nil {
		return nil, fmt.Errorf("%w: build chart: %w", models.ErrRenderService, err)
	}

	artifact, err := cs.api.Render(ctx, &quickchart.RenderRequest{
		Width:           cs.conf.Width,
		Height:          cs.conf.Height,
		Format:          "png",
		BackgroundColor: cs.conf.Background,
		Chart:           chart,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrRenderService, err)
	}
	return artifact, nil
}
