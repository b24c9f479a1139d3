package analysis

import (
	"fmt"
	"os"
	"path"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/rs/zerolog"
	"github.com/zeu5/bandit-testing/core"
)

const PlotFileName = "cumulative_rewards.html"

// PlotComparator renders the cumulative reward curves of all experiments into
// a single line chart.
type PlotComparator struct {
	savePath  string
	maxReward float64
	logger    zerolog.Logger
}

var _ core.Comparator = &PlotComparator{}

func NewPlotComparator(savePath string, maxReward float64, logger zerolog.Logger) *PlotComparator {
	return &PlotComparator{
		savePath:  path.Join(savePath, PlotFileName),
		maxReward: maxReward,
		logger:    logger,
	}
}

func (p *PlotComparator) Compare(experimentNames []string, datasets []core.DataSet) {
	if err := p.render(experimentNames, datasets); err != nil {
		p.logger.Error().Err(err).Str("path", p.savePath).Msg("failed to render plot")
		return
	}
	p.logger.Info().Str("path", p.savePath).Msg("saved cumulative reward plot")
}

func (p *PlotComparator) chart(experimentNames []string, datasets []core.DataSet) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Cumulative rewards",
			Subtitle: fmt.Sprintf("Maximal possible reward = %d", int(p.maxReward)),
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Time"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Reward"}),
	)

	steps := 0
	for _, ds := range datasets {
		if r, ok := ds.(*rewardDataset); ok && len(r.Rewards) > steps {
			steps = len(r.Rewards)
		}
	}
	xAxis := make([]string, steps)
	for i := range xAxis {
		xAxis[i] = strconv.Itoa(i)
	}
	line.SetXAxis(xAxis)

	for i, name := range experimentNames {
		r, ok := datasets[i].(*rewardDataset)
		if !ok {
			continue
		}
		items := make([]opts.LineData, len(r.Rewards))
		for j, v := range r.Rewards {
			items[j] = opts.LineData{Value: v}
		}
		line.AddSeries(name, items)
	}
	return line
}

func (p *PlotComparator) render(experimentNames []string, datasets []core.DataSet) error {
	if err := os.MkdirAll(path.Dir(p.savePath), 0755); err != nil {
		return err
	}
	f, err := os.Create(p.savePath)
	if err != nil {
		return err
	}
	defer f.Close()

	return p.chart(experimentNames, datasets).Render(f)
}
