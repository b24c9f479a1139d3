package analysis

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/zeu5/bandit-testing/core"
	"github.com/zeu5/bandit-testing/util"
)

// SummaryComparator prints the true means of the arms followed by the pull
// proportions of every experiment.
type SummaryComparator struct {
	writer io.Writer
	means  []float64
}

var _ core.Comparator = &SummaryComparator{}

func NewSummaryComparator(writer io.Writer, means []float64) *SummaryComparator {
	return &SummaryComparator{
		writer: writer,
		means:  util.CopyFloatSlice(means),
	}
}

func (s *SummaryComparator) Compare(experimentNames []string, datasets []core.DataSet) {
	fmt.Fprintf(s.writer, "The real means of underlying variables are\n%s\n", formatFloats(s.means))
	if best := util.ArgMax(s.means); best >= 0 {
		fmt.Fprintf(s.writer, "The highest mean is %.4f at arm %d\n", s.means[best], best)
	}
	for i, name := range experimentNames {
		ds, ok := datasets[i].(*proportionDataset)
		if !ok {
			continue
		}
		fmt.Fprintf(
			s.writer,
			"Proportion of times each arm was pulled by %s (explored %d times)\n%s\n",
			name, ds.Explorations, formatFloats(ds.Proportions),
		)
	}
}

func formatFloats(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'f', 4, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
