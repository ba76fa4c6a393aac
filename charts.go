package bench

import (
	"image/color"
	"math"
	"sort"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// DefaultThroughputTitle is the title of the absolute throughput chart
// unless the caller overrides it.
const DefaultThroughputTitle = "Snapshot Hashing Throughput — SHA-256 Vs PH128 (150k Tx, 10KB)"

// preferredOrder fixes the category order of the throughput chart for the
// files written by the snapshot benchmark runner. Files not listed here are
// appended in sorted order.
var preferredOrder = []string{
	"public_state.data",
	"private_state_hashes.data",
	"txids.data",
	"_all.data",
	TotalRow,
}

// timeSeries selects the elapsed-time values of all files holding rows for
// both algorithms, in first-seen order. The aggregate TOTAL row is skipped.
func timeSeries(ix *Index) (labels []string, first, second plotter.Values) {
	for _, file := range ix.Files() {
		if file == TotalRow {
			continue
		}
		a, b, ok := ix.Both(file)
		if !ok {
			continue
		}
		labels = append(labels, file)
		first = append(first, a.ElapsedMs)
		second = append(second, b.ElapsedMs)
	}
	return labels, first, second
}

// speedupSeries computes the throughput ratio of the second algorithm over
// the first for all files holding both, in first-seen order. Files where
// either throughput is zero are skipped, the TOTAL row is included.
func speedupSeries(ix *Index) (labels []string, ratios plotter.Values) {
	for _, file := range ix.Files() {
		a, b, ok := ix.Both(file)
		if !ok || a.Throughput == 0 || b.Throughput == 0 {
			continue
		}
		labels = append(labels, file)
		ratios = append(ratios, b.Throughput/a.Throughput)
	}
	return labels, ratios
}

// PlotTimes renders the median elapsed time of both algorithms as grouped
// bars, one group per file.
func PlotTimes(ix *Index, path string) error {
	labels, first, second := timeSeries(ix)
	p := newBarPlot("Elapsed time (ms) per file", "Median time (ms)")
	if err := addPair(p, ix.pair, labels, first, second); err != nil {
		return err
	}
	return p.Save(10*vg.Inch, 5*vg.Inch, path)
}

// PlotSpeedup renders one bar per file with the throughput ratio of the
// second algorithm over the first.
func PlotSpeedup(ix *Index, path string) error {
	labels, ratios := speedupSeries(ix)
	p := newBarPlot("Throughput speedup ("+ix.pair.Second+" / "+ix.pair.First+")", "Speedup (×)")
	if len(labels) > 0 {
		if _, err := addBars(p, ratios, 0, 0); err != nil {
			return err
		}
		p.NominalX(labels...)
	}
	return p.Save(10*vg.Inch, 5*vg.Inch, path)
}

// PlotThroughput renders the absolute throughput of both algorithms as
// grouped bars. Categories follow preferredOrder where present, remaining
// files come after it in sorted order.
func PlotThroughput(ix *Index, title, path string) error {
	labels := throughputOrder(ix)
	var first, second plotter.Values
	for _, file := range labels {
		a, b, _ := ix.Both(file)
		first = append(first, a.Throughput)
		second = append(second, b.Throughput)
	}
	if title == "" {
		title = DefaultThroughputTitle
	}
	p := newBarPlot(title, "Throughput (MiB/s)")
	if err := addPair(p, ix.pair, labels, first, second); err != nil {
		return err
	}
	return p.Save(11*vg.Inch, 5.5*vg.Inch, path)
}

// throughputOrder returns the files holding rows for both algorithms,
// preferred names first, the rest sorted.
func throughputOrder(ix *Index) []string {
	qualified := make(map[string]bool)
	for _, file := range ix.Files() {
		if _, _, ok := ix.Both(file); ok {
			qualified[file] = true
		}
	}
	var labels []string
	for _, file := range preferredOrder {
		if qualified[file] {
			labels = append(labels, file)
			delete(qualified, file)
		}
	}
	rest := make([]string, 0, len(qualified))
	for file := range qualified {
		rest = append(rest, file)
	}
	sort.Strings(rest)
	return append(labels, rest...)
}

func newBarPlot(title, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "File"
	p.Y.Label.Text = ylabel
	p.X.Tick.Label.Rotation = math.Pi / 9
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Color = color.Gray{Y: 0xd0}
	p.Add(grid)
	return p
}

// addPair adds two bar series side by side, with a legend naming the
// algorithms. With no categories the plot is left empty.
func addPair(p *plot.Plot, pair AlgoPair, labels []string, first, second plotter.Values) error {
	if len(labels) == 0 {
		return nil
	}
	w := vg.Points(20)
	b1, err := addBars(p, first, 0, -w/2)
	if err != nil {
		return err
	}
	b2, err := addBars(p, second, 1, w/2)
	if err != nil {
		return err
	}
	p.Legend.Add(pair.First, b1)
	p.Legend.Add(pair.Second, b2)
	p.Legend.Top = true
	p.NominalX(labels...)
	return nil
}

// addBars adds one bar series shifted by offset from the category tick,
// annotated with its values.
func addBars(p *plot.Plot, vals plotter.Values, colorIdx int, offset vg.Length) (*plotter.BarChart, error) {
	bars, err := plotter.NewBarChart(vals, vg.Points(20))
	if err != nil {
		return nil, err
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = plotutil.Color(colorIdx)
	bars.Offset = offset
	p.Add(bars)

	labels, err := barLabels(vals, offset)
	if err != nil {
		return nil, err
	}
	p.Add(labels)
	return bars, nil
}

// barLabels places the value of each bar above it, shifted sideways by the
// same offset as the bars themselves.
func barLabels(vals plotter.Values, offset vg.Length) (*plotter.Labels, error) {
	xys := make(plotter.XYs, len(vals))
	strs := make([]string, len(vals))
	for i, v := range vals {
		xys[i] = plotter.XY{X: float64(i), Y: v}
		strs[i] = strconv.FormatFloat(v, 'f', 2, 64)
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: strs})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Font.Size = vg.Points(9)
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YBottom
	}
	labels.Offset = vg.Point{X: offset, Y: vg.Points(2)}
	return labels, nil
}
