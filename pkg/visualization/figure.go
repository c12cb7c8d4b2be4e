package visualization

import (
	"fmt"

	"github.com/cameron-bost/spacesettlers/pkg/results"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gonum.org/v1/plot/plotter"
)

// Trace is one scatter series of a figure.
type Trace struct {
	Label string
	X, Y  results.Series
}

// Figure describes one plot window comparing algorithms on common axes.
type Figure struct {
	WindowTitle string
	Title       string
	XLabel      string
	YLabel      string
	Traces      []Trace
}

// NewFigure creates empty figure titled "<xName> x <yName>" with axes labelled by the names.
func NewFigure(windowTitle, xName, yName string) *Figure {
	return &Figure{
		WindowTitle: windowTitle,
		Title:       fmt.Sprintf("%s x %s", xName, yName),
		XLabel:      xName,
		YLabel:      yName,
	}
}

// AddScatter appends trace labelled label. Both series need the same length.
func (f *Figure) AddScatter(label string, x, y results.Series) error {
	if x.Len() != y.Len() {
		return errors.Errorf("figure %q: trace %q has %d x values and %d y values", f.Title, label, x.Len(), y.Len())
	}
	f.Traces = append(f.Traces, Trace{Label: label, X: x, Y: y})
	return nil
}

// Legend returns trace labels in the order traces were added.
func (f *Figure) Legend() []string {
	legend := make([]string, 0, len(f.Traces))
	for _, trace := range f.Traces {
		legend = append(legend, trace.Label)
	}
	return legend
}

// Points returns points of trace i.
func (f *Figure) Points(i int) plotter.XYs {
	trace := f.Traces[i]
	points := make(plotter.XYs, trace.X.Len())
	for k := range points {
		points[k].X = trace.X.Values[k]
		points[k].Y = trace.Y.Values[k]
	}
	return points
}

// Bounds returns bounding box of all points of the figure.
func (f *Figure) Bounds() orb.Bound {
	var all orb.MultiPoint
	for i := range f.Traces {
		for _, point := range f.Points(i) {
			if isFinite(point.X) && isFinite(point.Y) {
				all = append(all, orb.Point{point.X, point.Y})
			}
		}
	}
	return all.Bound()
}
