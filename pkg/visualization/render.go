package visualization

import (
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Formats supported by Renderer.
var Formats = []string{"png", "svg", "pdf", "jpg", "eps", "tif"}

const (
	glyphRadius = 3
	// boundsMargin is the fraction of the data range added on each side of an axis.
	boundsMargin = 0.05
)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// Renderer draws figures to image files.
type Renderer struct {
	Dir    string
	Format string
	// Width and Height in points.
	Width, Height int
}

// FileName returns name of the image file for a figure.
func (r Renderer) FileName(figure *Figure) string {
	name := strings.Trim(nonAlphanumeric.ReplaceAllString(figure.Title, "_"), "_")
	if name == "" {
		name = "figure"
	}
	return name + "." + r.Format
}

// Render draws figure and saves it in Dir. It returns path of written file.
func (r Renderer) Render(figure *Figure) (string, error) {
	if !isSupported(r.Format) {
		return "", errors.Errorf("unsupported figure format %q, use one of %s", r.Format, strings.Join(Formats, ", "))
	}
	if r.Width <= 0 || r.Height <= 0 {
		return "", errors.Errorf("invalid figure size %dx%d", r.Width, r.Height)
	}

	p, err := r.draw(figure)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(r.Dir, 0755); err != nil {
		return "", errors.Wrapf(err, "could not create output directory %q", r.Dir)
	}
	path := filepath.Join(r.Dir, r.FileName(figure))
	if err := p.Save(vg.Points(float64(r.Width)), vg.Points(float64(r.Height)), path); err != nil {
		return "", errors.Wrapf(err, "could not save figure %q to %q", figure.Title, path)
	}

	logrus.WithFields(logrus.Fields{"window": figure.WindowTitle, "path": path}).Debugf("Rendered figure %q", figure.Title)
	return path, nil
}

func (r Renderer) draw(figure *Figure) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = figure.Title
	p.X.Label.Text = figure.XLabel
	p.Y.Label.Text = figure.YLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for i, trace := range figure.Traces {
		points := finitePoints(figure.Points(i))
		if dropped := trace.X.Len() - len(points); dropped > 0 {
			logrus.Debugf("Figure %q: skipping %d non finite points of %q", figure.Title, dropped, trace.Label)
		}

		scatter, err := plotter.NewScatter(points)
		if err != nil {
			return nil, errors.Wrapf(err, "could not draw %q in figure %q", trace.Label, figure.Title)
		}
		scatter.GlyphStyle.Color = plotutil.Color(i)
		scatter.GlyphStyle.Shape = plotutil.Shape(i)
		scatter.GlyphStyle.Radius = vg.Points(glyphRadius)

		p.Add(scatter)
		p.Legend.Add(trace.Label, scatter)
	}

	if hasPoints(figure) {
		bound := pad(figure.Bounds())
		p.X.Min, p.X.Max = bound.Min.X(), bound.Max.X()
		p.Y.Min, p.Y.Max = bound.Min.Y(), bound.Max.Y()
	}

	return p, nil
}

// pad widens bound by boundsMargin of its size, or by one unit on an axis of zero size.
func pad(bound orb.Bound) orb.Bound {
	margin := func(min, max float64) float64 {
		if size := max - min; size > 0 {
			return size * boundsMargin
		}
		return 1
	}
	dx := margin(bound.Min.X(), bound.Max.X())
	dy := margin(bound.Min.Y(), bound.Max.Y())
	return orb.Bound{
		Min: orb.Point{bound.Min.X() - dx, bound.Min.Y() - dy},
		Max: orb.Point{bound.Max.X() + dx, bound.Max.Y() + dy},
	}
}

func finitePoints(points plotter.XYs) plotter.XYs {
	finite := make(plotter.XYs, 0, len(points))
	for _, point := range points {
		if isFinite(point.X) && isFinite(point.Y) {
			finite = append(finite, point)
		}
	}
	return finite
}

func hasPoints(figure *Figure) bool {
	for i := range figure.Traces {
		if len(finitePoints(figure.Points(i))) > 0 {
			return true
		}
	}
	return false
}

func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}

func isSupported(format string) bool {
	for _, supported := range Formats {
		if format == supported {
			return true
		}
	}
	return false
}
