package comparison

import (
	"io"

	"github.com/cameron-bost/spacesettlers/pkg/executor"
	"github.com/cameron-bost/spacesettlers/pkg/visualization"
	"github.com/sirupsen/logrus"
)

// Options of a single comparison run.
type Options struct {
	DataDir  string
	Renderer visualization.Renderer
	// Viewer command, visualization.NoViewer to only write files.
	Viewer   string
	Executor executor.Executor
	// Summary receives summary table when not nil.
	Summary io.Writer
}

// Run builds figures of the variant, renders them and blocks until they are
// displayed. It returns paths of rendered figures. When an input is missing
// nothing is rendered or printed and the error satisfies results.IsMissing.
func (v Variant) Run(options Options) ([]string, error) {
	figures, tables, err := v.Build(options.DataDir)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("%s: loaded %d table(s), built %d figure(s)", v.Name, len(tables), len(figures))

	if options.Summary != nil {
		rows, err := v.Summary(tables)
		if err != nil {
			return nil, err
		}
		visualization.DrawTable(options.Summary, SummaryHeaders, rows)
	}

	paths := make([]string, 0, len(figures))
	for _, figure := range figures {
		path, err := options.Renderer.Render(figure)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	logrus.Infof("%s: rendered %d figure(s) to %q", v.Name, len(paths), options.Renderer.Dir)

	return paths, visualization.Show(options.Executor, options.Viewer, paths)
}
