package cli

import (
	"fmt"
	"os"

	"github.com/cameron-bost/spacesettlers/pkg/comparison"
	"github.com/cameron-bost/spacesettlers/pkg/conf"
	"github.com/cameron-bost/spacesettlers/pkg/executor"
	"github.com/cameron-bost/spacesettlers/pkg/logger"
	"github.com/cameron-bost/spacesettlers/pkg/results"
	"github.com/cameron-bost/spacesettlers/pkg/utils/errutil"
	"github.com/cameron-bost/spacesettlers/pkg/visualization"
)

// Options builds run options of a variant from parsed configuration.
func Options() comparison.Options {
	options := comparison.Options{
		DataDir: conf.DataDir.Value(),
		Renderer: visualization.Renderer{
			Dir:    conf.OutputDir.Value(),
			Format: conf.Format.Value(),
			Width:  conf.Width.Value(),
			Height: conf.Height.Value(),
		},
		Viewer:   conf.Viewer.Value(),
		Executor: executor.NewLocal(),
	}
	if conf.Summary.Value() {
		options.Summary = os.Stdout
	}
	return options
}

// Run is the whole life of a plotting tool: it parses configuration, runs
// variant and exits the process on error. A missing input file ends the
// process successfully without any output.
func Run(variant comparison.Variant) {
	errutil.CheckWithContext(conf.ParseFlags(), "cannot parse configuration")

	if conf.ConfigDump.Value() {
		fmt.Println(conf.DumpConfig())
		os.Exit(0)
	}

	log := logger.Initialize(conf.AppName(), conf.LogLevel())
	log.WithField("config", conf.GetFlags()).Debug("Configuration")

	paths, err := variant.Run(Options())
	errutil.CheckOrSkip(err, results.IsMissing)

	log.Infof("Done, %d figure(s) in %q", len(paths), conf.OutputDir.Value())
}
