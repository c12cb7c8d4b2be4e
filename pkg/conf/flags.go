package conf

import (
	"os/exec"
	"runtime"
)

var (
	// DataDir is the directory the fixed result file names are resolved in.
	DataDir = NewStringFlag("data_dir", "Directory with search result files", ".")
	// OutputDir is where rendered figures are written.
	OutputDir = NewStringFlag("output_dir", "Directory rendered figures are written to", "plots")
	// Format selects the image format of rendered figures.
	Format = NewStringFlag("format", "Figure image format: png, svg, pdf, jpg, eps, tif", "png")
	// Width of a rendered figure in points.
	Width = NewIntFlag("width", "Figure width in points", 640)
	// Height of a rendered figure in points.
	Height = NewIntFlag("height", "Figure height in points", 480)
	// Viewer is the command launched for every rendered figure. "none" disables display.
	Viewer = NewStringFlag("viewer", "Command used to display each figure, it must not exit until the figure window is closed; 'none' to only write files", defaultViewer())
	// Summary enables the per-column summary table on stdout.
	Summary = NewBoolFlag("summary", "Print summary table of loaded results", false)
	// ConfigDump prints current configuration in env format and exits.
	ConfigDump = NewBoolFlag("config_dump", "Dump configuration as environment script", false)
)

// blockingViewers stay in foreground until their window is closed.
var blockingViewers = []string{"eog", "feh", "display"}

func defaultViewer() string {
	if runtime.GOOS == "darwin" {
		// Blocks until the viewer window is closed.
		return "open -W"
	}
	for _, viewer := range blockingViewers {
		if _, err := exec.LookPath(viewer); err == nil {
			return viewer
		}
	}
	// May return before the window is closed.
	return "xdg-open"
}
