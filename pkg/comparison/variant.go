package comparison

import (
	"path/filepath"

	"github.com/cameron-bost/spacesettlers/pkg/results"
	"github.com/cameron-bost/spacesettlers/pkg/visualization"
	"github.com/pkg/errors"
)

const (
	// WindowTitle names every comparison figure.
	WindowTitle = "CS 5013 - BDSM - A* vs GBFS"

	// AStarLabel and GBFSLabel are legend entries of the algorithms.
	AStarLabel = "A*"
	GBFSLabel  = "GBFS"

	// Axis names used in figure titles.
	minCostAxis   = "min_cost"
	finalCostAxis = "final_cost"
	cpuTimeAxis   = "cpu_time"
	treeSizeAxis  = "tree_size"

	// Result file names written by the search agents.
	CompareFile = "search_compare_data.txt"
	GBFSFile    = "gbfs_data.txt"
	AStarFile   = "astar_data.txt"
)

// Input is a result file together with the layout of its columns.
type Input struct {
	File   string
	Schema results.Schema
}

// Variant is one way of comparing the algorithms.
type Variant struct {
	Name string
	// Inputs are loaded in order, first missing one stops the variant.
	Inputs []Input
	// Figures builds figures from tables loaded from Inputs, in the same order.
	Figures func(tables []*results.Table) ([]*visualization.Figure, error)
}

var (
	// SearchCompare plots costs of both algorithms run on the same problems.
	SearchCompare = Variant{
		Name:    "search_compare",
		Inputs:  []Input{{File: CompareFile, Schema: results.CompareSchema}},
		Figures: compareFigures,
	}

	// SearchProfile plots separately recorded runs of both algorithms.
	SearchProfile = Variant{
		Name: "search_profile",
		Inputs: []Input{
			{File: GBFSFile, Schema: results.ProfileSchema},
			{File: AStarFile, Schema: results.ProfileSchema},
		},
		Figures: profileFigures,
	}
)

// Load reads all inputs of the variant from dataDir. It stops on the first
// missing input with an error satisfying results.IsMissing.
func (v Variant) Load(dataDir string) ([]*results.Table, error) {
	tables := make([]*results.Table, 0, len(v.Inputs))
	for _, input := range v.Inputs {
		table, err := results.Load(filepath.Join(dataDir, input.File))
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}
	return tables, nil
}

// Build loads inputs of the variant from dataDir and builds its figures.
// Nothing is built when an input is missing.
func (v Variant) Build(dataDir string) ([]*visualization.Figure, []*results.Table, error) {
	tables, err := v.Load(dataDir)
	if err != nil {
		return nil, nil, err
	}

	figures, err := v.Figures(tables)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "%s: could not build figures", v.Name)
	}
	return figures, tables, nil
}

// compareFigures builds single figure of A* and GBFS final costs against the best distance.
func compareFigures(tables []*results.Table) ([]*visualization.Figure, error) {
	table, schema := tables[0], results.CompareSchema

	bestDistances, err := table.Named(schema, results.BestDistance)
	if err != nil {
		return nil, err
	}
	astarCosts, err := table.Named(schema, results.AStarCost)
	if err != nil {
		return nil, err
	}
	gbfsCosts, err := table.Named(schema, results.GBFSCost)
	if err != nil {
		return nil, err
	}

	figure := visualization.NewFigure(WindowTitle, minCostAxis, finalCostAxis)
	if err := figure.AddScatter(AStarLabel, bestDistances, astarCosts); err != nil {
		return nil, err
	}
	if err := figure.AddScatter(GBFSLabel, bestDistances, gbfsCosts); err != nil {
		return nil, err
	}
	return []*visualization.Figure{figure}, nil
}

// profileAxes pairs y axis names of profile figures with their columns.
var profileAxes = []struct {
	name   string
	column string
}{
	{finalCostAxis, results.PathCost},
	{cpuTimeAxis, results.PlanTime},
	{treeSizeAxis, results.TreeSize},
}

// profileFigures builds cost, timing and tree size figures from gbfs and astar tables.
func profileFigures(tables []*results.Table) ([]*visualization.Figure, error) {
	gbfs, astar, schema := tables[0], tables[1], results.ProfileSchema

	astarDistances, err := astar.Named(schema, results.BestDistance)
	if err != nil {
		return nil, err
	}
	gbfsDistances, err := gbfs.Named(schema, results.BestDistance)
	if err != nil {
		return nil, err
	}

	figures := make([]*visualization.Figure, 0, len(profileAxes))
	for _, axis := range profileAxes {
		astarValues, err := astar.Named(schema, axis.column)
		if err != nil {
			return nil, err
		}
		gbfsValues, err := gbfs.Named(schema, axis.column)
		if err != nil {
			return nil, err
		}

		figure := visualization.NewFigure(WindowTitle, minCostAxis, axis.name)
		if err := figure.AddScatter(AStarLabel, astarDistances, astarValues); err != nil {
			return nil, err
		}
		if err := figure.AddScatter(GBFSLabel, gbfsDistances, gbfsValues); err != nil {
			return nil, err
		}
		figures = append(figures, figure)
	}
	return figures, nil
}
