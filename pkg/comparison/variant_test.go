package comparison

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cameron-bost/spacesettlers/pkg/results"
	"github.com/cameron-bost/spacesettlers/pkg/visualization"
	. "github.com/smartystreets/goconvey/convey"
	"gonum.org/v1/plot/plotter"
)

const (
	compareData = "minCost,astarCost,gbfsCost\n1,4,7\n2,5,8\n3,6,9\n"
	astarData   = "planTime,treeSize,pathCost,bestDistance\n12,40,105,100\n30,80,210,200\n"
	gbfsData    = "planTime,treeSize,pathCost,bestDistance\n3,10,130,100\n5,12,260,200\n9,20,330,300\n"
)

func writeFiles(t *testing.T, files map[string]string) string {
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func titles(figures []*visualization.Figure) []string {
	names := []string{}
	for _, figure := range figures {
		names = append(names, figure.Title)
	}
	return names
}

func TestSearchCompare(t *testing.T) {
	Convey("When search compare data is present", t, func() {
		dir := writeFiles(t, map[string]string{CompareFile: compareData})
		figures, tables, err := SearchCompare.Build(dir)

		Convey("Exactly one figure comparing final costs should be built", func() {
			So(err, ShouldBeNil)
			So(tables, ShouldHaveLength, 1)
			So(figures, ShouldHaveLength, 1)

			figure := figures[0]
			So(figure.WindowTitle, ShouldEqual, WindowTitle)
			So(figure.Title, ShouldEqual, "min_cost x final_cost")
			So(figure.XLabel, ShouldEqual, "min_cost")
			So(figure.YLabel, ShouldEqual, "final_cost")
			So(figure.Legend(), ShouldResemble, []string{"A*", "GBFS"})
			So(figure.Points(0), ShouldResemble, plotter.XYs{{X: 1, Y: 4}, {X: 2, Y: 5}, {X: 3, Y: 6}})
			So(figure.Points(1), ShouldResemble, plotter.XYs{{X: 1, Y: 7}, {X: 2, Y: 8}, {X: 3, Y: 9}})
		})

		Convey("Building again should give identical series", func() {
			again, _, err := SearchCompare.Build(dir)
			So(err, ShouldBeNil)
			So(again[0].Traces, ShouldResemble, figures[0].Traces)
		})
	})

	Convey("When search compare data is missing", t, func() {
		figures, tables, err := SearchCompare.Build(t.TempDir())

		Convey("No figure should be built and error should mark missing file", func() {
			So(results.IsMissing(err), ShouldBeTrue)
			So(figures, ShouldBeEmpty)
			So(tables, ShouldBeEmpty)
		})
	})

	Convey("When search compare data has too few columns", t, func() {
		dir := writeFiles(t, map[string]string{CompareFile: "minCost,astarCost\n1,4\n"})
		figures, _, err := SearchCompare.Build(dir)

		Convey("Building should fail without marking missing file", func() {
			So(err, ShouldNotBeNil)
			So(results.IsMissing(err), ShouldBeFalse)
			So(figures, ShouldBeEmpty)
		})
	})

	Convey("When search compare data is malformed", t, func() {
		dir := writeFiles(t, map[string]string{CompareFile: "minCost,astarCost,gbfsCost\n1;4;7\n"})
		_, _, err := SearchCompare.Build(dir)

		Convey("Building should fail with parse error", func() {
			So(err, ShouldNotBeNil)
			So(results.IsMissing(err), ShouldBeFalse)
			So(err.Error(), ShouldContainSubstring, CompareFile)
		})
	})
}

func TestSearchProfile(t *testing.T) {
	Convey("When both profile files are present", t, func() {
		dir := writeFiles(t, map[string]string{AStarFile: astarData, GBFSFile: gbfsData})
		figures, tables, err := SearchProfile.Build(dir)

		Convey("Exactly three figures with distinct titles should be built", func() {
			So(err, ShouldBeNil)
			So(tables, ShouldHaveLength, 2)
			So(titles(figures), ShouldResemble, []string{
				"min_cost x final_cost",
				"min_cost x cpu_time",
				"min_cost x tree_size",
			})
		})

		Convey("Every figure should plot A* before GBFS against best distance", func() {
			for _, figure := range figures {
				So(figure.Legend(), ShouldResemble, []string{"A*", "GBFS"})
				So(figure.Traces[0].X.Values, ShouldResemble, []float64{100, 200})
				So(figure.Traces[1].X.Values, ShouldResemble, []float64{100, 200, 300})
			}
		})

		Convey("Figures should use cost, time and tree size columns", func() {
			So(figures[0].Traces[0].Y.Values, ShouldResemble, []float64{105, 210})
			So(figures[0].Traces[1].Y.Values, ShouldResemble, []float64{130, 260, 330})
			So(figures[1].Traces[0].Y.Values, ShouldResemble, []float64{12, 30})
			So(figures[1].Traces[1].Y.Values, ShouldResemble, []float64{3, 5, 9})
			So(figures[2].Traces[0].Y.Values, ShouldResemble, []float64{40, 80})
			So(figures[2].Traces[1].Y.Values, ShouldResemble, []float64{10, 12, 20})
		})
	})

	Convey("When astar profile file is missing", t, func() {
		dir := writeFiles(t, map[string]string{GBFSFile: gbfsData})
		figures, _, err := SearchProfile.Build(dir)

		Convey("No figure should be built", func() {
			So(results.IsMissing(err), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, AStarFile)
			So(figures, ShouldBeEmpty)
		})
	})

	Convey("When gbfs profile file is missing", t, func() {
		dir := writeFiles(t, map[string]string{AStarFile: astarData})
		figures, _, err := SearchProfile.Build(dir)

		Convey("No figure should be built", func() {
			So(results.IsMissing(err), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, GBFSFile)
			So(figures, ShouldBeEmpty)
		})
	})

	Convey("When both profile files are missing", t, func() {
		_, _, err := SearchProfile.Build(t.TempDir())

		Convey("The first checked file should be reported", func() {
			So(results.IsMissing(err), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, GBFSFile)
		})
	})
}

func TestSummary(t *testing.T) {
	Convey("When summarizing loaded profile tables", t, func() {
		dir := writeFiles(t, map[string]string{AStarFile: astarData, GBFSFile: gbfsData})
		_, tables, err := SearchProfile.Build(dir)
		So(err, ShouldBeNil)

		rows, err := SearchProfile.Summary(tables)
		So(err, ShouldBeNil)

		Convey("Every column of every file should be described", func() {
			So(rows, ShouldHaveLength, 8)
			So(rows[0], ShouldResemble, []string{GBFSFile, results.PlanTime, "3", "3", "9", "5.667 (+/- 2.494)"})
			So(rows[6], ShouldResemble, []string{AStarFile, results.PathCost, "2", "105", "210", "157.500 (+/- 52.500)"})
			for _, row := range rows {
				So(row, ShouldHaveLength, len(SummaryHeaders))
			}
		})
	})

	Convey("When summarizing table without rows", t, func() {
		dir := writeFiles(t, map[string]string{CompareFile: "minCost,astarCost,gbfsCost\n"})
		tables, err := SearchCompare.Load(dir)
		So(err, ShouldBeNil)

		Convey("Columns should be reported empty", func() {
			rows, err := SearchCompare.Summary(tables)
			So(err, ShouldBeNil)
			So(rows, ShouldHaveLength, 3)
			So(rows[0], ShouldResemble, []string{CompareFile, results.BestDistance, "0", "-", "-", "-"})
		})
	})
}
