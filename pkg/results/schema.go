package results

// Logical column names used by the search agents.
const (
	BestDistance = "best_distance"
	AStarCost    = "astar_cost"
	GBFSCost     = "gbfs_cost"
	PlanTime     = "plan_time"
	TreeSize     = "tree_size"
	PathCost     = "path_cost"
)

// Schema fixes the order of columns in a result file.
type Schema struct {
	Name    string
	Columns []string
}

// Index returns position of column name or -1.
func (s Schema) Index(name string) int {
	for i, column := range s.Columns {
		if column == name {
			return i
		}
	}
	return -1
}

var (
	// CompareSchema describes search_compare_data.txt written by the A* test
	// agent with header "minCost,astarCost,gbfsCost".
	CompareSchema = Schema{
		Name:    "search_compare",
		Columns: []string{BestDistance, AStarCost, GBFSCost},
	}

	// ProfileSchema describes per algorithm files gbfs_data.txt and
	// astar_data.txt with header "planTime,treeSize,pathCost,bestDistance".
	ProfileSchema = Schema{
		Name:    "search_profile",
		Columns: []string{PlanTime, TreeSize, PathCost, BestDistance},
	}
)
