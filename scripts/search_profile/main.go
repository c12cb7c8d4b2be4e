package main

import (
	"github.com/cameron-bost/spacesettlers/pkg/cli"
	"github.com/cameron-bost/spacesettlers/pkg/comparison"
	"github.com/cameron-bost/spacesettlers/pkg/conf"
)

// Run via: go run scripts/search_profile/main.go
func main() {
	conf.SetAppName("search_profile")
	conf.SetHelp(`Plots path cost, planning time and search tree size of A* and GBFS against the best possible distance.
Reads gbfs_data.txt and astar_data.txt from data directory and does nothing when either does not exist.`)

	cli.Run(comparison.SearchProfile)
}
