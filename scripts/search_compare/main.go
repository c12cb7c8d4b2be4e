package main

import (
	"github.com/cameron-bost/spacesettlers/pkg/cli"
	"github.com/cameron-bost/spacesettlers/pkg/comparison"
	"github.com/cameron-bost/spacesettlers/pkg/conf"
)

// Run via: go run scripts/search_compare/main.go
func main() {
	conf.SetAppName("search_compare")
	conf.SetHelp(`Plots final path costs of A* and GBFS run on the same problems against the best possible distance.
Reads search_compare_data.txt from data directory and does nothing when it does not exist.`)

	cli.Run(comparison.SearchCompare)
}
