// Command quoteopt picks the best supplier offer for an RFQ from the shell.
//
//	quoteopt select --model model.json --floor 0.2 offers.csv
//	quoteopt inspect --model model.json
package main

import (
	"os"

	"quoteOptimizer/app/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
