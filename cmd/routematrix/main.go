// SPDX-License-Identifier: MIT

// Command routematrix computes the travel distance and travel time matrices
// of a coordinate file and writes them in the routematrix text format.
//
// Usage:
//
//	routematrix coordFile outputFile symmetricFlag [workerCount] [flags]
//	routematrix fix inputFile outputFile [flags]
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
