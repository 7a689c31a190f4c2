// Package routematrix computes travel distance and travel time matrices for a
// set of geographic coordinates.
//
// A run reads a coordinate file, asks a routing provider for every pair of
// distinct locations with a pool of workers, copies each answer to every node
// sharing the same location, repairs both matrices until they satisfy the
// triangle inequality, and writes them in a ';'-delimited text format.
//
// Packages:
//
//	geo/            coordinates, "same location" canonical ids, coordinate file reader
//	provider/       routing provider capability: great-circle, OSRM, LRU cache, metrics
//	evaluator/      shared pair cursor, result matrices, progress, worker pool
//	matrix/         dense matrices, validators and the triangle-inequality closure
//	matrixio/       matrix file writer and reader
//	config/         YAML configuration, environment overrides, validation
//	metrics/        Prometheus collectors and /metrics endpoint
//	logging/        zerolog setup
//	cmd/routematrix command line
//
// Quick example:
//
//	    0,1 ── 2
//	      \   /
//	        3
//
// Nodes 0 and 1 share a location: the provider is asked for (0,2), (0,3)
// and (2,3) only, and node 1 inherits node 0's answers.
//
//	go install github.com/katalvlaran/routematrix/cmd/routematrix@latest
//	routematrix coords.csv matrix.txt true 8 --provider osrm --osrm-url http://localhost:5000
package routematrix
