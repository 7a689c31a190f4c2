// SPDX-License-Identifier: MIT

// Package matrixio reads and writes the distance/time matrix file:
//
//	<size>;<true|false>
//	DISTANCES
//	<i>;<M[i,j]>...
//	TRAVEL TIMES
//	<i>;<T[i,j]>...
//
// Symmetric files list j > i on row i; asymmetric files list every j from 0,
// the diagonal included. Numbers always use '.' as decimal point.
package matrixio
