// SPDX-License-Identifier: MIT
// Package: twexact/builder
//
// constants.go — method tags and minima shared by constructors.

package builder

// Method tags used as error prefixes.
const (
	methodPath              = "Path"
	methodCycle             = "Cycle"
	methodStar              = "Star"
	methodWheel             = "Wheel"
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	methodGrid              = "Grid"
	methodKTree             = "KTree"
	methodRandomSparse      = "RandomSparse"
)

// Minimum sizes.
const (
	minPathNodes  = 1
	minCycleNodes = 3
	minStarNodes  = 2
	minWheelNodes = 4 // outer cycle has n-1 ≥ 3 vertices
	minGridDim    = 1
)
