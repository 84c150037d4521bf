// Package voroskel turns the Voronoi diagram of a thin 2D island into
// support points: skeleton graph in, longest internal path out, sample
// points on top.
//
// 🚀 What is voroskel?
//
//	A small, focused toolkit for SLA-style support placement on island
//	cross-sections:
//		• voronoi/  — annotated diagram input: vertices, twin half-edges,
//		  cells and the island's boundary segments
//		• skeleton/ — diagram → weighted skeleton graph with per-node
//		  distance to the island boundary
//		• longest/  — explicit-stack longest-path search over the near-tree
//		  skeleton, with circle (cycle) detection and resolution plus a
//		  greedy prefix-exchange reshape
//		• sample/   — support-point selection: arc-length centroid for
//		  short islands, inset leaf point for long ones
//
// ✨ Why this shape?
//
//   - Skeletons of real islands are trees with the occasional cycle, so
//     the search is exact on trees and deliberately greedy on cycles
//   - Everything runs on explicit stacks and queues; input size never
//     grows the call stack
//   - Errors are sentinel values, wrapped with context on the way out
//
// Quick ASCII example:
//
//	    E───A
//	    │   │          a unit square circle behind a stem,
//	S───┤   │          with a branch hanging off one corner:
//	    │   │          the longest path runs through the stem,
//	    C───B───H      around the short arc, and down the branch.
//
// Start with skeleton.Build, then longest.LongestPath or sample.Sample.
//
//	go get github.com/katalvlaran/voroskel
package voroskel
