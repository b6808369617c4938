// Package hillclimb computes shortest paths across height-mapped grids —
// climb from the start marker to the best-signal cell, or descend from it
// back to the valley floor.
//
// 🚀 What is hillclimb?
//
//	A small, focused library that brings together:
//		• Surface model: parse a letter-coded elevation map into an immutable grid
//		• Move legality: 4-directional steps limited by elevation delta
//		• Search engine: index-addressed BFS with per-cell best-distance pruning
//		• Goal predicates: "reached the best signal" and "reached the valley floor"
//
// ✨ Why choose hillclimb?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed neighbor ordering, reproducible visit sequences
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – OnVisit hook and context cancellation on every search
//
// Under the hood, everything is organized under two subpackages:
//
//	surface/ — elevation grid model: parsing, validation, positions, indexing
//	climb/   — move legality, BFS search engine, goal predicates
//
// Quick ASCII example:
//
//	Sabqponm
//	abcryxxl
//	accszExk
//	acctuvwj
//	abdefghi
//
//	climbing from S to E takes 31 steps; descending from E to
//	the nearest 'a' cell takes 29.
//
// Dive into README.md and examples/ for full usage.
//
//	go get github.com/katalvlaran/hillclimb
package hillclimb
