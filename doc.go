// Package eikonal computes minimal-travel-time paths across a continuous
// 2D plane populated with obstacles.
//
// 🚀 What is eikonal?
//
//	A small, focused planning library that brings together:
//		• Grid discretization of a rectangular domain
//		• An obstacle catalog (rectangles & circles) with spatial indexing
//		• A traversal-speed (velocity) field built by rasterization + smoothing
//		• An Eikonal-style arrival-time field solved by wavefront propagation
//		• Deterministic path reconstruction by greedy descent of that field
//
// ✨ Why choose eikonal?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed traversal orders, bit-identical repeated solves
//   - Goal-centric – one solve supports path extraction from any start
//
// Under the hood, everything is organized under focused subpackages:
//
//	grid/      — domain discretization, index↔coordinate conversions
//	obstacle/  — shape variants, validation & the indexed catalog
//	velocity/  — velocity-field rasterization and Gaussian smoothing
//	wavefront/ — Dijkstra-based arrival-time (distance field) solver
//	planner/   — the aggregate: construct, add obstacles, solve, extract
//	scenario/  — YAML scenario files → configured planners
//	render/    — PNG visualization of fields, obstacles and paths
//
// Quick ASCII example:
//
//	S · · ▓ · ·
//	· · · ▓ · ·
//	· · · ▓ · G
//
//	a wavefront expands from G, slows to a crawl inside ▓, and the path
//	from S descends the resulting arrival-time field around the wall.
//
// Dive into the planner package for the end-to-end API, or cmd/eikonal
// for a runnable demo that writes field and path images.
//
//	go get github.com/katalvlaran/eikonal/planner
package eikonal
