// Package wktgraph is a toolkit core for stream-oriented computational-
// geometry art: it turns WKT geometry collections into a planar-ish
// adjacency graph and back.
//
// The forward path discovers every pairwise intersection, unifies
// coincident coordinates within a tolerance, and serializes the result as
// TGF with WKT point labels:
//
//	WKT stream → flatten → segment → noder(ε) → builder → tgf
//
// The inverse path recovers a minimal set of polygon faces plus dangling
// linestrings from an edge set:
//
//	tgf → graph → polygonize → WKT stream
//
// Package snap composes on either side, rewriting coordinates onto a grid
// or onto their first-seen neighbors. Everything is single-threaded and
// synchronous; each stage owns its output until it hands it downstream.
//
// Quick ASCII example — two crossing strokes become four edges meeting at
// a shared node:
//
//	    ╲ ╱            ╲ ╱
//	     ╳      ⇒       ●
//	    ╱ ╲            ╱ ╲
//
// Dive into the per-package docs for contracts and failure modes; the
// noder and polygonizer carry the detailed write-ups.
package wktgraph
