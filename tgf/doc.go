// Package tgf reads and writes Geometry Graphs in Trivial Graph Format
// with WKT point labels.
//
// The wire layout is two sections separated by a line holding only "#":
// node lines "<index>\t<WKT point>" first, then edge lines "<i>\t<j>".
// Nodes are written in ascending index order; edges with i < j, ascending.
// A node's point is written as 3D WKT when its coordinate carries Z.
//
// Reading is lenient the way a stream consumer has to be: blank lines are
// ignored, garbage lines and unparseable labels are skipped with a warning,
// edges referencing unknown indices are dropped, and duplicate edges and
// self-loops are dropped. Node indices must appear in strictly ascending
// order starting from 0; lines that skip ahead or repeat an index are
// skipped until the expected index appears. Only the underlying reader or
// writer failing is fatal.
package tgf
