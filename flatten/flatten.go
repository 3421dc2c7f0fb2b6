package flatten

import "github.com/katalvlaran/wktgraph/geom"

// frame is one level of the explicit traversal stack: a slice of sibling
// geometries and the index of the next one to visit.
type frame struct {
	items []geom.Geometry
	idx   int
}

// Iter is a stateful, single-pass iterator over a geometry's primitives.
// The zero value is not usable; construct one with New. Iter never mutates
// the geometry it was built from and never fails (infallible).
type Iter struct {
	stack []frame
}

// New returns an Iter that yields root's primitives in depth-first,
// left-to-right order. root's lifetime must outlive the Iter, since Iter
// holds references to root's children rather than copying the tree.
func New(root geom.Geometry) *Iter {
	return &Iter{stack: []frame{{items: []geom.Geometry{root}}}}
}

// Next returns the next primitive geometry and true, or the zero Geometry
// and false once the walk is exhausted.
func (it *Iter) Next() (geom.Geometry, bool) {
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		if top.idx >= len(top.items) {
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}
		g := top.items[top.idx]
		top.idx++

		if g.Kind().IsCollection() {
			children, _ := g.Children()
			it.stack = append(it.stack, frame{items: children})
			continue
		}
		return g, true
	}
	return geom.Geometry{}, false
}

// All collects the full primitive sequence into a slice. Equivalent to
// draining New(root) with Next in a loop; useful when the caller wants
// random access or to iterate more than once (Flattener's output, once
// collected, is idempotent to re-iterate).
func All(root geom.Geometry) []geom.Geometry {
	it := New(root)
	var out []geom.Geometry
	for {
		g, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, g)
	}
}
