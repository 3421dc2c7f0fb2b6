package tgf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/wktgraph/geom"
	"github.com/katalvlaran/wktgraph/graph"
	"github.com/katalvlaran/wktgraph/wkt"
)

// Write renders g in TGF: one "<index>\t<WKT point>" line per node in
// ascending index order, a "#" separator line, then one "<i>\t<j>" line
// per edge with i < j, ascending. Any write failure is returned unwrapped
// beyond its context; it is fatal for the invocation.
func Write(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)

	for _, n := range g.Nodes() {
		pt := wkt.Marshal(geom.NewPoint(n.Point))
		if _, err := fmt.Fprintf(bw, "%d\t%s\n", n.Index, pt); err != nil {
			return fmt.Errorf("tgf: writing node %d: %w", n.Index, err)
		}
	}

	if _, err := bw.WriteString("#\n"); err != nil {
		return fmt.Errorf("tgf: writing separator: %w", err)
	}

	for _, e := range g.EdgesPairs() {
		if _, err := bw.WriteString(strconv.Itoa(e[0]) + "\t" + strconv.Itoa(e[1]) + "\n"); err != nil {
			return fmt.Errorf("tgf: writing edge %d-%d: %w", e[0], e[1], err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("tgf: flush: %w", err)
	}
	return nil
}
