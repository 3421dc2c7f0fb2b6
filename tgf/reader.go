package tgf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/wktgraph/geom"
	"github.com/katalvlaran/wktgraph/graph"
	"github.com/katalvlaran/wktgraph/wkt"
)

// Read parses a TGF stream into a Geometry Graph. Per the package doc,
// malformed records are skipped with a warning; only a reader failure is
// fatal. File node indices are remapped through the graph's own
// first-seen node table, so a file that labels two nodes with the same
// coordinate still wires its edges to the right points.
func Read(r io.Reader, opts ...Option) (*graph.Graph, error) {
	cfg := resolveConfig(opts)
	g := graph.New()

	// fileToGraph maps the file's node indices onto graph indices; they
	// diverge when the file repeats a coordinate.
	fileToGraph := make(map[int]int)
	expected := 0
	inEdges := false

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == "#" {
			inEdges = true
			continue
		}
		if inEdges {
			readEdgeLine(g, fileToGraph, line, lineNo, cfg.log)
		} else {
			expected = readNodeLine(g, fileToGraph, line, lineNo, expected, cfg.log)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tgf: reading input: %w", err)
	}
	return g, nil
}

// readNodeLine handles one pre-separator line and returns the updated
// expected index.
func readNodeLine(g *graph.Graph, fileToGraph map[int]int, line string, lineNo, expected int, log Logger) int {
	idxStr, rest, ok := splitOnSpace(line)
	if !ok {
		log.Warnf("line %d: %v: %q", lineNo, ErrParse, line)
		return expected
	}
	idx, err := strconv.ParseUint(idxStr, 10, 32)
	if err != nil {
		log.Warnf("line %d: %v: %q", lineNo, ErrParse, line)
		return expected
	}
	if int(idx) != expected {
		log.Warnf("line %d: %v: got %d, want %d", lineNo, ErrOutOfOrderNode, idx, expected)
		return expected
	}

	pt, err := wkt.Unmarshal(rest)
	if err != nil {
		log.Warnf("line %d: node %d: %v", lineNo, idx, err)
		return expected
	}
	if pt.Kind() != geom.KindPoint {
		log.Warnf("line %d: node %d: %v: %s", lineNo, idx, ErrNotAPoint, pt.Kind())
		return expected
	}

	seq, _ := pt.Seq()
	fileToGraph[expected] = g.AddNode(seq[0])
	return expected + 1
}

// readEdgeLine handles one post-separator line. Labels after the two
// indices are ignored.
func readEdgeLine(g *graph.Graph, fileToGraph map[int]int, line string, lineNo int, log Logger) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		log.Warnf("line %d: %v: %q", lineNo, ErrParse, line)
		return
	}
	a, errA := strconv.ParseUint(fields[0], 10, 32)
	b, errB := strconv.ParseUint(fields[1], 10, 32)
	if errA != nil || errB != nil {
		log.Warnf("line %d: %v: %q", lineNo, ErrParse, line)
		return
	}

	src, okA := fileToGraph[int(a)]
	dst, okB := fileToGraph[int(b)]
	if !okA || !okB {
		log.Warnf("line %d: edge %d-%d references an unknown node", lineNo, a, b)
		return
	}
	if src == dst {
		log.Warnf("line %d: edge %d-%d is a self-loop", lineNo, a, b)
		return
	}
	if err := g.AddEdge(src, dst); err != nil {
		log.Warnf("line %d: edge %d-%d: %v", lineNo, a, b, err)
	}
}

// splitOnSpace splits line at its first whitespace run.
func splitOnSpace(line string) (head, tail string, ok bool) {
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return "", "", false
	}
	return line[:i], strings.TrimSpace(line[i:]), true
}
