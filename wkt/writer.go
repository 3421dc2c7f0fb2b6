package wkt

import (
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/wktgraph/geom"
)

// Marshal renders g as a WKT string with trimmed numeric output (no
// trailing zeros).
func Marshal(g geom.Geometry) string {
	var b strings.Builder
	writeGeometry(&b, g)
	return b.String()
}

// WriteTo renders g as WKT to w.
func WriteTo(w io.Writer, g geom.Geometry) error {
	_, err := io.WriteString(w, Marshal(g))
	return err
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func writeCoordinate(b *strings.Builder, c geom.Coordinate, is3D bool) {
	b.WriteString(formatNumber(c.X))
	b.WriteByte(' ')
	b.WriteString(formatNumber(c.Y))
	if is3D {
		b.WriteByte(' ')
		b.WriteString(formatNumber(c.Z))
	}
}

func writeSequence(b *strings.Builder, seq geom.Sequence) {
	is3D := seq.HasZ()
	b.WriteByte('(')
	for i, c := range seq {
		if i > 0 {
			b.WriteString(", ")
		}
		writeCoordinate(b, c, is3D)
	}
	b.WriteByte(')')
}

func zTag(is3D bool) string {
	if is3D {
		return " Z "
	}
	return ""
}

func writeGeometry(b *strings.Builder, g geom.Geometry) {
	switch g.Kind() {
	case geom.KindPoint:
		seq, _ := g.Seq()
		b.WriteString("POINT")
		b.WriteString(zTag(seq.HasZ()))
		writeSequence(b, seq)
	case geom.KindLineString, geom.KindLinearRing:
		seq, _ := g.Seq()
		b.WriteString("LINESTRING")
		b.WriteString(zTag(seq.HasZ()))
		writeSequence(b, seq)
	case geom.KindPolygon:
		shell, _ := g.Shell()
		holes, _ := g.Holes()
		is3D := shell.HasZ()
		for _, h := range holes {
			is3D = is3D || h.HasZ()
		}
		b.WriteString("POLYGON")
		b.WriteString(zTag(is3D))
		b.WriteByte('(')
		writeSequence(b, shell)
		for _, h := range holes {
			b.WriteString(", ")
			writeSequence(b, h)
		}
		b.WriteByte(')')
	case geom.KindMultiPoint:
		children, _ := g.Children()
		b.WriteString("MULTIPOINT")
		b.WriteString(zTag(anyChildHasZ(children)))
		b.WriteByte('(')
		for i, c := range children {
			if i > 0 {
				b.WriteString(", ")
			}
			seq, _ := c.Seq()
			writeSequence(b, seq)
		}
		b.WriteByte(')')
	case geom.KindMultiLineString:
		children, _ := g.Children()
		b.WriteString("MULTILINESTRING")
		b.WriteString(zTag(anyChildHasZ(children)))
		b.WriteByte('(')
		for i, c := range children {
			if i > 0 {
				b.WriteString(", ")
			}
			seq, _ := c.Seq()
			writeSequence(b, seq)
		}
		b.WriteByte(')')
	case geom.KindMultiPolygon:
		children, _ := g.Children()
		b.WriteString("MULTIPOLYGON")
		b.WriteString(zTag(anyChildHasZ(children)))
		b.WriteByte('(')
		for i, c := range children {
			if i > 0 {
				b.WriteString(", ")
			}
			shell, _ := c.Shell()
			holes, _ := c.Holes()
			b.WriteByte('(')
			writeSequence(b, shell)
			for _, h := range holes {
				b.WriteString(", ")
				writeSequence(b, h)
			}
			b.WriteByte(')')
		}
		b.WriteByte(')')
	case geom.KindGeometryCollection:
		children, _ := g.Children()
		b.WriteString("GEOMETRYCOLLECTION(")
		for i, c := range children {
			if i > 0 {
				b.WriteString(", ")
			}
			writeGeometry(b, c)
		}
		b.WriteByte(')')
	}
}

func anyChildHasZ(children []geom.Geometry) bool {
	for _, c := range children {
		if seq, ok := c.Seq(); ok && seq.HasZ() {
			return true
		}
		if shell, ok := c.Shell(); ok && shell.HasZ() {
			return true
		}
	}
	return false
}
