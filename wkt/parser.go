package wkt

import (
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/wktgraph/geom"
)

// Unmarshal parses a single WKT geometry from s.
func Unmarshal(s string) (geom.Geometry, error) {
	return UnmarshalFromReader(strings.NewReader(s))
}

// UnmarshalFromReader parses a single WKT geometry from r, requiring the
// reader be fully consumed (aside from trailing whitespace).
func UnmarshalFromReader(r io.Reader) (geom.Geometry, error) {
	p := &parser{lex: newLexer(r)}
	g, err := p.nextGeometryTaggedText()
	if err != nil {
		return geom.Geometry{}, err
	}
	if err := p.checkEOF(); err != nil {
		return geom.Geometry{}, err
	}
	return g, nil
}

type parser struct {
	lex *lexer
}

func (p *parser) nextToken() (string, error) {
	tok, err := p.lex.next()
	if err == io.EOF {
		return "", parseErrorf("unexpected end of input")
	}
	return tok, err
}

func (p *parser) peekToken() (string, error) {
	tok, err := p.lex.peekTok()
	if err == io.EOF {
		return "", parseErrorf("unexpected end of input")
	}
	return tok, err
}

func (p *parser) checkEOF() error {
	tok, err := p.lex.next()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}
	return parseErrorf("expected EOF but found %q", tok)
}

// nextGeomTag consumes "<KIND>" or "<KIND> Z" and reports whether a Z
// dimension tag was present.
func (p *parser) nextGeomTag() (kind string, is3D bool, err error) {
	kind, err = p.nextToken()
	if err != nil {
		return "", false, err
	}
	tok, err := p.peekToken()
	if err != nil {
		return "", false, err
	}
	if tok == "Z" {
		_, _ = p.nextToken()
		is3D = true
	}
	return kind, is3D, nil
}

func (p *parser) nextGeometryTaggedText() (geom.Geometry, error) {
	kind, is3D, err := p.nextGeomTag()
	if err != nil {
		return geom.Geometry{}, err
	}
	switch kind {
	case "POINT":
		return p.nextPointText(is3D)
	case "LINESTRING":
		return p.nextLineStringText(is3D)
	case "POLYGON":
		return p.nextPolygonText(is3D)
	case "MULTIPOINT":
		return p.nextMultiPointText(is3D)
	case "MULTILINESTRING":
		return p.nextMultiLineStringText(is3D)
	case "MULTIPOLYGON":
		return p.nextMultiPolygonText(is3D)
	case "GEOMETRYCOLLECTION":
		return p.nextGeometryCollectionText(is3D)
	default:
		return geom.Geometry{}, parseErrorf("unknown geometry tag %q", kind)
	}
}

func (p *parser) nextLeftParen() error {
	tok, err := p.nextToken()
	if err != nil {
		return err
	}
	if tok != "(" {
		return parseErrorf("expected '(' but found %q", tok)
	}
	return nil
}

func (p *parser) nextRightParen() error {
	tok, err := p.nextToken()
	if err != nil {
		return err
	}
	if tok != ")" {
		return parseErrorf("expected ')' but found %q", tok)
	}
	return nil
}

// nextSignedNumber parses an optional leading '-' followed by a numeric
// token.
func (p *parser) nextSignedNumber() (float64, error) {
	tok, err := p.nextToken()
	if err != nil {
		return 0, err
	}
	neg := false
	if tok == "-" {
		neg = true
		tok, err = p.nextToken()
		if err != nil {
			return 0, err
		}
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, parseErrorf("invalid numeric literal %q", tok)
	}
	if neg {
		f = -f
	}
	return f, nil
}

func (p *parser) nextCoordinate(is3D bool) (geom.Coordinate, error) {
	x, err := p.nextSignedNumber()
	if err != nil {
		return geom.Coordinate{}, err
	}
	y, err := p.nextSignedNumber()
	if err != nil {
		return geom.Coordinate{}, err
	}
	if !is3D {
		return geom.XY(x, y), nil
	}
	z, err := p.nextSignedNumber()
	if err != nil {
		return geom.Coordinate{}, err
	}
	return geom.XYZ(x, y, z), nil
}

// nextCoordinateSequence parses "(" coord {"," coord} ")" with no trailing
// comma permitted (a trailing comma is an error).
func (p *parser) nextCoordinateSequence(is3D bool) (geom.Sequence, error) {
	if err := p.nextLeftParen(); err != nil {
		return nil, err
	}
	var seq geom.Sequence
	for {
		c, err := p.nextCoordinate(is3D)
		if err != nil {
			return nil, err
		}
		seq = append(seq, c)

		tok, err := p.peekToken()
		if err != nil {
			return nil, err
		}
		if tok == "," {
			_, _ = p.nextToken()
			if next, err := p.peekToken(); err == nil && next == ")" {
				return nil, parseErrorf("trailing comma in coordinate sequence")
			}
			continue
		}
		break
	}
	if err := p.nextRightParen(); err != nil {
		return nil, err
	}
	return seq, nil
}

func (p *parser) nextPointText(is3D bool) (geom.Geometry, error) {
	seq, err := p.nextCoordinateSequence(is3D)
	if err != nil {
		return geom.Geometry{}, err
	}
	if len(seq) != 1 {
		return geom.Geometry{}, parseErrorf("POINT requires exactly one coordinate, got %d", len(seq))
	}
	return geom.NewPoint(seq[0]), nil
}

func (p *parser) nextLineStringText(is3D bool) (geom.Geometry, error) {
	seq, err := p.nextCoordinateSequence(is3D)
	if err != nil {
		return geom.Geometry{}, err
	}
	g, err := geom.NewLineString(seq)
	if err != nil {
		return geom.Geometry{}, err
	}
	return g, nil
}

func (p *parser) nextRingSequence(is3D bool) (geom.Sequence, error) {
	return p.nextCoordinateSequence(is3D)
}

func (p *parser) nextPolygonText(is3D bool) (geom.Geometry, error) {
	if err := p.nextLeftParen(); err != nil {
		return geom.Geometry{}, err
	}
	var rings []geom.Sequence
	for {
		ring, err := p.nextRingSequence(is3D)
		if err != nil {
			return geom.Geometry{}, err
		}
		rings = append(rings, ring)

		tok, err := p.peekToken()
		if err != nil {
			return geom.Geometry{}, err
		}
		if tok == "," {
			_, _ = p.nextToken()
			continue
		}
		break
	}
	if err := p.nextRightParen(); err != nil {
		return geom.Geometry{}, err
	}
	if len(rings) == 0 {
		return geom.Geometry{}, parseErrorf("POLYGON requires at least a shell ring")
	}
	return geom.NewPolygon(rings[0], rings[1:])
}

func (p *parser) nextMultiPointText(is3D bool) (geom.Geometry, error) {
	if err := p.nextLeftParen(); err != nil {
		return geom.Geometry{}, err
	}
	var points []geom.Geometry
	for {
		tok, err := p.peekToken()
		if err != nil {
			return geom.Geometry{}, err
		}
		var pt geom.Coordinate
		if tok == "(" {
			seq, err := p.nextCoordinateSequence(is3D)
			if err != nil {
				return geom.Geometry{}, err
			}
			if len(seq) != 1 {
				return geom.Geometry{}, parseErrorf("MULTIPOINT member requires one coordinate")
			}
			pt = seq[0]
		} else {
			pt, err = p.nextCoordinate(is3D)
			if err != nil {
				return geom.Geometry{}, err
			}
		}
		points = append(points, geom.NewPoint(pt))

		tok, err = p.peekToken()
		if err != nil {
			return geom.Geometry{}, err
		}
		if tok == "," {
			_, _ = p.nextToken()
			continue
		}
		break
	}
	if err := p.nextRightParen(); err != nil {
		return geom.Geometry{}, err
	}
	return geom.NewMultiPoint(points), nil
}

func (p *parser) nextMultiLineStringText(is3D bool) (geom.Geometry, error) {
	if err := p.nextLeftParen(); err != nil {
		return geom.Geometry{}, err
	}
	var lines []geom.Geometry
	for {
		seq, err := p.nextCoordinateSequence(is3D)
		if err != nil {
			return geom.Geometry{}, err
		}
		ls, err := geom.NewLineString(seq)
		if err != nil {
			return geom.Geometry{}, err
		}
		lines = append(lines, ls)

		tok, err := p.peekToken()
		if err != nil {
			return geom.Geometry{}, err
		}
		if tok == "," {
			_, _ = p.nextToken()
			continue
		}
		break
	}
	if err := p.nextRightParen(); err != nil {
		return geom.Geometry{}, err
	}
	return geom.NewMultiLineString(lines), nil
}

func (p *parser) nextMultiPolygonText(is3D bool) (geom.Geometry, error) {
	if err := p.nextLeftParen(); err != nil {
		return geom.Geometry{}, err
	}
	var polys []geom.Geometry
	for {
		if err := p.nextLeftParen(); err != nil {
			return geom.Geometry{}, err
		}
		var rings []geom.Sequence
		for {
			ring, err := p.nextRingSequence(is3D)
			if err != nil {
				return geom.Geometry{}, err
			}
			rings = append(rings, ring)
			tok, err := p.peekToken()
			if err != nil {
				return geom.Geometry{}, err
			}
			if tok == "," {
				_, _ = p.nextToken()
				continue
			}
			break
		}
		if err := p.nextRightParen(); err != nil {
			return geom.Geometry{}, err
		}
		poly, err := geom.NewPolygon(rings[0], rings[1:])
		if err != nil {
			return geom.Geometry{}, err
		}
		polys = append(polys, poly)

		tok, err := p.peekToken()
		if err != nil {
			return geom.Geometry{}, err
		}
		if tok == "," {
			_, _ = p.nextToken()
			continue
		}
		break
	}
	if err := p.nextRightParen(); err != nil {
		return geom.Geometry{}, err
	}
	return geom.NewMultiPolygon(polys), nil
}

func (p *parser) nextGeometryCollectionText(_ bool) (geom.Geometry, error) {
	if err := p.nextLeftParen(); err != nil {
		return geom.Geometry{}, err
	}
	var children []geom.Geometry
	for {
		g, err := p.nextGeometryTaggedText()
		if err != nil {
			return geom.Geometry{}, err
		}
		children = append(children, g)

		tok, err := p.peekToken()
		if err != nil {
			return geom.Geometry{}, err
		}
		if tok == "," {
			_, _ = p.nextToken()
			continue
		}
		break
	}
	if err := p.nextRightParen(); err != nil {
		return geom.Geometry{}, err
	}
	return geom.NewGeometryCollection(children), nil
}
