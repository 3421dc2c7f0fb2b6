// Package wkt implements a reader and writer for the Well-Known Text subset
// this module uses: POINT, LINESTRING, MULTIPOINT, MULTILINESTRING, POLYGON,
// GEOMETRYCOLLECTION and their " Z " 3D-tagged variants.
//
// The parser is a recursive-descent parser over a small hand-rolled lexer,
// with method names chosen to track the WKT grammar's productions
// (nextGeometryTaggedText, nextPointText, nextLineStringText, ...) the way a
// textbook WKT parser does. Convention: methods named "next*" consume
// token(s) and build the next production.
package wkt
