package geom

// ConstructOption customizes a geometry constructor's validation behavior.
type ConstructOption func(*constructConfig)

type constructConfig struct {
	validate bool
}

func resolveConstructConfig(opts []ConstructOption) constructConfig {
	cfg := constructConfig{validate: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// DisableValidation skips ring-closure/length/shell-hole checks. Use it only
// when the caller already knows the input is well-formed — e.g. internal
// noder/polygonizer code re-assembling rings it just validated.
func DisableValidation() ConstructOption {
	return func(cfg *constructConfig) { cfg.validate = false }
}

// NewPoint constructs a Point geometry. A Point always carries exactly one
// coordinate; there is no empty-Point representation in this model.
func NewPoint(c Coordinate) Geometry {
	return Geometry{kind: KindPoint, seq: Sequence{c}}
}

// NewLineString constructs a LineString from a coordinate sequence.
// By default requires len(seq) >= 2 (ErrLineStringTooShort otherwise).
func NewLineString(seq Sequence, opts ...ConstructOption) (Geometry, error) {
	cfg := resolveConstructConfig(opts)
	if cfg.validate && len(seq) < 2 {
		return Geometry{}, ErrLineStringTooShort
	}
	return Geometry{kind: KindLineString, seq: seq}, nil
}

// NewLinearRing constructs a LinearRing. By default requires len(seq) >= 4
// and seq[0] == seq[len-1] (ErrRingTooShort / ErrRingNotClosed otherwise).
func NewLinearRing(seq Sequence, opts ...ConstructOption) (Geometry, error) {
	cfg := resolveConstructConfig(opts)
	if cfg.validate {
		if len(seq) < 4 {
			return Geometry{}, ErrRingTooShort
		}
		if !seq.IsClosed() {
			return Geometry{}, ErrRingNotClosed
		}
	}
	return Geometry{kind: KindLinearRing, seq: seq}, nil
}

// NewPolygon constructs a Polygon from a shell ring and zero or more hole
// rings. By default each ring must satisfy the LinearRing invariants; the
// model does not enforce planarity of hole containment, so
// holes lying outside the shell are accepted without error — callers relying
// on that invariant must check it themselves (see polygonize, which does,
// for its own shell/hole matching).
func NewPolygon(shell Sequence, holes []Sequence, opts ...ConstructOption) (Geometry, error) {
	cfg := resolveConstructConfig(opts)
	if cfg.validate {
		if len(shell) == 0 {
			return Geometry{}, ErrPolygonNoShell
		}
		if len(shell) < 4 {
			return Geometry{}, ErrRingTooShort
		}
		if !shell.IsClosed() {
			return Geometry{}, ErrRingNotClosed
		}
		for _, h := range holes {
			if len(h) < 4 {
				return Geometry{}, ErrRingTooShort
			}
			if !h.IsClosed() {
				return Geometry{}, ErrRingNotClosed
			}
		}
	}
	return Geometry{kind: KindPolygon, shell: shell, holes: holes}, nil
}

// NewMultiPoint constructs a MultiPoint from Point children.
func NewMultiPoint(points []Geometry) Geometry {
	return Geometry{kind: KindMultiPoint, children: points}
}

// NewMultiLineString constructs a MultiLineString from LineString children.
func NewMultiLineString(lines []Geometry) Geometry {
	return Geometry{kind: KindMultiLineString, children: lines}
}

// NewMultiPolygon constructs a MultiPolygon from Polygon children.
func NewMultiPolygon(polys []Geometry) Geometry {
	return Geometry{kind: KindMultiPolygon, children: polys}
}

// NewGeometryCollection constructs a heterogeneous, possibly nested collection.
func NewGeometryCollection(children []Geometry) Geometry {
	return Geometry{kind: KindGeometryCollection, children: children}
}
