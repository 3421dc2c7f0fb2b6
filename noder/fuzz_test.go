package noder_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	fuzz "github.com/trailofbits/go-fuzz-utils"

	"github.com/katalvlaran/wktgraph/geom"
	"github.com/katalvlaran/wktgraph/noder"
	"github.com/katalvlaran/wktgraph/segment"
)

// FuzzNoderOnRandomSegments drives the noder with typed fuzz data: a small
// batch of random segments on a coarse lattice, noded at a fuzz-chosen
// tolerance. Whenever noding converges, its output must be a fixed point
// of the same noder.
func FuzzNoderOnRandomSegments(f *testing.F) {
	f.Add([]byte("crossing strokes"))
	f.Add([]byte("near-coincident endpoints everywhere"))

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		count, err := tp.GetUint16()
		if err != nil {
			t.Skip(err)
		}

		var segs []segment.String
		for i := uint16(0); i < count%12+1; i++ {
			s, err := randomSegment(tp)
			if err != nil {
				t.Skip(err)
			}
			segs = append(segs, s)
		}

		epsPick, err := tp.GetByte()
		if err != nil {
			t.Skip(err)
		}
		eps := []float64{0, 0.01, 0.25}[int(epsPick)%3]

		once, err := noder.Node(segs, noder.WithTolerance(eps))
		if err != nil {
			require.ErrorIs(t, err, noder.ErrConvergence)
			return
		}
		twice, err := noder.Node(once, noder.WithTolerance(eps))
		require.NoError(t, err)
		require.Equal(t, normalize(once), normalize(twice))
	})
}

// randomSegment builds a two-point segment on a 17x17 quarter-step grid;
// equal endpoints are legitimate and exercise the Point-sentinel path.
func randomSegment(tp *fuzz.TypeProvider) (segment.String, error) {
	coords := make(geom.Sequence, 2)
	for i := range coords {
		xi, err := tp.GetByte()
		if err != nil {
			return nil, err
		}
		yi, err := tp.GetByte()
		if err != nil {
			return nil, err
		}
		coords[i] = geom.XY(float64(xi%17)/4, float64(yi%17)/4)
	}
	return segment.String(coords), nil
}
