package export

import (
	"os"

	"github.com/gocarina/gocsv"
	"go.uber.org/multierr"

	"github.com/Faultbox/terrainwave/internal/engine/terrain"
)

// HeightRecord is one vertex of the heights dump.
type HeightRecord struct {
	I         int     `csv:"i"`
	J         int     `csv:"j"`
	X         float32 `csv:"x"`
	Y         float32 `csv:"y"`
	Z         float32 `csv:"z"`
	Amplitude float64 `csv:"amplitude"`
}

// HeightRecords lists every vertex of m in row-major order with the
// amplitude bound of its row.
func HeightRecords(m *terrain.Mesh) []HeightRecord {
	g := m.Grid
	profile := terrain.Profile(g)

	records := make([]HeightRecord, 0, len(m.Vertices))
	for j := 0; j < g.Rows; j++ {
		for i := 0; i < g.Cols; i++ {
			p := m.Vertex(i, j).Position
			records = append(records, HeightRecord{
				I:         i,
				J:         j,
				X:         p[0],
				Y:         p[1],
				Z:         p[2],
				Amplitude: profile[j],
			})
		}
	}
	return records
}

// WriteHeights writes the height field of m as CSV with a header row.
func WriteHeights(path string, m *terrain.Mesh) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	records := HeightRecords(m)
	return gocsv.Marshal(&records, f)
}
