package connections

import (
	"encoding/json"
	"fmt"
	"io"
)

// snapshotVersion tags the save format so a future loader can detect an
// incompatible snapshot and refuse to load it rather than misinterpret it.
const snapshotVersion = 1

type snapshotSynapse struct {
	PresynapticCell CellID  `json:"presynaptic_cell"`
	Permanence      float32 `json:"permanence"`
}

type snapshotSegment struct {
	Cell     CellID            `json:"cell"`
	Synapses []snapshotSynapse `json:"synapses"`
}

type snapshot struct {
	Version  int               `json:"version"`
	NumCells int               `json:"num_cells"`
	Segments []snapshotSegment `json:"segments"`
}

// Save serializes the full observable state of c to sink: the number
// of cells, and for each live segment (in cell order, then per-cell
// creation order) its owning cell and its synapses in order. Whether
// destroyed-identifier free-lists are preserved is implementation-
// defined (they are not) so long as Equal(Load(Save(c))) holds.
func (c *Connections) Save(sink io.Writer) error {
	snap := snapshot{Version: snapshotVersion, NumCells: c.numCells}
	for cell := 0; cell < c.numCells; cell++ {
		for _, s := range c.segmentsForCell[cell] {
			rec := c.segments[s]
			seg := snapshotSegment{Cell: rec.cell}
			for _, y := range rec.synapses {
				syn := c.synapses[y]
				seg.Synapses = append(seg.Synapses, snapshotSynapse{
					PresynapticCell: syn.presynaptic,
					Permanence:      syn.permanence,
				})
			}
			snap.Segments = append(snap.Segments, seg)
		}
	}

	enc := json.NewEncoder(sink)
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("connections: save: %w", err)
	}
	return nil
}

// Load reconstructs a Connections from a stream produced by Save. It
// builds into a scratch instance and only returns it on success, so a
// malformed or truncated snapshot never corrupts a caller's existing
// store — there is simply nothing to swap into on error.
func Load(source io.Reader) (*Connections, error) {
	var snap snapshot
	if err := json.NewDecoder(source).Decode(&snap); err != nil {
		return nil, fmt.Errorf("connections: load: malformed snapshot: %w", err)
	}
	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("connections: load: unsupported snapshot version %d", snap.Version)
	}

	c := New(snap.NumCells)
	for _, seg := range snap.Segments {
		s, err := c.CreateSegment(seg.Cell)
		if err != nil {
			return nil, fmt.Errorf("connections: load: segment on cell %d: %w", seg.Cell, err)
		}
		for _, syn := range seg.Synapses {
			if _, err := c.CreateSynapse(s, syn.PresynapticCell, syn.Permanence); err != nil {
				return nil, fmt.Errorf("connections: load: synapse on segment %d: %w", s, err)
			}
		}
	}
	return c, nil
}
