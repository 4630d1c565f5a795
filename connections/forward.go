package connections

// CreateSegment allocates a new segment on cell and appends it to that
// cell's segment list in creation order.
func (c *Connections) CreateSegment(cell CellID) (SegmentID, error) {
	if !c.cellInRange(cell) {
		return 0, preconditionf("CreateSegment", "cell %d out of range [0,%d)", cell, c.numCells)
	}

	s := c.allocSegment()
	c.segments[s] = segmentRecord{cell: cell, live: true}
	c.segmentsForCell[cell] = append(c.segmentsForCell[cell], s)

	c.notifyCreateSegment(s)
	return s, nil
}

// DestroySegment destroys s and, as a side effect, every remaining live
// synapse on it. Destroying an already-destroyed segment is a
// precondition violation.
func (c *Connections) DestroySegment(s SegmentID) error {
	if !c.segmentInRange(s) {
		return preconditionf("DestroySegment", "segment %d never existed", s)
	}
	if !c.segments[s].live {
		return preconditionf("DestroySegment", "segment %d already destroyed", s)
	}

	// Take each synapse off the segment's list before destroying it, so
	// its destroy notification sees it gone from both indices.
	for len(c.segments[s].synapses) > 0 {
		y := c.segments[s].synapses[0]
		c.segments[s].synapses = c.segments[s].synapses[1:]
		c.destroySynapseUnchecked(y)
	}
	rec := &c.segments[s]
	rec.synapses = nil

	cell := rec.cell
	siblings := c.segmentsForCell[cell]
	for i, sid := range siblings {
		if sid == s {
			c.segmentsForCell[cell] = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}

	rec.live = false
	c.freeSegment(s)

	c.notifyDestroySegment(s)
	return nil
}

// CellForSegment returns the cell that owns s. s must be live.
func (c *Connections) CellForSegment(s SegmentID) (CellID, error) {
	if !c.segmentInRange(s) || !c.segments[s].live {
		return 0, preconditionf("CellForSegment", "segment %d is not live", s)
	}
	return c.segments[s].cell, nil
}

// SegmentsForCell returns the live segments of cell, in creation order.
// The returned slice must not be mutated by the caller.
func (c *Connections) SegmentsForCell(cell CellID) ([]SegmentID, error) {
	if !c.cellInRange(cell) {
		return nil, preconditionf("SegmentsForCell", "cell %d out of range [0,%d)", cell, c.numCells)
	}
	return c.segmentsForCell[cell], nil
}

// NumSegments returns the live segment count across the whole store.
func (c *Connections) NumSegments() int {
	n := 0
	for _, rec := range c.segments {
		if rec.live {
			n++
		}
	}
	return n
}

// SynapsesForSegment returns the live synapses of s, in creation order.
// The returned slice must not be mutated by the caller.
func (c *Connections) SynapsesForSegment(s SegmentID) ([]SynapseID, error) {
	if !c.segmentInRange(s) || !c.segments[s].live {
		return nil, preconditionf("SynapsesForSegment", "segment %d is not live", s)
	}
	return c.segments[s].synapses, nil
}

// NumSynapses returns the live synapse count globally.
func (c *Connections) NumSynapses() int {
	n := 0
	for _, rec := range c.synapses {
		if rec.live {
			n++
		}
	}
	return n
}

// NumSynapsesOnSegment returns the live synapse count on s. s must be live.
func (c *Connections) NumSynapsesOnSegment(s SegmentID) (int, error) {
	syns, err := c.SynapsesForSegment(s)
	if err != nil {
		return 0, err
	}
	return len(syns), nil
}

// MapSegmentsToCells fills out[i] with the owning cell of segments[i]
// for every i. Every segment must be live; a violation is a fatal
// precondition error and out is left partially written.
func (c *Connections) MapSegmentsToCells(segments []SegmentID, out []CellID) error {
	if len(out) < len(segments) {
		return preconditionf("MapSegmentsToCells", "output buffer length %d shorter than input length %d", len(out), len(segments))
	}
	for i, s := range segments {
		cell, err := c.CellForSegment(s)
		if err != nil {
			return preconditionf("MapSegmentsToCells", "segments[%d]=%d: %v", i, s, err)
		}
		out[i] = cell
	}
	return nil
}
