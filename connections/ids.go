package connections

// allocSegment returns a segment id, preferring the free-list over
// bumping the high-water mark. The flat-list length
// (SegmentFlatListLength) is the high-water mark, not the live count,
// so output buffers sized to it stay valid across deletions.
func (c *Connections) allocSegment() SegmentID {
	n := len(c.freeSegments)
	if n > 0 {
		id := c.freeSegments[n-1]
		c.freeSegments = c.freeSegments[:n-1]
		return id
	}
	id := SegmentID(len(c.segments))
	c.segments = append(c.segments, segmentRecord{})
	return id
}

func (c *Connections) freeSegment(id SegmentID) {
	c.freeSegments = append(c.freeSegments, id)
}

func (c *Connections) allocSynapse() SynapseID {
	n := len(c.freeSynapses)
	if n > 0 {
		id := c.freeSynapses[n-1]
		c.freeSynapses = c.freeSynapses[:n-1]
		return id
	}
	id := SynapseID(len(c.synapses))
	c.synapses = append(c.synapses, synapseRecord{})
	return id
}

func (c *Connections) freeSynapse(id SynapseID) {
	c.freeSynapses = append(c.freeSynapses, id)
}

// SegmentFlatListLength is one past the largest segment id ever issued;
// the valid index range for activity-output buffers.
func (c *Connections) SegmentFlatListLength() int {
	return len(c.segments)
}

func (c *Connections) segmentInRange(s SegmentID) bool {
	return s >= 0 && int(s) < len(c.segments)
}

func (c *Connections) synapseInRange(y SynapseID) bool {
	return y >= 0 && int(y) < len(c.synapses)
}

func (c *Connections) cellInRange(cell CellID) bool {
	return cell >= 0 && int(cell) < c.numCells
}
