package connections

// CreateSynapse allocates a new synapse on segment from presynapticCell
// with the given permanence (clamped to [0,1]), appends it to the
// segment's synapse list and inserts it into presynapticCell's reverse
// bucket.
//
// A segment may hold at most one synapse per distinct presynaptic cell:
// creating a second one is a precondition violation.
func (c *Connections) CreateSynapse(segment SegmentID, presynapticCell CellID, permanence float32) (SynapseID, error) {
	if !c.segmentInRange(segment) || !c.segments[segment].live {
		return 0, preconditionf("CreateSynapse", "segment %d is not live", segment)
	}
	if !c.cellInRange(presynapticCell) {
		return 0, preconditionf("CreateSynapse", "presynaptic cell %d out of range [0,%d)", presynapticCell, c.numCells)
	}

	seg := &c.segments[segment]
	for _, existing := range seg.synapses {
		if c.synapses[existing].presynaptic == presynapticCell {
			return 0, preconditionf("CreateSynapse", "segment %d already has a synapse from presynaptic cell %d", segment, presynapticCell)
		}
	}

	y := c.allocSynapse()
	c.synapses[y] = synapseRecord{
		segment:     segment,
		presynaptic: presynapticCell,
		permanence:  clamp01(permanence),
		live:        true,
	}
	seg.synapses = append(seg.synapses, y)
	c.synapsesForSource[presynapticCell] = append(c.synapsesForSource[presynapticCell], y)

	c.notifyCreateSynapse(y)
	return y, nil
}

// DestroySynapse removes y from its segment's synapse list and from
// its source cell's reverse bucket, and releases its identifier.
//
// Calling it again on a synapse whose owning segment has already been
// destroyed is an idempotent no-op; calling it on a live segment's
// already-destroyed synapse, or on an id that never existed, is a
// precondition violation.
func (c *Connections) DestroySynapse(y SynapseID) error {
	if !c.synapseInRange(y) {
		return preconditionf("DestroySynapse", "synapse %d never existed", y)
	}
	rec := &c.synapses[y]
	if !rec.live {
		if !c.segments[rec.segment].live {
			return nil
		}
		return preconditionf("DestroySynapse", "synapse %d already destroyed", y)
	}

	c.removeFromSegment(rec.segment, y)
	c.destroySynapseUnchecked(y)
	return nil
}

// destroySynapseUnchecked tombstones y, removes it from the reverse
// index and notifies, without touching its segment's synapse list.
// Used by DestroySegment and by the public DestroySynapse, each after
// it has removed y from the segment list itself.
func (c *Connections) destroySynapseUnchecked(y SynapseID) {
	rec := &c.synapses[y]
	if !rec.live {
		return
	}

	bucket := c.synapsesForSource[rec.presynaptic]
	for i, id := range bucket {
		if id == y {
			c.synapsesForSource[rec.presynaptic] = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}

	rec.live = false
	c.freeSynapse(y)

	c.notifyDestroySynapse(y)
}

func (c *Connections) removeFromSegment(s SegmentID, y SynapseID) {
	syns := c.segments[s].synapses
	for i, id := range syns {
		if id == y {
			c.segments[s].synapses = append(syns[:i], syns[i+1:]...)
			return
		}
	}
}

// SegmentForSynapse returns the segment that owns y. y must be live.
func (c *Connections) SegmentForSynapse(y SynapseID) (SegmentID, error) {
	if !c.synapseInRange(y) || !c.synapses[y].live {
		return 0, preconditionf("SegmentForSynapse", "synapse %d is not live", y)
	}
	return c.synapses[y].segment, nil
}

// DataForSynapse returns the presynaptic cell and permanence of y.
// y must be live.
func (c *Connections) DataForSynapse(y SynapseID) (SynapseData, error) {
	if !c.synapseInRange(y) || !c.synapses[y].live {
		return SynapseData{}, preconditionf("DataForSynapse", "synapse %d is not live", y)
	}
	rec := c.synapses[y]
	return SynapseData{PresynapticCell: rec.presynaptic, Permanence: rec.permanence}, nil
}

// synapsesForSourceCell returns the reverse bucket for p. Order within
// the bucket is unobservable to callers beyond a single read.
func (c *Connections) synapsesForSourceCell(p CellID) []SynapseID {
	return c.synapsesForSource[p]
}
