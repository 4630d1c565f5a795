package connections

// UpdateSynapsePermanence writes clamp(value, 0, 1) into y's permanence.
// It never inserts or removes edges, regardless of whether the new
// value crosses any connection threshold.
func (c *Connections) UpdateSynapsePermanence(y SynapseID, value float32) error {
	if !c.synapseInRange(y) || !c.synapses[y].live {
		return preconditionf("UpdateSynapsePermanence", "synapse %d is not live", y)
	}
	v := clamp01(value)
	c.synapses[y].permanence = v
	c.notifyUpdateSynapsePermanence(y, v)
	return nil
}

// AdaptSegment applies the HTM learning rule to every synapse on
// segment: synapses whose presynaptic cell is in input are
// strengthened by increment, the rest are weakened by decrement, both
// clamped to [0,1]. One update notification fires per synapse touched,
// in the segment's synapse order.
func (c *Connections) AdaptSegment(segment SegmentID, input []CellID, increment, decrement float32) error {
	if !c.segmentInRange(segment) || !c.segments[segment].live {
		return preconditionf("AdaptSegment", "segment %d is not live", segment)
	}

	active := make(map[CellID]struct{}, len(input))
	for _, p := range input {
		active[p] = struct{}{}
	}

	for _, y := range c.segments[segment].synapses {
		rec := &c.synapses[y]
		var v float32
		if _, ok := active[rec.presynaptic]; ok {
			v = clamp01(rec.permanence + increment)
		} else {
			v = clamp01(rec.permanence - decrement)
		}
		rec.permanence = v
		c.notifyUpdateSynapsePermanence(y, v)
	}
	return nil
}
