package connections

// ComputeActivity tallies, for every live segment, how many of its
// synapses have a presynaptic cell in input (potentialOut) and how
// many of those also meet threshold (connectedOut). Both buffers must
// be at least SegmentFlatListLength() long and zero-initialized by the
// caller; this is the hot inference path and intentionally writes by
// index rather than allocating.
//
// Complexity is linear in the number of reverse-index entries touched
// by input, not in the number of segments — the reverse index exists
// precisely so this call is output-sensitive.
func (c *Connections) ComputeActivity(connectedOut, potentialOut []int, input []CellID, threshold float32) error {
	flat := c.SegmentFlatListLength()
	if len(connectedOut) < flat {
		return preconditionf("ComputeActivity", "connectedOut length %d shorter than flat-list length %d", len(connectedOut), flat)
	}
	if len(potentialOut) < flat {
		return preconditionf("ComputeActivity", "potentialOut length %d shorter than flat-list length %d", len(potentialOut), flat)
	}

	for _, p := range input {
		if !c.cellInRange(p) {
			return preconditionf("ComputeActivity", "input cell %d out of range [0,%d)", p, c.numCells)
		}
		for _, y := range c.synapsesForSourceCell(p) {
			rec := c.synapses[y]
			s := int(rec.segment)
			potentialOut[s]++
			if rec.permanence >= threshold {
				connectedOut[s]++
			}
		}
	}
	return nil
}
