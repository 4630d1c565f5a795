package connections

import "testing"

// TestDestroysDoNotInvalidateOtherHandles destroys synapses on one segment and two neighbouring segments, and checks that the remaining handles stay valid.
func TestDestroysDoNotInvalidateOtherHandles(t *testing.T) {
	c := New(1024)

	g, err := c.CreateSegment(13)
	if err != nil {
		t.Fatalf("CreateSegment(13): %v", err)
	}

	var ys [5]SynapseID
	for i, cell := range []CellID{201, 202, 203, 204, 205} {
		y, err := c.CreateSynapse(g, cell, 0.85)
		if err != nil {
			t.Fatalf("CreateSynapse(%d): %v", cell, err)
		}
		ys[i] = y
	}
	y1, y3, y5 := ys[0], ys[2], ys[4]

	if err := c.DestroySynapse(y1); err != nil {
		t.Fatalf("DestroySynapse(y1): %v", err)
	}
	data, err := c.DataForSynapse(y3)
	if err != nil {
		t.Fatalf("DataForSynapse(y3): %v", err)
	}
	if data.PresynapticCell != 203 {
		t.Fatalf("y3 presynaptic cell = %d, want 203", data.PresynapticCell)
	}

	if err := c.DestroySynapse(y5); err != nil {
		t.Fatalf("DestroySynapse(y5): %v", err)
	}
	data, err = c.DataForSynapse(y3)
	if err != nil {
		t.Fatalf("DataForSynapse(y3) after second destroy: %v", err)
	}
	if data.PresynapticCell != 203 {
		t.Fatalf("y3 presynaptic cell = %d, want 203", data.PresynapticCell)
	}

	other1, _ := c.CreateSegment(11)
	other2, _ := c.CreateSegment(15)
	if _, err := c.CreateSynapse(other1, 300, 0.5); err != nil {
		t.Fatalf("CreateSynapse on cell 11 segment: %v", err)
	}
	if _, err := c.CreateSynapse(other2, 301, 0.5); err != nil {
		t.Fatalf("CreateSynapse on cell 15 segment: %v", err)
	}
	if err := c.DestroySegment(other1); err != nil {
		t.Fatalf("DestroySegment(cell 11 segment): %v", err)
	}
	if err := c.DestroySegment(other2); err != nil {
		t.Fatalf("DestroySegment(cell 15 segment): %v", err)
	}

	syns, err := c.SynapsesForSegment(g)
	if err != nil {
		t.Fatalf("SynapsesForSegment(g): %v", err)
	}
	if len(syns) != 3 {
		t.Fatalf("SynapsesForSegment(g) length = %d, want 3", len(syns))
	}

	data, err = c.DataForSynapse(y3)
	if err != nil {
		t.Fatalf("DataForSynapse(y3) final: %v", err)
	}
	if data.PresynapticCell != 203 {
		t.Fatalf("y3 presynaptic cell = %d, want 203", data.PresynapticCell)
	}
}

func TestCreateSynapseRejectsDuplicatePresynapticCell(t *testing.T) {
	c := New(10)
	s, _ := c.CreateSegment(0)
	if _, err := c.CreateSynapse(s, 5, 0.5); err != nil {
		t.Fatalf("first CreateSynapse: %v", err)
	}
	if _, err := c.CreateSynapse(s, 5, 0.6); err == nil {
		t.Fatal("expected precondition error for duplicate presynaptic cell on same segment")
	}
}

func TestCreateSynapseRejectsOutOfRangePresynapticCell(t *testing.T) {
	c := New(10)
	s, _ := c.CreateSegment(0)
	if _, err := c.CreateSynapse(s, 10, 0.5); err == nil {
		t.Fatal("expected precondition error for out-of-range presynaptic cell")
	}
}

func TestDestroySynapseIdempotentWhenSegmentAlreadyDestroyed(t *testing.T) {
	c := New(10)
	s, _ := c.CreateSegment(0)
	y, _ := c.CreateSynapse(s, 1, 0.5)

	if err := c.DestroySegment(s); err != nil {
		t.Fatalf("DestroySegment: %v", err)
	}
	if err := c.DestroySynapse(y); err != nil {
		t.Fatalf("DestroySynapse on a synapse whose segment is gone should be a no-op: %v", err)
	}
}

func TestDestroySynapseOnLiveSegmentTwiceIsPreconditionViolation(t *testing.T) {
	c := New(10)
	s, _ := c.CreateSegment(0)
	y, _ := c.CreateSynapse(s, 1, 0.5)

	if err := c.DestroySynapse(y); err != nil {
		t.Fatalf("first destroy: %v", err)
	}
	if err := c.DestroySynapse(y); err == nil {
		t.Fatal("expected precondition error destroying an already-destroyed synapse on a live segment")
	}
}

func TestReverseIndexConsistentAcrossCreatesAndDestroys(t *testing.T) {
	c := New(10)
	s, _ := c.CreateSegment(0)
	y, _ := c.CreateSynapse(s, 7, 0.9)

	found := false
	for _, id := range c.synapsesForSourceCell(7) {
		if id == y {
			found = true
		}
	}
	if !found {
		t.Fatal("synapse missing from reverse bucket after create")
	}

	if err := c.DestroySynapse(y); err != nil {
		t.Fatalf("DestroySynapse: %v", err)
	}
	for _, id := range c.synapsesForSourceCell(7) {
		if id == y {
			t.Fatal("synapse still present in reverse bucket after destroy")
		}
	}
}
