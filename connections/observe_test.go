package connections

import "testing"

type flagHandler struct {
	createdSegment   bool
	destroyedSegment bool
	createdSynapse   bool
	destroyedSynapse bool
	updatedSynapse   bool
	destroyed        *bool
}

func (h *flagHandler) OnCreateSegment(SegmentID)                    { h.createdSegment = true }
func (h *flagHandler) OnDestroySegment(SegmentID)                   { h.destroyedSegment = true }
func (h *flagHandler) OnCreateSynapse(SynapseID)                    { h.createdSynapse = true }
func (h *flagHandler) OnDestroySynapse(SynapseID)                   { h.destroyedSynapse = true }
func (h *flagHandler) OnUpdateSynapsePermanence(SynapseID, float32) { h.updatedSynapse = true }
func (h *flagHandler) Destroy()                                     { *h.destroyed = true }

// TestEventHandlerLifecycle checks subscriber notification order and handler teardown on unsubscribe.
func TestEventHandlerLifecycle(t *testing.T) {
	c := New(4)
	destroyed := false
	h := &flagHandler{destroyed: &destroyed}
	token := c.Subscribe(h)

	s, err := c.CreateSegment(0)
	if err != nil {
		t.Fatalf("CreateSegment: %v", err)
	}
	if !h.createdSegment {
		t.Fatal("OnCreateSegment did not fire")
	}

	y, err := c.CreateSynapse(s, 1, 0.5)
	if err != nil {
		t.Fatalf("CreateSynapse: %v", err)
	}
	if !h.createdSynapse {
		t.Fatal("OnCreateSynapse did not fire")
	}

	if err := c.UpdateSynapsePermanence(y, 0.9); err != nil {
		t.Fatalf("UpdateSynapsePermanence: %v", err)
	}
	if !h.updatedSynapse {
		t.Fatal("OnUpdateSynapsePermanence did not fire")
	}

	if err := c.DestroySynapse(y); err != nil {
		t.Fatalf("DestroySynapse: %v", err)
	}
	if !h.destroyedSynapse {
		t.Fatal("OnDestroySynapse did not fire")
	}

	if err := c.DestroySegment(s); err != nil {
		t.Fatalf("DestroySegment: %v", err)
	}
	if !h.destroyedSegment {
		t.Fatal("OnDestroySegment did not fire")
	}

	if destroyed {
		t.Fatal("handler destroyed before Unsubscribe")
	}
	c.Unsubscribe(token)
	if !destroyed {
		t.Fatal("Unsubscribe did not destroy the handler")
	}
}

func TestUnsubscribeStopsFurtherNotifications(t *testing.T) {
	c := New(4)
	destroyed := false
	h := &flagHandler{destroyed: &destroyed}
	token := c.Subscribe(h)
	c.Unsubscribe(token)

	h.createdSegment = false
	if _, err := c.CreateSegment(0); err != nil {
		t.Fatalf("CreateSegment: %v", err)
	}
	if h.createdSegment {
		t.Fatal("unsubscribed handler still received notifications")
	}
}

func TestMultipleSubscribersFireInSubscriptionOrder(t *testing.T) {
	c := New(4)
	var order []int

	mk := func(id int) *orderHandler {
		return &orderHandler{id: id, order: &order}
	}
	h1, h2 := mk(1), mk(2)
	c.Subscribe(h1)
	c.Subscribe(h2)

	if _, err := c.CreateSegment(0); err != nil {
		t.Fatalf("CreateSegment: %v", err)
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("notification order = %v, want [1 2]", order)
	}
}

type orderHandler struct {
	NopEventHandler
	id    int
	order *[]int
}

func (h *orderHandler) OnCreateSegment(SegmentID) {
	*h.order = append(*h.order, h.id)
}
