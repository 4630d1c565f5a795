package connections

// SubscriberToken is the opaque handle returned by Subscribe.
type SubscriberToken int

// EventHandler observes structural and permanence changes on a
// Connections store. The store takes ownership of a handler on
// Subscribe and releases it, calling Destroy, on Unsubscribe.
type EventHandler interface {
	OnCreateSegment(segment SegmentID)
	OnDestroySegment(segment SegmentID)
	OnCreateSynapse(synapse SynapseID)
	OnDestroySynapse(synapse SynapseID)
	OnUpdateSynapsePermanence(synapse SynapseID, permanence float32)
	Destroy()
}

// NopEventHandler is an embeddable EventHandler with no-op hooks, for
// subscribers that only care about one or two events.
type NopEventHandler struct{}

func (NopEventHandler) OnCreateSegment(SegmentID)                    {}
func (NopEventHandler) OnDestroySegment(SegmentID)                   {}
func (NopEventHandler) OnCreateSynapse(SynapseID)                    {}
func (NopEventHandler) OnDestroySynapse(SynapseID)                   {}
func (NopEventHandler) OnUpdateSynapsePermanence(SynapseID, float32) {}
func (NopEventHandler) Destroy()                                     {}

type subscriberEntry struct {
	token   SubscriberToken
	handler EventHandler
}

// Subscribe registers handler and returns an opaque token. Handlers
// fire in subscription order. Notifications fire after the structural
// change they describe has been applied to both forward and reverse
// indices, so a handler always observes post-mutation state —
// including for mutations issued reentrantly from inside another
// handler's callback.
func (c *Connections) Subscribe(handler EventHandler) SubscriberToken {
	token := SubscriberToken(c.nextToken)
	c.nextToken++
	c.subscribers = append(c.subscribers, subscriberEntry{token: token, handler: handler})
	return token
}

// Unsubscribe removes the handler registered under token and destroys
// it. Subsequent events do not reach it. Unsubscribing an unknown
// token is a no-op.
func (c *Connections) Unsubscribe(token SubscriberToken) {
	for i, entry := range c.subscribers {
		if entry.token == token {
			c.subscribers = append(c.subscribers[:i], c.subscribers[i+1:]...)
			entry.handler.Destroy()
			return
		}
	}
}

func (c *Connections) notifyCreateSegment(s SegmentID) {
	for _, entry := range c.subscribers {
		entry.handler.OnCreateSegment(s)
	}
}

func (c *Connections) notifyDestroySegment(s SegmentID) {
	for _, entry := range c.subscribers {
		entry.handler.OnDestroySegment(s)
	}
}

func (c *Connections) notifyCreateSynapse(y SynapseID) {
	for _, entry := range c.subscribers {
		entry.handler.OnCreateSynapse(y)
	}
}

func (c *Connections) notifyDestroySynapse(y SynapseID) {
	for _, entry := range c.subscribers {
		entry.handler.OnDestroySynapse(y)
	}
}

func (c *Connections) notifyUpdateSynapsePermanence(y SynapseID, permanence float32) {
	for _, entry := range c.subscribers {
		entry.handler.OnUpdateSynapsePermanence(y, permanence)
	}
}
