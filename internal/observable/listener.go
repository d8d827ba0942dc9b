package observable

// Listener receives notifications from an Observable. Listeners are only
// stored in the current design; nothing invokes OnEvent yet.
type Listener interface {
	OnEvent(sourceID, label string, payload Payload)
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc func(sourceID, label string, payload Payload)

func (f ListenerFunc) OnEvent(sourceID, label string, payload Payload) { f(sourceID, label, payload) }
