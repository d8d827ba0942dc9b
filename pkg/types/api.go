package types

// EntityResponse is returned by GET /entity.
type EntityResponse struct {
	// Entity identifier shared by all handles.
	ID string `json:"id"`
	// Current name.
	// example: newZ3Name
	Name string `json:"name"`
	// Registered listeners.
	ObserverCount int `json:"observer_count"`
	// Pending events, read under the queue lock after the name was read.
	EventQueueLength int `json:"event_queue_length"`
	// Live shared handles at the time of the request.
	RefCount int `json:"ref_count"`
	// Debug rendering, e.g. Observable { name: "z", observer_count: 0, event_queue_length: 0 }
	Debug string `json:"debug"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: lock poisoned: 5c1e...
	Error string `json:"error"`
	// HTTP status code.
	// example: 503
	Code int `json:"code"`
}
