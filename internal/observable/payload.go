package observable

import "fmt"

// Payload is a type-erased event value. Use PayloadAs to get the concrete
// value back out.
type Payload struct {
	v any
}

func NewPayload(v any) Payload { return Payload{v: v} }

// Value returns the raw stored value.
func (p Payload) Value() any { return p.v }

// IsZero reports whether the payload carries no value.
func (p Payload) IsZero() bool { return p.v == nil }

// TypeName is the Go type of the stored value, "<nil>" when empty.
func (p Payload) TypeName() string { return fmt.Sprintf("%T", p.v) }

// PayloadAs downcasts p to T. ok is false when p is empty or holds another type.
func PayloadAs[T any](p Payload) (T, bool) {
	v, ok := p.v.(T)
	return v, ok
}
