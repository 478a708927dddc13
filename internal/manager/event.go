package manager

import "fmt"

// Event identifies something that happened in the host, optionally carrying
// a payload. Events are transient: created per dispatch and matched against
// transitions by id only.
type Event struct {
	ID      string
	Payload any
}

// NewEvent constructs an event without a payload.
func NewEvent(id string) Event {
	return Event{ID: id}
}

// NewPayloadEvent constructs an event carrying an opaque payload.
func NewPayloadEvent(id string, payload any) Event {
	return Event{ID: id, Payload: payload}
}

// NewKeyFrameEvent constructs an event whose payload is a keyframe track
// fraction in [0,1]. When the resolved transition targets a keyframe
// variant, the fraction is forwarded into it.
func NewKeyFrameEvent(id string, fraction float64) Event {
	return Event{ID: id, Payload: fraction}
}

// Fraction returns the payload as a keyframe fraction when it is one.
func (e Event) Fraction() (float64, bool) {
	fraction, ok := e.Payload.(float64)
	return fraction, ok
}

func (e Event) String() string {
	if e.Payload == nil {
		return fmt.Sprintf("Event{id=%s}", e.ID)
	}
	return fmt.Sprintf("Event{id=%s payload=%v}", e.ID, e.Payload)
}
