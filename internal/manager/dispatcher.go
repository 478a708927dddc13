package manager

// Dispatcher is a fire-and-forget event surface over a StateManager for
// callers that do not care about the resulting transaction.
type Dispatcher struct {
	manager *StateManager
}

// NewDispatcher wraps a StateManager.
func NewDispatcher(m *StateManager) *Dispatcher {
	return &Dispatcher{manager: m}
}

// Dispatch sends an event without a payload.
func (d *Dispatcher) Dispatch(eventID string) {
	d.DispatchEvent(NewEvent(eventID))
}

// DispatchPayload sends an event with a payload.
func (d *Dispatcher) DispatchPayload(eventID string, payload any) {
	d.DispatchEvent(NewPayloadEvent(eventID, payload))
}

// DispatchEvent sends an event. Errors surface through the manager's logger
// only; fire-and-forget callers have nowhere to put them.
func (d *Dispatcher) DispatchEvent(ev Event) {
	if _, err := d.manager.HandleEvent(ev); err != nil {
		d.manager.log.Error(err, "event dispatch failed")
	}
}
