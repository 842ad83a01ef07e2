package display

// Trigger is the start control's armed state. It is UI-owned: mutate and
// read it only from the Context.
type Trigger struct {
	enabled bool
}

// NewTrigger returns an armed trigger.
func NewTrigger() *Trigger {
	return &Trigger{enabled: true}
}

// Enable arms the trigger.
func (t *Trigger) Enable() {
	t.enabled = true
}

// Disable disarms the trigger for the duration of a matrix.
func (t *Trigger) Disable() {
	t.enabled = false
}

// Enabled reports the armed state.
func (t *Trigger) Enabled() bool {
	return t.enabled
}
