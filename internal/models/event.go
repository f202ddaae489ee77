package models

// Event is a one-shot trigger fired when crisis awareness reaches TriggerThreshold
type Event struct {
	Name             string
	Description      string
	TriggerThreshold float64
	Effects          map[NationAttribute]float64
}

// Triggered reports whether the event fires at the given crisis awareness
func (e *Event) Triggered(crisisAwareness float64) bool {
	return crisisAwareness >= e.TriggerThreshold
}

// AttributeChange records one attribute before and after an event effect
type AttributeChange struct {
	Attribute NationAttribute
	Before    float64
	After     float64
}

// Apply adds every effect delta to the nation and returns what changed
func (e *Event) Apply(n *Nation) []AttributeChange {
	var changes []AttributeChange
	// Iterate in enum order so clamping is deterministic.
	for _, attr := range AllNationAttributes() {
		delta, ok := e.Effects[attr]
		if !ok {
			continue
		}
		before := n.Attribute(attr)
		n.AddToAttribute(attr, delta)
		changes = append(changes, AttributeChange{Attribute: attr, Before: before, After: n.Attribute(attr)})
	}
	return changes
}
