package game

import "fmt"

// OnChangeFunc reacts to a committed tag change. It may mutate other
// entities; the write path re-enters synchronously.
type OnChangeFunc func(e *Entity, t GameTag, oldValue, newValue int)

// Trigger is a reactive handler attached to a game, zone, or entity, invoked
// after a tag's stored value changes.
type Trigger struct {
	// EffectID names the handler for hashing, see Enchant.EffectID.
	EffectID string
	SourceID int
	// Owner is the entity the trigger is attached to, nil for game- and
	// zone-level triggers.
	Owner *Entity
	Turn  int

	OnChange OnChangeFunc
}

// Clone copies the trigger for stamping, rebinding it to the given owner.
func (tr *Trigger) Clone(owner *Entity) *Trigger {
	cp := *tr
	cp.Owner = owner
	return &cp
}

// Hash builds a deterministic content string, excluding owner identity.
func (tr *Trigger) Hash() string {
	return fmt.Sprintf("[TRG:%s;%d;%d]", tr.EffectID, tr.SourceID, tr.Turn)
}
