package game

import "fmt"

// ApplyFunc adjusts the running value of a tag read. It must be free of side
// effects; ordering between enchants comes only from list position.
type ApplyFunc func(e *Entity, t GameTag, v int) int

// Enchant is a temporal effect attached to a game, zone, or entity. It never
// changes stored values: it reshapes the value an indexed read returns.
type Enchant struct {
	// EffectID names the effect for hashing, normally the id of the card
	// whose power created it. Two enchants with the same EffectID are
	// interchangeable for state-equality purposes.
	EffectID string
	// SourceID is the entity that created the enchant.
	SourceID int
	// Owner is the entity the enchant is attached to, nil for game- and
	// zone-level enchants.
	Owner *Entity
	// Turn the enchant was created on. Aging and expiry are handled by the
	// cleanup collaborator, which also reads RemoveTriggers.
	Turn           int
	RemoveTriggers bool

	Apply ApplyFunc
}

// Clone copies the enchant for stamping, rebinding it to the given owner.
// Apply is shared: it is pure by contract.
func (en *Enchant) Clone(owner *Entity) *Enchant {
	cp := *en
	cp.Owner = owner
	return &cp
}

// Hash builds a deterministic content string. Owner identity is deliberately
// excluded: hashes compare content, never object identity.
func (en *Enchant) Hash() string {
	return fmt.Sprintf("[ENC:%s;%d;%d;%t]", en.EffectID, en.SourceID, en.Turn, en.RemoveTriggers)
}
