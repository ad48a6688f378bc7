package game

import (
	"fmt"
	"strings"
)

// Entity is one in-game object: a minion, spell, weapon, hero, or hero
// power. The variants share this one struct and are discriminated by kind;
// the factory is the only constructor.
//
// An entity's resolved value for any tag is recomputable purely from its
// native store plus the enchant lists at game, zone, and entity level. No
// resolved value is ever cached.
type Entity struct {
	id          int
	orderOfPlay int
	kind        CardKind
	controller  PlayerID

	game *Game
	zone Zone
	card *Card

	tags     *TagStore
	enchants []*Enchant
	triggers []*Trigger

	// The two alternative playables of a choose-one card, nil otherwise.
	chooseOnePlayables [2]*Entity
}

// ID returns the entity's game-unique id.
func (e *Entity) ID() int { return e.id }

// OrderOfPlay returns the monotonic rank assigned when the entity was
// played. It changes only through MarkPlayed on the game or through Stamp.
func (e *Entity) OrderOfPlay() int { return e.orderOfPlay }

// Kind returns the variant discriminator.
func (e *Entity) Kind() CardKind { return e.kind }

// Card returns the immutable template the entity was derived from.
func (e *Entity) Card() *Card { return e.card }

// Game returns the owning game state.
func (e *Entity) Game() *Game { return e.game }

// Controller returns the owning player.
func (e *Entity) Controller() PlayerID { return e.controller }

// SetController reassigns ownership, e.g. when a card is stolen.
func (e *Entity) SetController(p PlayerID) {
	e.controller = p
	e.tags.Set(TagController, int(p))
}

// Zone returns the entity's current container, nil when in no zone.
func (e *Entity) Zone() Zone { return e.zone }

// Tags exposes the native store. External callers use it only for reads and
// for deliberate trigger-free writes such as bulk initialization.
func (e *Entity) Tags() *TagStore { return e.tags }

// ChooseOnePlayables returns the two alternative sub-entities of a
// choose-one card. Both slots are nil for ordinary cards.
func (e *Entity) ChooseOnePlayables() [2]*Entity { return e.chooseOnePlayables }

// Get returns the resolved value of a tag: the native value folded through
// every enchant at game level, then zone level, then entity level, each tier
// in insertion order. Global effects apply first so local ones override.
func (e *Entity) Get(t GameTag) int {
	v := e.tags.Get(t)
	for _, en := range e.game.Enchants() {
		v = en.Apply(e, t, v)
	}
	if e.zone != nil {
		for _, en := range e.zone.Enchants() {
			v = en.Apply(e, t, v)
		}
	}
	for _, en := range e.enchants {
		v = en.Apply(e, t, v)
	}
	return v
}

// Set writes the native value of a tag and runs the full change pipeline:
// history recording, the game's change notification, then trigger firing in
// game, zone, entity order.
//
// Writing a tag to its current value still runs the whole pipeline; card
// logic depends on re-fires, TagZonePosition especially.
func (e *Entity) Set(t GameTag, v int) {
	old := e.tags.Get(t)
	e.tags.Set(t, v)

	if e.game.EntityChanged != nil {
		e.game.EntityChanged(e, t, old, v)
	}

	// Damage immunity suppresses triggers only. The native write and the
	// change notification above have already happened.
	if (t == TagDamage || t == TagPreDamage) && e.Get(TagIgnoreDamage) == 1 {
		return
	}

	for _, tr := range e.game.Triggers() {
		tr.OnChange(e, t, old, v)
	}
	if e.zone != nil {
		for _, tr := range e.zone.Triggers() {
			tr.OnChange(e, t, old, v)
		}
	}
	for _, tr := range e.triggers {
		tr.OnChange(e, t, old, v)
	}
}

// AddEnchant appends an entity-level enchant, rebinding its owner.
func (e *Entity) AddEnchant(en *Enchant) {
	en.Owner = e
	e.enchants = append(e.enchants, en)
}

// AddTrigger appends an entity-level trigger, rebinding its owner.
func (e *Entity) AddTrigger(tr *Trigger) {
	tr.Owner = e
	e.triggers = append(e.triggers, tr)
}

// Enchants returns the entity-level enchant list in insertion order.
func (e *Entity) Enchants() []*Enchant { return e.enchants }

// Triggers returns the entity-level trigger list in insertion order.
func (e *Entity) Triggers() []*Trigger { return e.triggers }

// Reset restores the native store to its construction-time snapshot and
// clears the enchant and trigger lists.
func (e *Entity) Reset() {
	e.tags.Reset()
	e.enchants = nil
	e.triggers = nil
}

// Stamp overwrites this entity's state with a deep copy of source's:
// order of play, native values, and cloned enchant/trigger lists. It exists
// to materialize entities inside a cloned game state; the result is
// observably identical to source regardless of the target's prior state.
func (e *Entity) Stamp(source *Entity) {
	e.orderOfPlay = source.orderOfPlay
	e.tags.Stamp(source.tags)

	e.enchants = make([]*Enchant, len(source.enchants))
	for i, en := range source.enchants {
		e.enchants[i] = en.Clone(e)
	}
	e.triggers = make([]*Trigger, len(source.triggers))
	for i, tr := range source.triggers {
		e.triggers[i] = tr.Clone(e)
	}
}

// Hash builds the entity's canonical fingerprint: the tag-ordered native
// store (minus ignored tags), the order of play, and the counted enchant and
// trigger hashes. Content only; two entities never hash apart because they
// are distinct objects.
func (e *Entity) Hash(ignore ...GameTag) string {
	var b strings.Builder
	b.WriteString(e.tags.Hash(ignore...))
	fmt.Fprintf(&b, "[O:%d]", e.orderOfPlay)
	fmt.Fprintf(&b, "[EN:%d", len(e.enchants))
	for _, en := range e.enchants {
		b.WriteString(en.Hash())
	}
	b.WriteString("]")
	fmt.Fprintf(&b, "[TR:%d", len(e.triggers))
	for _, tr := range e.triggers {
		b.WriteString(tr.Hash())
	}
	b.WriteString("]")
	return b.String()
}

func (e *Entity) String() string {
	return fmt.Sprintf("%s[%s:%d]", e.kind, e.card.Name, e.id)
}
