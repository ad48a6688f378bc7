package game

// Card is the immutable template an entity is derived from. Templates are
// shared between games and between entities; nothing in this package writes
// to one after construction.
type Card struct {
	ID   string
	Name string
	Kind CardKind
	Tags map[GameTag]int
}

// Tag returns the template's native value for a tag, 0 when absent.
func (c *Card) Tag(t GameTag) int {
	return c.Tags[t]
}

// ChooseOne reports whether playing this card spawns the two alternative
// sub-entities.
func (c *Card) ChooseOne() bool {
	return c.Tags[TagChooseOne] == 1
}

// CardSource resolves card ids to templates. Definition loading and merging
// happen outside this package; the factory only needs lookup.
type CardSource interface {
	CardByID(id string) (*Card, bool)
}

// CardSet is an in-memory CardSource keyed by card id.
type CardSet map[string]*Card

func (cs CardSet) CardByID(id string) (*Card, bool) {
	c, ok := cs[id]
	return c, ok
}
