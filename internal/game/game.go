package game

import (
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EntityChangedFunc is the bookkeeping hook the surrounding engine supplies;
// it sees every native write made through the entity accessor, before any
// trigger fires.
type EntityChangedFunc func(e *Entity, t GameTag, oldValue, newValue int)

// Game owns everything this core needs from the surrounding state: the
// monotonic id generator, the identity index, the history log, the card
// source, game-level enchant/trigger lists, and the per-controller set-aside
// zones. The turn engine and zones orchestration live outside this package.
type Game struct {
	// ID names the game instance in logs and the replay archive.
	ID string

	// Turn is the current turn number, advanced by the turn engine. Enchants
	// and triggers stamp it at creation for aging.
	Turn int

	// EntityChanged is invoked on every native write through Entity.Set.
	EntityChanged EntityChangedFunc

	logger *zap.Logger
	cards  CardSource

	idCounter    int
	orderCounter int

	entities map[int]*Entity
	history  *HistoryLog

	enchants []*Enchant
	triggers []*Trigger

	setAside map[PlayerID]*BaseZone
}

// NewGame builds an empty game state around a card source. A nil logger is
// replaced with a no-op logger; search clones run silent.
func NewGame(cards CardSource, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Game{
		ID:       uuid.NewString(),
		Turn:     1,
		logger:   logger,
		cards:    cards,
		entities: make(map[int]*Entity),
		history:  NewHistoryLog(false),
		setAside: make(map[PlayerID]*BaseZone),
	}
}

// NextEntityID hands out the next entity id. Ids are game-unique and
// strictly increasing.
func (g *Game) NextEntityID() int {
	g.idCounter++
	return g.idCounter
}

// MarkPlayed assigns the entity its order-of-play rank. Ranks are strictly
// increasing in play order.
func (g *Game) MarkPlayed(e *Entity) {
	g.orderCounter++
	e.orderOfPlay = g.orderCounter
}

// register inserts the entity into the identity index. Duplicate ids are an
// integrity violation and are rejected loudly.
func (g *Game) register(e *Entity) error {
	if _, exists := g.entities[e.id]; exists {
		return &IDCollisionError{ID: e.id}
	}
	g.entities[e.id] = e
	return nil
}

// Entity looks up an entity by id, nil when absent.
func (g *Game) Entity(id int) *Entity {
	return g.entities[id]
}

// Entities returns every registered entity in ascending id order, the
// canonical iteration order for cloning and checksums.
func (g *Game) Entities() []*Entity {
	ids := make([]int, 0, len(g.entities))
	for id := range g.entities {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]*Entity, len(ids))
	for i, id := range ids {
		out[i] = g.entities[id]
	}
	return out
}

// EntityCount reports the size of the identity index.
func (g *Game) EntityCount() int { return len(g.entities) }

// History returns the game's append-only change log.
func (g *Game) History() *HistoryLog { return g.history }

// Cards returns the card source the game was built with.
func (g *Game) Cards() CardSource { return g.cards }

// Logger returns the game's structured logger.
func (g *Game) Logger() *zap.Logger { return g.logger }

// SetAside returns the controller's holding zone, creating it on first use.
// Choose-one sub-entities live here until one alternative is picked.
func (g *Game) SetAside(p PlayerID) *BaseZone {
	z, ok := g.setAside[p]
	if !ok {
		z = NewBaseZone(ZoneSetAside, p)
		g.setAside[p] = z
	}
	return z
}

// AddEnchant attaches a game-level enchant.
func (g *Game) AddEnchant(en *Enchant) {
	g.enchants = append(g.enchants, en)
}

// AddTrigger attaches a game-level trigger.
func (g *Game) AddTrigger(tr *Trigger) {
	g.triggers = append(g.triggers, tr)
}

// Enchants returns the game-level enchant list in insertion order.
func (g *Game) Enchants() []*Enchant { return g.enchants }

// Triggers returns the game-level trigger list in insertion order.
func (g *Game) Triggers() []*Trigger { return g.triggers }

// Clone deep-copies the game state for tree search. Every entity is rebuilt
// with the same id, kind, controller, and card, then stamped from its
// original; choose-one links are relinked by creator reference. Clones get a
// fresh id, keep the turn and counters, and never record history.
func (g *Game) Clone() *Game {
	clone := &Game{
		ID:           uuid.NewString(),
		Turn:         g.Turn,
		logger:       zap.NewNop(),
		cards:        g.cards,
		idCounter:    g.idCounter,
		orderCounter: g.orderCounter,
		entities:     make(map[int]*Entity, len(g.entities)),
		history:      NewHistoryLog(false),
		setAside:     make(map[PlayerID]*BaseZone),
	}

	for _, en := range g.enchants {
		clone.enchants = append(clone.enchants, en.Clone(nil))
	}
	for _, tr := range g.triggers {
		clone.triggers = append(clone.triggers, tr.Clone(nil))
	}

	for _, src := range g.Entities() {
		dst := &Entity{
			id:         src.id,
			kind:       src.kind,
			controller: src.controller,
			game:       clone,
			card:       src.card,
			tags:       NewTagStore(src.tags.original),
		}
		dst.tags.bind(dst.id, clone.history)
		dst.Stamp(src)
		clone.entities[dst.id] = dst

		if src.zone != nil && src.zone.Type() == ZoneSetAside {
			clone.SetAside(src.zone.Controller()).Add(dst)
		}
	}

	// Relink choose-one alternatives by creator reference.
	for _, src := range g.Entities() {
		dst := clone.entities[src.id]
		for i, alt := range src.chooseOnePlayables {
			if alt != nil {
				dst.chooseOnePlayables[i] = clone.entities[alt.id]
			}
		}
	}

	return clone
}
