package game

import (
	"fmt"

	"go.uber.org/zap"
)

// chooseOneSuffixes are appended to a choose-one card's id to form the ids
// of its two alternative cards.
var chooseOneSuffixes = [2]string{"a", "b"}

// FromCard constructs an entity from a card template, registers it, and
// places it in the destination zone.
//
// presets seeds tag values on top of the card's own tags; either may be nil.
// id picks the entity id explicitly when positive, which is the re-hydration
// path used by replay and cloning; otherwise the game's id generator is
// consulted. A nil zone leaves the entity unplaced.
func (g *Game) FromCard(controller PlayerID, card *Card, presets map[GameTag]int, zone Zone, id int) (*Entity, error) {
	if card == nil {
		return nil, fmt.Errorf("from card: %w: nil template", ErrUnknownCard)
	}

	fresh := id <= 0
	if fresh {
		id = g.NextEntityID()
	} else if id > g.idCounter {
		// Re-hydrated ids advance the generator so fresh ids never collide.
		g.idCounter = id
	}

	tags := make(map[GameTag]int, len(card.Tags)+len(presets)+4)
	for t, v := range card.Tags {
		tags[t] = v
	}
	for t, v := range presets {
		tags[t] = v
	}
	tags[TagEntityID] = id
	tags[TagController] = int(controller)
	tags[TagCardKind] = int(card.Kind)
	if zone != nil {
		tags[TagZone] = int(zone.Type())
	}

	switch card.Kind {
	case KindMinion, KindSpell, KindWeapon:
		// Nothing beyond the seeded card tags.
	case KindHero:
		// Fixed template attributes land in the native layer directly;
		// they see enchants like any other tag only on later reads.
		tags[TagHealth] = card.Tag(TagHealth)
		tags[TagArmor] = card.Tag(TagArmor)
	case KindHeroPower:
		tags[TagCost] = card.Tag(TagCost)
		tags[TagExhausted] = card.Tag(TagExhausted)
	default:
		return nil, fmt.Errorf("from card %q: %w: %d", card.ID, ErrUnknownCardKind, int(card.Kind))
	}

	e := &Entity{
		id:         id,
		kind:       card.Kind,
		controller: controller,
		game:       g,
		card:       card,
		tags:       NewTagStore(tags),
	}
	e.tags.bind(id, g.history)

	if err := g.register(e); err != nil {
		return nil, fmt.Errorf("from card %q: %w", card.ID, err)
	}

	if g.history.Enabled() {
		g.history.Append(HistoryRecord{
			Kind:     HistoryFullEntity,
			EntityID: id,
			CardID:   card.ID,
			Tags:     e.resolvedSnapshot(),
		})
	}

	if zone != nil {
		zone.Add(e)
	}

	if card.ChooseOne() {
		if err := g.expandChooseOne(e, fresh); err != nil {
			return nil, err
		}
	}

	g.logger.Debug("entity created",
		zap.Int("entity_id", id),
		zap.String("card_id", card.ID),
		zap.String("kind", card.Kind.String()),
		zap.Int("controller", int(controller)),
	)

	return e, nil
}

// expandChooseOne attaches the two alternative playables of a choose-one
// card. Fresh creations spawn them into the controller's set-aside zone;
// re-hydrations locate the existing ones by creator reference and card id so
// reconstruction never duplicates them.
func (g *Game) expandChooseOne(parent *Entity, fresh bool) error {
	holding := g.SetAside(parent.controller)

	for i, suffix := range chooseOneSuffixes {
		altCardID := parent.card.ID + suffix

		if fresh {
			altCard, ok := g.cards.CardByID(altCardID)
			if !ok {
				return fmt.Errorf("choose one %q: %w: %q", parent.card.ID, ErrUnknownCard, altCardID)
			}
			alt, err := g.FromCard(parent.controller, altCard, map[GameTag]int{TagCreator: parent.id}, holding, 0)
			if err != nil {
				return err
			}
			parent.chooseOnePlayables[i] = alt
			continue
		}

		for _, member := range holding.Entities() {
			if member.tags.Get(TagCreator) == parent.id && member.card.ID == altCardID {
				parent.chooseOnePlayables[i] = member
				break
			}
		}
	}
	return nil
}

// resolvedSnapshot captures the entity's resolved value for every natively
// stored tag, for the full-entity history record.
func (e *Entity) resolvedSnapshot() map[GameTag]int {
	snap := make(map[GameTag]int, len(e.tags.current))
	for t := range e.tags.current {
		snap[t] = e.Get(t)
	}
	return snap
}
