package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashIdempotent(t *testing.T) {
	g := newTestGame()
	e := mustMinion(t, g, "boulderfist", 1)
	e.AddEnchant(plusEnchant(TagAtk, 1))
	e.AddTrigger(&Trigger{EffectID: "t", OnChange: func(*Entity, GameTag, int, int) {}})

	assert.Equal(t, e.Hash(), e.Hash())
	assert.Equal(t, e.Fingerprint(), e.Fingerprint())
}

func TestHashContentNotIdentity(t *testing.T) {
	g := newTestGame()
	a := mustMinion(t, g, "wisp", 1)
	b := mustMinion(t, g, "wisp", 1)

	// Only the entity id differs; ignoring it, the states are equal.
	assert.NotEqual(t, a.Hash(), b.Hash())
	assert.Equal(t, a.Hash(TagEntityID), b.Hash(TagEntityID))
	assert.Equal(t, a.Fingerprint(TagEntityID), b.Fingerprint(TagEntityID))
}

func TestHashCoversEnchantsAndTriggers(t *testing.T) {
	g := newTestGame()
	a := mustMinion(t, g, "wisp", 1)
	b := mustMinion(t, g, "wisp", 1)

	a.AddEnchant(&Enchant{EffectID: "buff", SourceID: a.ID(), Turn: 1, Apply: func(e *Entity, t GameTag, v int) int { return v }})
	assert.NotEqual(t, a.Hash(TagEntityID), b.Hash(TagEntityID))

	b.AddEnchant(&Enchant{EffectID: "buff", SourceID: a.ID(), Turn: 1, Apply: func(e *Entity, t GameTag, v int) int { return v }})
	assert.Equal(t, a.Hash(TagEntityID), b.Hash(TagEntityID))
}

func TestStampRoundTrip(t *testing.T) {
	g := newTestGame()
	src := mustMinion(t, g, "boulderfist", 1)
	g.MarkPlayed(src)
	src.Set(TagDamage, 3)
	src.AddEnchant(plusEnchant(TagAtk, 2))
	src.AddTrigger(&Trigger{EffectID: "onhit", SourceID: src.ID(), Turn: 1, OnChange: func(*Entity, GameTag, int, int) {}})

	dst := mustMinion(t, g, "boulderfist", 1)
	require.NotEqual(t, src.Hash(), dst.Hash())

	dst.Stamp(src)

	assert.Equal(t, src.Hash(), dst.Hash())
	assert.Equal(t, src.OrderOfPlay(), dst.OrderOfPlay())
	assert.Equal(t, src.Get(TagAtk), dst.Get(TagAtk))
	require.Len(t, dst.Enchants(), 1)
	require.Len(t, dst.Triggers(), 1)

	// Copies are rebound, not shared.
	assert.Same(t, dst, dst.Enchants()[0].Owner)
	assert.NotSame(t, src.Enchants()[0], dst.Enchants()[0])

	// Post-stamp divergence stays local to the source.
	src.Set(TagDamage, 5)
	assert.Equal(t, 3, dst.Tags().Get(TagDamage))
}

func TestStampOverwritesPriorState(t *testing.T) {
	g := newTestGame()
	src := mustMinion(t, g, "wisp", 1)

	dst := mustMinion(t, g, "wisp", 1)
	dst.Set(TagAtk, 8)
	dst.AddEnchant(plusEnchant(TagAtk, 4))
	dst.AddEnchant(timesEnchant(TagAtk, 2))

	dst.Stamp(src)

	assert.Equal(t, src.Hash(), dst.Hash())
	assert.Empty(t, dst.Enchants())
	assert.Equal(t, 1, dst.Get(TagAtk))
}

func TestGameCloneProducesEqualState(t *testing.T) {
	g := newTestGame()
	g.Turn = 5

	minion := mustMinion(t, g, "boulderfist", 1)
	g.MarkPlayed(minion)
	minion.Set(TagDamage, 2)
	minion.AddEnchant(plusEnchant(TagAtk, 1))

	chooseCard, _ := g.Cards().CardByID("wildgrowth")
	parent, err := g.FromCard(1, chooseCard, nil, nil, 0)
	require.NoError(t, err)

	clone := g.Clone()

	assert.NotEqual(t, g.ID, clone.ID)
	assert.Equal(t, g.Turn, clone.Turn)
	assert.Equal(t, g.EntityCount(), clone.EntityCount())
	assert.Equal(t, g.Checksum(), clone.Checksum())
	assert.Equal(t, g.Fingerprint(), clone.Fingerprint())

	// Choose-one links point at clone-local entities.
	clonedParent := clone.Entity(parent.ID())
	require.NotNil(t, clonedParent)
	for i, alt := range parent.ChooseOnePlayables() {
		cloned := clonedParent.ChooseOnePlayables()[i]
		require.NotNil(t, cloned)
		assert.Equal(t, alt.ID(), cloned.ID())
		assert.NotSame(t, alt, cloned)
		assert.Same(t, clone, cloned.Game())
	}

	// Mutating the clone leaves the original untouched.
	clone.Entity(minion.ID()).Set(TagDamage, 6)
	assert.Equal(t, 2, minion.Tags().Get(TagDamage))
	assert.NotEqual(t, g.Checksum(), clone.Checksum())

	// Clones extend the same id sequence without collisions.
	next := mustMinion(t, clone, "wisp", 2)
	assert.Greater(t, next.ID(), minion.ID())
	assert.Nil(t, g.Entity(next.ID()))
}

func TestGameChecksumIgnoreList(t *testing.T) {
	g := newTestGame()
	e := mustMinion(t, g, "wisp", 1)

	before := g.Checksum(TagDamage)
	e.Set(TagDamage, 1)
	assert.Equal(t, before, g.Checksum(TagDamage))
	assert.NotEqual(t, before, g.Checksum())
}
