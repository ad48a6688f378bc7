package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagStoreUnsetTagReadsZero(t *testing.T) {
	ts := NewTagStore(map[GameTag]int{TagAtk: 3})

	assert.Equal(t, 3, ts.Get(TagAtk))
	assert.Equal(t, 0, ts.Get(TagHealth))
}

func TestTagStoreResetRestoresOriginal(t *testing.T) {
	ts := NewTagStore(map[GameTag]int{TagAtk: 3, TagHealth: 2})

	ts.Set(TagAtk, 7)
	ts.Set(TagDamage, 1)
	ts.Reset()

	assert.Equal(t, 3, ts.Get(TagAtk))
	assert.Equal(t, 2, ts.Get(TagHealth))
	assert.Equal(t, 0, ts.Get(TagDamage))
	assert.Equal(t, 2, ts.Len())
}

func TestTagStoreHashDeterministic(t *testing.T) {
	a := NewTagStore(map[GameTag]int{TagAtk: 3, TagHealth: 2, TagCost: 4})
	b := NewTagStore(map[GameTag]int{TagCost: 4, TagAtk: 3, TagHealth: 2})

	require.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, a.Hash(), a.Hash())
}

func TestTagStoreHashIgnoreList(t *testing.T) {
	a := NewTagStore(map[GameTag]int{TagAtk: 3, TagEntityID: 1})
	b := NewTagStore(map[GameTag]int{TagAtk: 3, TagEntityID: 2})

	assert.NotEqual(t, a.Hash(), b.Hash())
	assert.Equal(t, a.Hash(TagEntityID), b.Hash(TagEntityID))
}

func TestTagStoreStampCopiesCurrentNotOriginal(t *testing.T) {
	src := NewTagStore(map[GameTag]int{TagAtk: 3})
	src.Set(TagAtk, 9)

	dst := NewTagStore(map[GameTag]int{TagAtk: 1, TagHealth: 5})
	dst.Stamp(src)

	assert.Equal(t, 9, dst.Get(TagAtk))
	assert.Equal(t, 0, dst.Get(TagHealth))

	// Deep copy: writes to the source never leak through.
	src.Set(TagAtk, 1)
	assert.Equal(t, 9, dst.Get(TagAtk))

	// Reset still restores the target's own pristine snapshot.
	dst.Reset()
	assert.Equal(t, 1, dst.Get(TagAtk))
	assert.Equal(t, 5, dst.Get(TagHealth))
}

func TestTagStoreHistoryRecording(t *testing.T) {
	log := NewHistoryLog(true)
	ts := NewTagStore(nil)
	ts.bind(42, log)

	ts.Set(TagDamage, 2)
	require.Equal(t, 1, log.Len())

	rec := log.Records()[0]
	assert.Equal(t, HistoryTagChange, rec.Kind)
	assert.Equal(t, 42, rec.EntityID)
	assert.Equal(t, TagDamage, rec.Tag)
	assert.Equal(t, 0, rec.OldValue)
	assert.Equal(t, 2, rec.Value)

	// Card-definition-range tags are not replay-relevant.
	ts.Set(TagCollectible, 1)
	assert.Equal(t, 1, log.Len())

	// Disabled log records nothing.
	log.SetEnabled(false)
	ts.Set(TagDamage, 3)
	assert.Equal(t, 1, log.Len())
}
