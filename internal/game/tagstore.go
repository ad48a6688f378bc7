package game

import (
	"fmt"
	"sort"
	"strings"
)

// TagStore holds one entity's native tag values: the values as stored, before
// any enchant is applied. It also keeps a snapshot of the initial values so
// the entity can be reset to its pristine state.
type TagStore struct {
	current  map[GameTag]int
	original map[GameTag]int

	// Bound by the factory so native writes can be recorded for replay.
	entityID int
	log      *HistoryLog
}

// NewTagStore builds a store seeded with the provided tags. The seed is
// copied twice: once into the live map and once into the pristine snapshot.
func NewTagStore(tags map[GameTag]int) *TagStore {
	current := make(map[GameTag]int, len(tags))
	original := make(map[GameTag]int, len(tags))
	for t, v := range tags {
		current[t] = v
		original[t] = v
	}
	return &TagStore{current: current, original: original}
}

// bind attaches the store to its entity's id and the game's history log.
func (ts *TagStore) bind(entityID int, log *HistoryLog) {
	ts.entityID = entityID
	ts.log = log
}

// Get returns the native value for a tag. Absent tags read as 0; reading an
// unset tag is not an error.
func (ts *TagStore) Get(t GameTag) int {
	return ts.current[t]
}

// Set writes the native value for a tag. This is the raw write path: it does
// not consult enchants and does not fire triggers. Gameplay-range writes are
// recorded to the history log when recording is enabled; card-definition
// range tags are not replay-relevant.
func (ts *TagStore) Set(t GameTag, v int) {
	old := ts.current[t]
	ts.current[t] = v
	if ts.log != nil && ts.log.Enabled() && t < tagHistoryCutoff {
		ts.log.Append(HistoryRecord{
			Kind:     HistoryTagChange,
			EntityID: ts.entityID,
			Tag:      t,
			OldValue: old,
			Value:    v,
		})
	}
}

// Reset restores the live map to the pristine snapshot taken at construction.
func (ts *TagStore) Reset() {
	current := make(map[GameTag]int, len(ts.original))
	for t, v := range ts.original {
		current[t] = v
	}
	ts.current = current
}

// Stamp replaces the live map with a deep copy of other's live map. The
// pristine snapshot is left untouched.
func (ts *TagStore) Stamp(other *TagStore) {
	current := make(map[GameTag]int, len(other.current))
	for t, v := range other.current {
		current[t] = v
	}
	ts.current = current
}

// Hash builds a deterministic string of every live tag in ascending tag
// order, skipping tags named in ignore. Identical native state always yields
// an identical string regardless of map iteration order.
func (ts *TagStore) Hash(ignore ...GameTag) string {
	skip := make(map[GameTag]bool, len(ignore))
	for _, t := range ignore {
		skip[t] = true
	}

	keys := make([]int, 0, len(ts.current))
	for t := range ts.current {
		if !skip[t] {
			keys = append(keys, int(t))
		}
	}
	sort.Ints(keys)

	var b strings.Builder
	b.WriteByte('[')
	for _, t := range keys {
		fmt.Fprintf(&b, "%d=%d;", t, ts.current[GameTag(t)])
	}
	b.WriteByte(']')
	return b.String()
}

// Len reports the number of tags with a stored value.
func (ts *TagStore) Len() int {
	return len(ts.current)
}
