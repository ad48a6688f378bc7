package game

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint reduces an entity's canonical hash to a 64-bit key for
// transposition tables. Collisions are possible; tables confirm with the
// full string hash.
func (e *Entity) Fingerprint(ignore ...GameTag) uint64 {
	return xxhash.Sum64String(e.Hash(ignore...))
}

// canonical builds a deterministic representation of the whole game state:
// turn, counters, game-level enchant/trigger hashes, then every entity in
// ascending id order. Map iteration order never leaks into it.
func (g *Game) canonical(ignore ...GameTag) string {
	var b strings.Builder

	fmt.Fprintf(&b, "GAME:%d|%d|%d\n", g.Turn, g.idCounter, g.orderCounter)

	fmt.Fprintf(&b, "ENCHANTS:%d", len(g.enchants))
	for _, en := range g.enchants {
		b.WriteString(en.Hash())
	}
	b.WriteByte('\n')

	fmt.Fprintf(&b, "TRIGGERS:%d", len(g.triggers))
	for _, tr := range g.triggers {
		b.WriteString(tr.Hash())
	}
	b.WriteByte('\n')

	for _, e := range g.Entities() {
		fmt.Fprintf(&b, "ENTITY:%d|%s|%s\n", e.id, e.card.ID, e.Hash(ignore...))
	}

	return b.String()
}

// Fingerprint reduces the whole game state to a 64-bit key, the cheap probe
// for duplicate states during search.
func (g *Game) Fingerprint(ignore ...GameTag) uint64 {
	return xxhash.Sum64String(g.canonical(ignore...))
}

// Checksum computes the SHA-256 hex digest of the canonical game state, used
// to verify replay integrity across runs.
func (g *Game) Checksum(ignore ...GameTag) string {
	sum := sha256.Sum256([]byte(g.canonical(ignore...)))
	return hex.EncodeToString(sum[:])
}
