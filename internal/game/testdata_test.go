package game

// Shared fixtures for the package tests: a small card pool covering every
// variant plus a choose-one card with its two alternatives.

func testCards() CardSet {
	return CardSet{
		"wisp": {
			ID:   "wisp",
			Name: "Wisp",
			Kind: KindMinion,
			Tags: map[GameTag]int{TagCost: 0, TagAtk: 1, TagHealth: 1},
		},
		"boulderfist": {
			ID:   "boulderfist",
			Name: "Boulderfist Ogre",
			Kind: KindMinion,
			Tags: map[GameTag]int{TagCost: 6, TagAtk: 6, TagHealth: 7},
		},
		"firebolt": {
			ID:   "firebolt",
			Name: "Firebolt",
			Kind: KindSpell,
			Tags: map[GameTag]int{TagCost: 1},
		},
		"cleaver": {
			ID:   "cleaver",
			Name: "Cleaver",
			Kind: KindWeapon,
			Tags: map[GameTag]int{TagCost: 3, TagAtk: 2, TagDurability: 2},
		},
		"ember_hero": {
			ID:   "ember_hero",
			Name: "Ember",
			Kind: KindHero,
			Tags: map[GameTag]int{TagHealth: 30, TagArmor: 0},
		},
		"ember_power": {
			ID:   "ember_power",
			Name: "Cinder Blast",
			Kind: KindHeroPower,
			Tags: map[GameTag]int{TagCost: 2, TagExhausted: 0},
		},
		"wildgrowth": {
			ID:   "wildgrowth",
			Name: "Path of Growth",
			Kind: KindSpell,
			Tags: map[GameTag]int{TagCost: 4, TagChooseOne: 1},
		},
		"wildgrowtha": {
			ID:   "wildgrowtha",
			Name: "Path of Growth (Attack)",
			Kind: KindSpell,
			Tags: map[GameTag]int{TagCost: 0},
		},
		"wildgrowthb": {
			ID:   "wildgrowthb",
			Name: "Path of Growth (Health)",
			Kind: KindSpell,
			Tags: map[GameTag]int{TagCost: 0},
		},
		"broken": {
			ID:   "broken",
			Name: "Broken Template",
			Kind: KindInvalid,
			Tags: map[GameTag]int{},
		},
	}
}

func newTestGame() *Game {
	return NewGame(testCards(), nil)
}

func mustMinion(t interface{ Fatalf(string, ...any) }, g *Game, cardID string, controller PlayerID) *Entity {
	card, ok := g.Cards().CardByID(cardID)
	if !ok {
		t.Fatalf("missing test card %q", cardID)
	}
	e, err := g.FromCard(controller, card, nil, nil, 0)
	if err != nil {
		t.Fatalf("FromCard(%q): %v", cardID, err)
	}
	return e
}

// plusEnchant adds n to reads of the given tag.
func plusEnchant(tag GameTag, n int) *Enchant {
	return &Enchant{
		EffectID: "test_plus",
		Apply: func(e *Entity, t GameTag, v int) int {
			if t == tag {
				return v + n
			}
			return v
		},
	}
}

// timesEnchant multiplies reads of the given tag by n.
func timesEnchant(tag GameTag, n int) *Enchant {
	return &Enchant{
		EffectID: "test_times",
		Apply: func(e *Entity, t GameTag, v int) int {
			if t == tag {
				return v * n
			}
			return v
		},
	}
}
