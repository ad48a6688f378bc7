package game

// GameTag identifies one integer property slot on an entity.
// Mirrors the upstream GameTag enum: boolean flags are stored as 0/1.
type GameTag int

const (
	TagInvalid GameTag = iota
	TagEntityID
	TagController
	TagZone
	TagZonePosition
	TagCardKind
	TagCost
	TagHealth
	TagAtk
	TagDamage
	TagPreDamage
	TagArmor
	TagDurability
	TagExhausted
	TagIgnoreDamage
	TagChooseOne
	TagCreator
	TagCharge
	TagTaunt
	TagDivineShield
	TagStealth
	TagFrozen
	TagWindfury
	TagSilenced
	TagJustPlayed
	TagNumTurnsInPlay
	TagSpellPower
)

// Tags at or above tagHistoryCutoff belong to the card-definition range and
// are never written to the history log.
const tagHistoryCutoff GameTag = 1000

// Card-definition-range tags. These describe the printed card, not the live
// entity, so native writes to them are not replay-relevant.
const (
	TagCollectible GameTag = tagHistoryCutoff + iota
	TagCardSet
	TagRarity
)

// CardKind discriminates the closed set of entity variants.
type CardKind int

const (
	KindInvalid CardKind = iota
	KindMinion
	KindSpell
	KindWeapon
	KindHero
	KindHeroPower
)

func (k CardKind) String() string {
	switch k {
	case KindMinion:
		return "MINION"
	case KindSpell:
		return "SPELL"
	case KindWeapon:
		return "WEAPON"
	case KindHero:
		return "HERO"
	case KindHeroPower:
		return "HERO_POWER"
	default:
		return "INVALID"
	}
}

// ZoneType identifies the kind of container an entity currently sits in.
type ZoneType int

const (
	ZoneInvalid ZoneType = iota
	ZonePlay
	ZoneDeck
	ZoneHand
	ZoneGraveyard
	ZoneSecret
	ZoneSetAside
	ZoneRemoved
)

func (z ZoneType) String() string {
	switch z {
	case ZonePlay:
		return "PLAY"
	case ZoneDeck:
		return "DECK"
	case ZoneHand:
		return "HAND"
	case ZoneGraveyard:
		return "GRAVEYARD"
	case ZoneSecret:
		return "SECRET"
	case ZoneSetAside:
		return "SETASIDE"
	case ZoneRemoved:
		return "REMOVED"
	default:
		return "INVALID"
	}
}

// PlayerID identifies a controller within one game.
type PlayerID int
