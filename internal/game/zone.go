package game

// Zone is the container contract this package consumes. Placement order,
// capacity limits, and zone-change notifications belong to the zone
// implementation; the core only needs insertion, membership, and the zone's
// enchant/trigger lists for tiered resolution.
type Zone interface {
	Type() ZoneType
	Controller() PlayerID
	Add(e *Entity)
	Remove(e *Entity) bool
	Entities() []*Entity
	Enchants() []*Enchant
	Triggers() []*Trigger
}

// BaseZone is a minimal slice-backed zone. The engine's gameplay zones wrap
// it with their own placement rules; the core uses it directly for the
// set-aside holding zones and in tests.
type BaseZone struct {
	zoneType   ZoneType
	controller PlayerID
	entities   []*Entity
	enchants   []*Enchant
	triggers   []*Trigger
}

// NewBaseZone builds an empty zone of the given type for a controller.
func NewBaseZone(zoneType ZoneType, controller PlayerID) *BaseZone {
	return &BaseZone{zoneType: zoneType, controller: controller}
}

func (z *BaseZone) Type() ZoneType       { return z.zoneType }
func (z *BaseZone) Controller() PlayerID { return z.controller }
func (z *BaseZone) Entities() []*Entity  { return z.entities }
func (z *BaseZone) Enchants() []*Enchant { return z.enchants }
func (z *BaseZone) Triggers() []*Trigger { return z.triggers }

// Add appends the entity and takes over its zone back-reference.
func (z *BaseZone) Add(e *Entity) {
	z.entities = append(z.entities, e)
	e.zone = z
}

// Remove drops the entity from the membership list, preserving order.
// Returns false when the entity was not a member.
func (z *BaseZone) Remove(e *Entity) bool {
	for i, member := range z.entities {
		if member == e {
			z.entities = append(z.entities[:i], z.entities[i+1:]...)
			if e.zone == z {
				e.zone = nil
			}
			return true
		}
	}
	return false
}

// AddEnchant attaches a zone-level enchant.
func (z *BaseZone) AddEnchant(en *Enchant) {
	z.enchants = append(z.enchants, en)
}

// AddTrigger attaches a zone-level trigger.
func (z *BaseZone) AddTrigger(tr *Trigger) {
	z.triggers = append(z.triggers, tr)
}

// Len reports the number of entities in the zone.
func (z *BaseZone) Len() int { return len(z.entities) }
