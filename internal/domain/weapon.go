package domain

import "github.com/osse101/itemforge/internal/utils"

// Weapon is an Item that deals damage and wears down with use.
// Shared attributes (name, weight, rarity) live on the embedded Item.
type Weapon struct {
	Item
	damage     int
	durability int
}

// NewWeapon builds a weapon. Durability is checked before rarity, so when both
// are bad the durability error is the one returned.
func NewWeapon(name string, weight float64, rarity Rarity, damage, durability int) (*Weapon, error) {
	if !utils.InRange(durability, MinDurability, MaxDurability) {
		return nil, newInvalidDurability(durability)
	}

	item, err := NewItem(name, weight, rarity)
	if err != nil {
		return nil, err
	}

	return &Weapon{
		Item:       *item,
		damage:     damage,
		durability: durability,
	}, nil
}

func (w *Weapon) Damage() int     { return w.damage }
func (w *Weapon) Durability() int { return w.durability }

// IsBroken reports whether the weapon has no durability left
func (w *Weapon) IsBroken() bool {
	return w.durability == MinDurability
}

// Use wears the weapon down by DurabilityWearPerUse, never below zero.
// A broken weapon is left untouched.
func (w *Weapon) Use() {
	if w.durability > MinDurability {
		w.durability = utils.FloorAt(w.durability-DurabilityWearPerUse, MinDurability)
	}
}

// Repair restores full durability regardless of the current value.
func (w *Weapon) Repair() {
	w.durability = MaxDurability
}
