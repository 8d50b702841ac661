package domain

import (
	"fmt"
	"strconv"
)

// Item is an inventory item. Rarity is fixed once the item is built;
// weight can only change through SetWeight.
type Item struct {
	name   string
	weight float64
	rarity Rarity
}

// NewItem builds an item, rejecting any rarity outside the known set.
func NewItem(name string, weight float64, rarity Rarity) (*Item, error) {
	if !rarity.IsValid() {
		return nil, newInvalidRarity(rarity)
	}
	return &Item{
		name:   name,
		weight: weight,
		rarity: rarity,
	}, nil
}

func (i *Item) Name() string    { return i.name }
func (i *Item) Weight() float64 { return i.weight }
func (i *Item) Rarity() Rarity  { return i.rarity }

// Info returns "<name> (Weight: <weight>, Rarity: <rarity>)".
// Weight uses the shortest decimal form, so 4.0 prints as "4".
func (i *Item) Info() string {
	return fmt.Sprintf("%s (Weight: %s, Rarity: %s)", i.name, formatWeight(i.weight), i.rarity)
}

// SetWeight overwrites the weight. No bounds are applied.
func (i *Item) SetWeight(weight float64) {
	i.weight = weight
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
