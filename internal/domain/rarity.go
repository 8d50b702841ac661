package domain

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Rarity is the fixed rarity classification of an item
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

// Rarities returns every valid rarity, ordered from common to legendary.
func Rarities() []Rarity {
	return []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityLegendary}
}

// ParseRarity converts raw text into a Rarity. Matching is exact and case-sensitive.
func ParseRarity(s string) (Rarity, error) {
	r := Rarity(s)
	if !r.IsValid() {
		return "", newInvalidRarity(r)
	}
	return r, nil
}

// IsValid reports whether r is one of the four known rarities
func (r Rarity) IsValid() bool {
	return r.Tier() >= 0
}

// Tier returns the ordinal of r (common=0 .. legendary=3), or -1 if r is not a known rarity.
func (r Rarity) Tier() int {
	switch r {
	case RarityCommon:
		return 0
	case RarityUncommon:
		return 1
	case RarityRare:
		return 2
	case RarityLegendary:
		return 3
	default:
		return -1
	}
}

// Title returns the display label, e.g. "Legendary".
func (r Rarity) Title() string {
	return cases.Title(language.English).String(string(r))
}

func (r Rarity) String() string {
	return string(r)
}
