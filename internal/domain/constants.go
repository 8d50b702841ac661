package domain

// Weapon durability bounds (inclusive)
const (
	MinDurability = 0
	MaxDurability = 100

	// DurabilityWearPerUse is how much a single Use() removes
	DurabilityWearPerUse = 10
)
