package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/osse101/itemforge/internal/config"
	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	initLogger(cfg)

	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
	if err := run(ctx, os.Stdout); err != nil {
		logger.FromContext(ctx).Error("demo failed", "error", err)
		os.Exit(1)
	}
}

// weaponDemo is one scripted weapon walkthrough
type weaponDemo struct {
	name       string
	weight     float64
	rarity     domain.Rarity
	damage     int
	durability int
	uses       int
}

var weaponDemos = []weaponDemo{
	{name: "Longbow", weight: 2.0, rarity: domain.RarityUncommon, damage: 15, durability: 100, uses: 1},
	{name: "Battle Axe", weight: 5.0, rarity: domain.RarityLegendary, damage: 25, durability: 100, uses: 1},
	{name: "Wooden Club", weight: 3.0, rarity: domain.RarityCommon, damage: 8, durability: 80, uses: 1},
	{name: "War Hammer", weight: 7.5, rarity: domain.RarityUncommon, damage: 30, durability: 60, uses: 2},
}

// run prints the demonstration transcript to w.
func run(ctx context.Context, w io.Writer) error {
	log := logger.FromContext(ctx)
	log.Info("starting inventory demo")

	sword, err := domain.NewItem("Steel Sword", 3.5, domain.RarityRare)
	if err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	fmt.Fprintln(w, sword.Info())
	sword.SetWeight(4.0)
	fmt.Fprintln(w, sword.Info())

	for _, d := range weaponDemos {
		weapon, err := domain.NewWeapon(d.name, d.weight, d.rarity, d.damage, d.durability)
		if err != nil {
			return fmt.Errorf("failed to create weapon %q: %w", d.name, err)
		}
		log.Debug("weapon created", "name", weapon.Name(), "rarity", weapon.Rarity().Title(), "damage", weapon.Damage())

		fmt.Fprintln(w, weapon.Info())
		for i := 0; i < d.uses; i++ {
			weapon.Use()
		}
		fmt.Fprintf(w, "Durability of the %s after %d use(s): %d\n", weapon.Name(), d.uses, weapon.Durability())
		weapon.Repair()
		fmt.Fprintf(w, "Durability of the %s after repair: %d\n", weapon.Name(), weapon.Durability())
	}

	// Rejected constructions
	if _, err := domain.NewItem("Phoenix Feather", 0.1, "mythical"); err != nil {
		log.Warn("item rejected", "error", err)
		fmt.Fprintf(w, "Rejected: %v\n", err)
	}
	if _, err := domain.NewWeapon("Glass Dagger", 0.5, domain.RarityRare, 12, 101); err != nil {
		log.Warn("weapon rejected", "error", err)
		fmt.Fprintf(w, "Rejected: %v\n", err)
	}

	log.Info("inventory demo finished", "weapons", len(weaponDemos))
	return nil
}
