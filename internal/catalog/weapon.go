// Package catalog holds the static weapon catalog.
// The catalog is loaded once at startup and never mutated afterwards.
package catalog

import (
	"errors"
	"fmt"
	"math"
)

// Category is a weapon class.
type Category string

const (
	CategorySidearm Category = "Sidearm"
	CategorySMG     Category = "SMG"
	CategoryShotgun Category = "Shotgun"
	CategoryRifle   Category = "Rifle"
	CategorySniper  Category = "Sniper"
	CategoryHeavy   Category = "Heavy"
)

// KnownCategories lists every category in canonical order.
var KnownCategories = []Category{
	CategorySidearm,
	CategorySMG,
	CategoryShotgun,
	CategoryRifle,
	CategorySniper,
	CategoryHeavy,
}

// IsKnown reports whether c is one of KnownCategories.
func (c Category) IsKnown() bool {
	for _, k := range KnownCategories {
		if c == k {
			return true
		}
	}
	return false
}

var (
	// ErrInvalidWeapon is returned when a record violates the catalog contract.
	ErrInvalidWeapon = errors.New("invalid weapon")
	// ErrDuplicateID is returned when two records share an id.
	ErrDuplicateID = errors.New("duplicate weapon id")
)

// Damage is per-hit damage by body region.
type Damage struct {
	Head float64 `yaml:"head"`
	Body float64 `yaml:"body"`
	Leg  float64 `yaml:"leg"`
}

// Weapon is one immutable catalog record.
type Weapon struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Category Category `yaml:"category"`
	Cost     int      `yaml:"cost"`
	FireRate float64  `yaml:"fire_rate"`
	Magazine int      `yaml:"magazine"`
	Damage   Damage   `yaml:"damage"`
}

// Validate checks the field constraints of a single record.
func (w Weapon) Validate() error {
	switch {
	case w.ID == "":
		return fmt.Errorf("%w: empty id", ErrInvalidWeapon)
	case w.Name == "":
		return fmt.Errorf("%w %q: empty name", ErrInvalidWeapon, w.ID)
	case !w.Category.IsKnown():
		return fmt.Errorf("%w %q: unknown category %q", ErrInvalidWeapon, w.ID, w.Category)
	case !finite(w.FireRate, w.Damage.Head, w.Damage.Body, w.Damage.Leg):
		return fmt.Errorf("%w %q: fire rate and damage must be finite", ErrInvalidWeapon, w.ID)
	case w.Cost < 0:
		return fmt.Errorf("%w %q: negative cost %d", ErrInvalidWeapon, w.ID, w.Cost)
	case w.FireRate <= 0:
		return fmt.Errorf("%w %q: fire rate must be positive, got %v", ErrInvalidWeapon, w.ID, w.FireRate)
	case w.Magazine < 0:
		return fmt.Errorf("%w %q: negative magazine %d", ErrInvalidWeapon, w.ID, w.Magazine)
	case w.Damage.Head < 0 || w.Damage.Body < 0 || w.Damage.Leg < 0:
		return fmt.Errorf("%w %q: negative damage", ErrInvalidWeapon, w.ID)
	}
	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
