package weapon

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/samber/lo"
)

type UpgradeType int

const (
	UpgradeDamage UpgradeType = iota
	UpgradeCount
	UpgradeRate
	UpgradeLaserTime
	UpgradeRange
	UpgradePierce
	UpgradeBurst
	UpgradeLegendarySpecial
)

var upgradeNames = map[UpgradeType]string{
	UpgradeDamage:           "DMG",
	UpgradeCount:            "COUNT",
	UpgradeRate:             "RATE",
	UpgradeLaserTime:        "LASER_TIME",
	UpgradeRange:            "RANGE",
	UpgradePierce:           "PIERCE",
	UpgradeBurst:            "BURST",
	UpgradeLegendarySpecial: "LEGENDARY_SPECIAL",
}

func (u UpgradeType) String() string {
	if s, ok := upgradeNames[u]; ok {
		return s
	}
	return fmt.Sprintf("UpgradeType(%d)", int(u))
}

type GateKind int

const (
	GateWeapon GateKind = iota
	GateUpgrade
)

func (k GateKind) String() string {
	return lo.Ternary(k == GateWeapon, "WEAPON", "UPGRADE")
}

// Offer is the payload of one gate side. Weapon is meaningful for
// GateWeapon, Upgrade for GateUpgrade.
type Offer struct {
	Kind    GateKind
	Weapon  Type
	Upgrade UpgradeType
}

func WeaponOffer(t Type) Offer {
	return Offer{Kind: GateWeapon, Weapon: t}
}

func UpgradeOffer(u UpgradeType) Offer {
	return Offer{Kind: GateUpgrade, Upgrade: u}
}

func (o Offer) String() string {
	if o.Kind == GateWeapon {
		return "+" + o.Weapon.String()
	}
	return o.Upgrade.String()
}

const (
	gateUpgradeScale   = 0.4
	choiceUpgradeScale = 0.35
)

// ApplyGate returns the weapon held after passing through a gate side.
// A weapon gate always replaces the current weapon with fresh base stats;
// an upgrade gate only applies when a weapon is held. The argument is
// never modified.
func ApplyGate(current *State, offer Offer) *State {
	switch {
	case offer.Kind == GateWeapon:
		s := Base(offer.Weapon)
		return &s
	case offer.Kind == GateUpgrade && current != nil:
		s := upgrade(*current, offer.Upgrade, 1, gateUpgradeScale)
		return &s
	}
	return current
}

// upgrade bumps one stat of w by mult*scale of its nominal step and
// increments the level.
func upgrade(w State, u UpgradeType, mult int, scale float64) State {
	m := float64(mult)
	w.Level++
	switch u {
	case UpgradeDamage:
		w.Damage += lo.Max([]int{1, int(m * scale * DamageScale(w.Type))})
	case UpgradeCount:
		if w.Type == Laser {
			w.LaserDurationMs += int64(60 * m * scale)
		} else {
			w.BulletCount += lo.Max([]int{1, int(m * scale)})
		}
	case UpgradeRate:
		if w.Type == Laser {
			w.FireRateMs = lo.Max([]int64{420, w.FireRateMs - int64(6*m*scale)})
		} else {
			w.FireRateMs = lo.Max([]int64{180, w.FireRateMs - int64(10*m*scale)})
		}
	case UpgradeLaserTime:
		w.LaserDurationMs += int64(50 * m * scale)
	case UpgradeRange:
		if w.Type == Laser {
			w.LaserWidth += math.Max(2, 4*m*scale)
		}
	case UpgradePierce:
		w.Pierce += lo.Max([]int{1, int(m * scale)})
	case UpgradeBurst:
		w.BurstCount += lo.Max([]int{1, int(m * scale)})
	case UpgradeLegendarySpecial:
		w = unlockLegendary(w)
	default:
		panic(fmt.Sprintf("weapon: unhandled upgrade type %v for %v", u, w.Type))
	}
	return Normalize(w)
}

// unlockLegendary grants the type's special once; repeats become a
// small stat bump.
func unlockLegendary(w State) State {
	switch w.Type {
	case Multi, Spread3:
		if w.LegendarySplash {
			w.Damage++
		} else {
			w.LegendarySplash = true
		}
	case Homing:
		if w.LegendarySuperHoming {
			w.Damage++
		} else {
			w.LegendarySuperHoming = true
		}
	case Laser:
		if w.LegendaryShardLaser {
			w.LaserWidth += 2
		} else {
			w.LegendaryShardLaser = true
		}
	default:
		panic(fmt.Sprintf("weapon: unknown type %v", w.Type))
	}
	return w
}

// UpgradeOptionsFor is the pool gate upgrades are drawn from.
func UpgradeOptionsFor(w State) []UpgradeType {
	if w.Type == Laser {
		return []UpgradeType{UpgradeDamage, UpgradeRate, UpgradeLaserTime, UpgradeRange}
	}
	return []UpgradeType{UpgradeDamage, UpgradeCount, UpgradeRate}
}

// RandomUpgradeOffer rolls one gate side from the weapon's pool.
func RandomUpgradeOffer(w State, rng *rand.Rand) Offer {
	pool := UpgradeOptionsFor(w)
	return UpgradeOffer(pool[rng.Intn(len(pool))])
}

// LegendaryLabel names the special a weapon type unlocks.
func LegendaryLabel(t Type) string {
	switch t {
	case Multi, Spread3:
		return "SPLASH"
	case Homing:
		return "SUPER_HOMING"
	case Laser:
		return "SHARD_LASER"
	}
	panic(fmt.Sprintf("weapon: unknown type %v", t))
}
