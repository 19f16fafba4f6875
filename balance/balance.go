// Package balance is the data-driven monster balance table: roles, HP per
// role and stage, shot kinds, sprite labels and per-segment spawn limits.
// Everything here is a pure function of its inputs and the rand source.
package balance

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/samber/lo"
)

type ShotKind int

const (
	ShotArrow ShotKind = iota
	ShotSpear
	ShotAxe
	ShotMagicBall
)

func (k ShotKind) String() string {
	switch k {
	case ShotArrow:
		return "ARROW"
	case ShotSpear:
		return "SPEAR"
	case ShotAxe:
		return "AXE"
	case ShotMagicBall:
		return "MAGIC_BALL"
	}
	return fmt.Sprintf("ShotKind(%d)", int(k))
}

// Fast reports whether the kind is a thin, quick projectile.
func (k ShotKind) Fast() bool {
	return k == ShotArrow || k == ShotSpear
}

type Role int

const (
	RoleRusher Role = iota
	RoleSkirmisher
	RoleBruiser
	RoleThrowerArrow
	RoleThrowerSpear
	RoleThrowerAxe
	RoleCaster
	RoleEliteMini
)

var roleNames = map[Role]string{
	RoleRusher:       "RUSHER",
	RoleSkirmisher:   "SKIRMISHER",
	RoleBruiser:      "BRUISER",
	RoleThrowerArrow: "THROWER_ARROW",
	RoleThrowerSpear: "THROWER_SPEAR",
	RoleThrowerAxe:   "THROWER_AXE",
	RoleCaster:       "CASTER",
	RoleEliteMini:    "ELITE_MINI",
}

func (r Role) String() string {
	if s, ok := roleNames[r]; ok {
		return s
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// Roles lists every role in declaration order.
var Roles = []Role{
	RoleRusher, RoleSkirmisher, RoleBruiser,
	RoleThrowerArrow, RoleThrowerSpear, RoleThrowerAxe, RoleCaster,
	RoleEliteMini,
}

// PickRoleForStage rolls a melee role. All stages currently share one table.
func PickRoleForStage(stage int, rng *rand.Rand) Role {
	roll := rng.Float64()
	switch {
	case roll < 0.20:
		return RoleRusher
	case roll < 0.40:
		return RoleSkirmisher
	default:
		return RoleBruiser
	}
}

func PickRangedRoleForStage(stage int, rng *rand.Rand) Role {
	roll := rng.Float64()
	switch stage {
	case 0:
		switch {
		case roll < 0.40:
			return RoleThrowerAxe
		case roll < 0.80:
			return RoleThrowerArrow
		default:
			return RoleCaster
		}
	case 1:
		if roll < 0.55 {
			return RoleThrowerArrow
		}
		return RoleCaster
	default:
		if roll < 0.20 {
			return RoleThrowerSpear
		}
		return RoleCaster
	}
}

// HPForRole returns the role's HP for a stage, multiplied by the loop
// multiplier and floored at 1.
func HPForRole(role Role, stage, hpMult int) int {
	var hp int
	switch role {
	case RoleRusher:
		hp = 34 + stage*20
	case RoleSkirmisher:
		hp = 30 + stage*18
	case RoleBruiser:
		hp = 62 + stage*32
	case RoleThrowerArrow, RoleCaster:
		hp = int(float64(40+stage*22) * 0.8)
	case RoleThrowerSpear:
		hp = int(float64(42+stage*24) * 0.85)
	case RoleThrowerAxe:
		hp = int(float64(46+stage*26) * 0.9)
	case RoleEliteMini:
		hp = (86 + stage*42) * 2
	default:
		panic(fmt.Sprintf("balance: unhandled role %v", role))
	}
	return lo.Max([]int{1, hp * hpMult})
}

func ShotKindForRole(role Role) ShotKind {
	switch role {
	case RoleCaster:
		return ShotMagicBall
	case RoleThrowerAxe:
		return ShotAxe
	case RoleThrowerArrow:
		return ShotArrow
	case RoleThrowerSpear:
		return ShotSpear
	default:
		return ShotMagicBall
	}
}

func IsRangedRole(role Role) bool {
	return lo.Contains([]Role{RoleThrowerArrow, RoleThrowerSpear, RoleThrowerAxe, RoleCaster}, role)
}

func BossLabelForStage(stage int) string {
	switch stage % 3 {
	case 0:
		return "B3"
	case 1:
		return "D2"
	default:
		return "L1"
	}
}

func EliteMiniLabelForStage(stage int, ranged bool) string {
	switch stage % 3 {
	case 0:
		return lo.Ternary(ranged, "A7", "B2")
	case 1:
		return lo.Ternary(ranged, "F4", "E4")
	default:
		return lo.Ternary(ranged, "M3", "L2")
	}
}

// labelPools maps theme -> role -> sprite labels (forest, swamp, volcano).
var labelPools = [3]map[Role][]string{
	{
		RoleRusher:       {"A4"},
		RoleSkirmisher:   {"A3"},
		RoleBruiser:      {"B1"},
		RoleThrowerArrow: {"A6"},
		RoleThrowerSpear: {"A6"},
		RoleThrowerAxe:   {"A5"},
		RoleCaster:       {"A2"},
	},
	{
		RoleRusher:       {"E1"},
		RoleSkirmisher:   {"E6"},
		RoleBruiser:      {"F3"},
		RoleThrowerArrow: {"E2"},
		RoleThrowerSpear: {"E2"},
		RoleThrowerAxe:   {"E2"},
		RoleCaster:       {"E3"},
	},
	{
		RoleRusher:       {"I1"},
		RoleSkirmisher:   {"I4"},
		RoleBruiser:      {"I3"},
		RoleThrowerArrow: {"J1"},
		RoleThrowerSpear: {"J1"},
		RoleThrowerAxe:   {"J1"},
		RoleCaster:       {"K2"},
	},
}

// LabelsForRole returns the candidate sprite labels of a role on a stage theme.
func LabelsForRole(stage int, role Role) []string {
	theme := stage % 3
	if role == RoleEliteMini {
		return []string{EliteMiniLabelForStage(theme, false), EliteMiniLabelForStage(theme, true)}
	}
	return labelPools[theme][role]
}

// SpriteIndexByLabel finds a label case-insensitively, -1 when missing.
func SpriteIndexByLabel(labels []string, label string) int {
	for i, l := range labels {
		if strings.EqualFold(l, label) {
			return i
		}
	}
	return -1
}

// PickMonsterSpriteIndex picks a sprite for the role out of the loaded
// labels. The stage's boss label is never handed to a normal monster; when
// the role has no loaded candidate any non-boss sprite is used instead.
func PickMonsterSpriteIndex(stage int, role Role, rng *rand.Rand, labels []string) int {
	if len(labels) == 0 {
		return -1
	}
	reserved := BossLabelForStage(stage)
	notReserved := func(idx int) bool { return !strings.EqualFold(labels[idx], reserved) }

	candidates := lo.Filter(
		lo.Map(LabelsForRole(stage, role), func(l string, _ int) int { return SpriteIndexByLabel(labels, l) }),
		func(idx int, _ int) bool { return idx >= 0 && notReserved(idx) },
	)
	if len(candidates) > 0 {
		return candidates[rng.Intn(len(candidates))]
	}
	fallback := lo.Filter(lo.Range(len(labels)), func(idx int, _ int) bool { return notReserved(idx) })
	if len(fallback) > 0 {
		return fallback[rng.Intn(len(fallback))]
	}
	return rng.Intn(len(labels))
}
