package weapon

import (
	"fmt"
	"math/rand"

	"github.com/samber/lo"
)

type Rarity int

const (
	RarityNormal Rarity = iota
	RarityRare
	RarityAdvanced
	RarityEpic
	RarityLegendary
)

func (r Rarity) String() string {
	switch r {
	case RarityNormal:
		return "NORMAL"
	case RarityRare:
		return "RARE"
	case RarityAdvanced:
		return "ADVANCED"
	case RarityEpic:
		return "EPIC"
	case RarityLegendary:
		return "LEGENDARY"
	}
	return fmt.Sprintf("Rarity(%d)", int(r))
}

// Bonus is the stat multiplier of the rarity.
func (r Rarity) Bonus() int {
	switch r {
	case RarityRare:
		return 2
	case RarityAdvanced:
		return 3
	case RarityEpic:
		return 4
	case RarityLegendary:
		return 6
	}
	return 1
}

// RollRarity draws 1..30: 18 normal, 7 rare, 3 advanced, 1 epic, 1 legendary.
func RollRarity(rng *rand.Rand) Rarity {
	roll := rng.Intn(30) + 1
	switch {
	case roll <= 18:
		return RarityNormal
	case roll <= 25:
		return RarityRare
	case roll <= 28:
		return RarityAdvanced
	case roll == 29:
		return RarityEpic
	}
	return RarityLegendary
}

type UpgradeChoice struct {
	Upgrade UpgradeType
	Rarity  Rarity
}

func (c UpgradeChoice) Label(t Type) string {
	if c.Upgrade == UpgradeLegendarySpecial {
		return c.Rarity.String() + " " + LegendaryLabel(t)
	}
	return c.Rarity.String() + " " + c.Upgrade.String()
}

func upgradeOptionsForChoice(w State, rarity Rarity) []UpgradeType {
	base := UpgradeOptionsFor(w)
	switch rarity {
	case RarityLegendary:
		if w.HasLegendary() {
			return base
		}
		return append([]UpgradeType{UpgradeLegendarySpecial}, base...)
	case RarityEpic:
		if w.Type == Laser {
			return base
		}
		return append(base, UpgradePierce, UpgradeBurst)
	}
	return base
}

const maxChoiceAttempts = 200

// GenerateUpgradeChoices offers up to three distinct upgrades, each with
// its own rarity.
func GenerateUpgradeChoices(w State, rng *rand.Rand) []UpgradeChoice {
	chosen := map[UpgradeType]bool{}
	var result []UpgradeChoice
	for attempt := 0; len(result) < 3 && attempt < maxChoiceAttempts; attempt++ {
		rarity := RollRarity(rng)
		var pick UpgradeType
		if rarity == RarityLegendary && !w.HasLegendary() && !chosen[UpgradeLegendarySpecial] {
			pick = UpgradeLegendarySpecial
		} else {
			pool := lo.Filter(upgradeOptionsForChoice(w, rarity), func(u UpgradeType, _ int) bool { return !chosen[u] })
			if len(pool) == 0 {
				continue
			}
			pick = pool[rng.Intn(len(pool))]
		}
		chosen[pick] = true
		result = append(result, UpgradeChoice{Upgrade: pick, Rarity: rarity})
	}
	return result
}

// ApplyUpgradeChoice applies a picked card. PIERCE and BURST ignore the
// rarity; legendary cards count double.
func ApplyUpgradeChoice(w State, c UpgradeChoice) State {
	mult := c.Rarity.Bonus()
	if c.Rarity == RarityLegendary {
		mult *= 2
	}
	if c.Upgrade == UpgradePierce || c.Upgrade == UpgradeBurst {
		mult = 1
	}
	return upgrade(w, c.Upgrade, mult, choiceUpgradeScale)
}
